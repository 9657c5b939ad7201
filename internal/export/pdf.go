package export

import (
	"fmt"
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"

	"LocalSketch/internal/render"
)

// PDF writes strokes onto a single page the size of the drawing, one
// point per unit. Stroke commands are already in top-left draw space,
// which is also gofpdf's.
func PDF(w io.Writer, id string, width, height float64, strokes []render.Stroke) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("pdf export: empty page %gx%g", width, height)
	}

	// "L" would swap the custom size, so the page is always declared
	// portrait with the drawing's own width and height.
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	p.SetTitle("sketch "+id, true)
	p.SetCreator("LocalSketch", true)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()
	p.SetLineJoinStyle("round")

	for _, st := range strokes {
		if len(st.Commands) == 0 {
			continue
		}
		c := color.NRGBAModel.Convert(st.Color).(color.NRGBA)
		p.SetDrawColor(int(c.R), int(c.G), int(c.B))
		p.SetLineWidth(st.Width)
		p.SetLineCapStyle(st.Cap.String())

		for _, cmd := range st.Commands {
			if cmd.Op == render.MoveTo {
				p.MoveTo(cmd.X, cmd.Y)
			} else {
				p.LineTo(cmd.X, cmd.Y)
			}
		}
		p.DrawPath("D")
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("pdf export: %w", err)
	}
	return nil
}
