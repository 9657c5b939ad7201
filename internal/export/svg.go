// Package export turns a drawing into portable files: SVG markup, PNG
// images rasterized from that markup, and PDF documents.
package export

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"LocalSketch/internal/render"
)

const namespaceURI = "http://www.w3.org/2000/svg"

// Surface is an in-memory SVG document. It implements render.Target, so a
// reconciler can keep it in step with a drawing area.
type Surface struct {
	ID            string
	Width, Height float64

	paths    []*svgPath
	released bool
}

type svgPath struct {
	stroke render.Stroke
}

// NewSurface creates an empty surface of the given size.
func NewSurface(id string, width, height float64) *Surface {
	return &Surface{ID: id, Width: width, Height: height}
}

func (s *Surface) Insert(index int, st render.Stroke) render.Primitive {
	p := &svgPath{stroke: st}
	s.paths = append(s.paths, nil)
	copy(s.paths[index+1:], s.paths[index:])
	s.paths[index] = p
	return p
}

func (s *Surface) Update(p render.Primitive, st render.Stroke) {
	p.(*svgPath).stroke = st
}

func (s *Surface) Remove(p render.Primitive) {
	for i, q := range s.paths {
		if q == p {
			s.paths = append(s.paths[:i], s.paths[i+1:]...)
			return
		}
	}
}

// Release drops every path; the surface stays empty afterwards.
func (s *Surface) Release() {
	s.paths = nil
	s.released = true
}

// Released reports whether Release was called.
func (s *Surface) Released() bool {
	return s.released
}

// Len is the number of paths on the surface.
func (s *Surface) Len() int {
	return len(s.paths)
}

// Strokes returns the surface's paths in draw order.
func (s *Surface) Strokes() []render.Stroke {
	out := make([]render.Stroke, len(s.paths))
	for i, p := range s.paths {
		out[i] = p.stroke
	}
	return out
}

// Markup serializes the surface as an SVG document.
func (s *Surface) Markup() string {
	return SVG(s.ID, s.Width, s.Height, s.Strokes())
}

// SVG renders strokes as a standalone SVG document.
func SVG(id string, width, height float64, strokes []render.Stroke) string {
	var b strings.Builder
	w, h := num(width), num(height)
	fmt.Fprintf(&b, `<svg xmlns="%s" width="%s" height="%s" viewBox="0 0 %s %s"`, namespaceURI, w, h, w, h)
	if id != "" {
		fmt.Fprintf(&b, ` id="sketch-%s"`, id)
	}
	b.WriteString(">")
	for _, st := range strokes {
		writePath(&b, st)
	}
	b.WriteString("</svg>")
	return b.String()
}

func writePath(b *strings.Builder, st render.Stroke) {
	hex, opacity := render.HexOpacity(st.Color)
	fmt.Fprintf(b, `<path d="%s" stroke="%s" stroke-width="%s" stroke-linecap="%s" stroke-linejoin="round" fill="none"`,
		st.PathData(), hex, num(st.Width), st.Cap)
	if opacity < 1 {
		fmt.Fprintf(b, ` stroke-opacity="%s"`, num(opacity))
	}
	b.WriteString("/>")
}

// DataURL wraps SVG markup in a data: URL.
func DataURL(svg string) string {
	return "data:image/svg+xml;charset=utf-8," + url.PathEscape(svg)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
