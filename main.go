package main

import (
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2/app"

	sketchnet "LocalSketch/internal/net"
	"LocalSketch/internal/ui"
)

const (
	AppID       = "io.localsketch.app"
	MirrorFlag  = "--mirror"
	BrowseFlag  = "--browse"
	DefaultPort = 8888
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 && args[0] == BrowseFlag {
		runBrowse()
		return
	}

	port, mirrored := mirrorPort(args)
	run(port, mirrored)
}

// mirrorPort reads "--mirror" or "--mirror=port" from args.
func mirrorPort(args []string) (int, bool) {
	for _, arg := range args {
		if arg == MirrorFlag {
			return DefaultPort, true
		}
		if v, ok := strings.CutPrefix(arg, MirrorFlag+"="); ok {
			port, err := strconv.Atoi(v)
			if err != nil || port <= 0 || port > 65535 {
				log.Fatalf("Invalid mirror port %q", v)
			}
			return port, true
		}
	}
	return 0, false
}

func run(port int, mirrored bool) {
	a := app.NewWithID(AppID)

	var mirror *sketchnet.Mirror
	cfg := ui.ConfigFromPreferences(a.Preferences(), func() {
		if mirror != nil {
			mirror.Publish()
		}
	})
	sketch, err := ui.NewSketchWidget(cfg)
	if err != nil {
		log.Fatalf("Failed to create drawing area: %v", err)
	}

	status := "Draw with the mouse. Scribble over a stroke to erase it."
	if mirrored {
		mirror = sketchnet.NewMirror(sketch.Area)
		go func() {
			if err := mirror.ListenAndServe(fmt.Sprintf(":%d", port)); err != nil {
				log.Printf("[MIRROR] Server stopped: %v", err)
			}
		}()
		defer mirror.Close()

		server, err := sketchnet.Advertise(port, sketch.Area.ID())
		if err != nil {
			log.Printf("[MDNS] %v", err)
		} else {
			defer server.Shutdown()
		}

		url := sketchnet.MirrorURL(net.ParseIP(sketchnet.GetOutgoingIP()), port)
		status = "Mirroring to " + url
		log.Printf("Viewers can connect to %s", url)
	}

	ui.RunApp(a, sketch, status)
}

func runBrowse() {
	log.Println("Looking for mirrors on the local network")
	err := sketchnet.Browse(3*time.Second, func(url string) {
		fmt.Println(url)
	})
	if err != nil {
		log.Fatal(err)
	}
}
