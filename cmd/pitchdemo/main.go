// Command pitchdemo writes a football pitch as SVG and PNG.
package main

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"

	"github.com/gogpu/pitch"
	"github.com/gogpu/pitch/dom"
	"github.com/gogpu/pitch/engine"
	"github.com/gogpu/pitch/markings"
	"github.com/gogpu/pitch/preview"
	"github.com/gogpu/pitch/render"
)

func main() {
	var (
		orientation = flag.String("orientation", "horizontal", "horizontal or vertical")
		padding     = flag.Float64("padding", 2, "padding around the field in metres")
		svgOut      = flag.String("svg", "pitch.svg", "SVG output file (empty to skip)")
		pngOut      = flag.String("png", "pitch.png", "PNG output file (empty to skip)")
		width       = flag.Int("width", preview.DefaultWidth, "PNG width in pixels")
		eventsIn    = flag.String("events", "", "JSON file with an array of events to mark")
	)
	flag.Parse()

	o, err := pitch.ParseOrientation(*orientation)
	if err != nil {
		log.Fatal(err)
	}
	events, err := loadEvents(*eventsIn)
	if err != nil {
		log.Fatalf("Failed to load events: %v", err)
	}

	g := pitch.NewGeometry(pitch.StandardDimensions(), o)
	s := pitch.NewScale(pitch.ScaleOptions{
		Dimensions:  pitch.StandardDimensions().Oriented(o),
		Orientation: o,
		Padding:     pitch.Uniform(*padding),
	})
	th := markings.DefaultTheme()

	if *svgOut != "" {
		if err := writeSVG(*svgOut, g, s, th, events); err != nil {
			log.Fatalf("Failed to write SVG: %v", err)
		}
		log.Printf("SVG saved to %s\n", *svgOut)
	}

	if *pngOut != "" {
		img, err := preview.Render(g, s, th, events, preview.Options{Width: *width})
		if err != nil {
			log.Printf("Preview: %v", err)
		}
		if img == nil {
			os.Exit(1)
		}
		if err := writeFile(*pngOut, func(w io.Writer) error { return preview.EncodePNG(w, img) }); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		b := img.Bounds()
		log.Printf("PNG saved to %s (%dx%d)\n", *pngOut, b.Dx(), b.Dy())
	}
}

func loadEvents(path string) ([]markings.Event, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var events []markings.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func writeSVG(path string, g *pitch.Geometry, s pitch.Scale, th markings.Theme, events []markings.Event) error {
	eng, err := engine.New(engine.Options{Preferred: engine.SVG})
	if err != nil {
		return err
	}
	r := eng.Renderer()
	defer r.Destroy()

	size := s.Size()
	host := dom.NewDocument().Body().AppendChild(dom.NewElement("div"))
	if err := r.Init(host, render.Config{Width: size.Width, Height: size.Height}); err != nil {
		return err
	}
	if err := markings.Draw(r, g, s, th, events); err != nil {
		log.Printf("Draw: %v", err)
	}

	w, ok := r.(io.WriterTo)
	if !ok {
		return &engine.NotSupportedError{Type: eng.Type(), Reason: "renderer cannot export"}
	}
	return writeFile(path, func(out io.Writer) error {
		_, err := w.WriteTo(out)
		return err
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
