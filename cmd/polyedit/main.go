package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/osuushi/polyedit/internal"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Headless driver for the editor core. It can triangulate a polygon read from
// stdin ("x y" per line) or from the first <polygon> of an SVG file, and it
// can replay a recorded frame script against an editing session.

var (
	app        = kingpin.New("polyedit", "Triangulate polygons and replay polygon edits.")
	verbose    = app.Flag("verbose", "Log edits and triangulation runs to stderr.").Short('v').Envar("POLYEDIT_VERBOSE").Bool()
	configPath = app.Flag("config", "JSON editor config file.").Envar("POLYEDIT_CONFIG").ExistingFile()
	grabRadius = app.Flag("grab-radius", "Vertex pick radius in pixels (overrides config).").Envar("POLYEDIT_GRAB_RADIUS").Float64()
	insRadius  = app.Flag("insert-radius", "Midpoint pick radius in pixels (overrides config).").Envar("POLYEDIT_INSERT_RADIUS").Float64()

	triangulateCmd = app.Command("triangulate", "Triangulate one polygon.")
	triMethod      = triangulateCmd.Flag("method", "Triangulation method.").Short('m').Default(internal.EarClipping.String()).Enum(methodNames()...)
	triSVG         = triangulateCmd.Flag("svg", "Read the polygon from an SVG file instead of stdin.").ExistingFile()
	triPNG         = triangulateCmd.Flag("png", "Write a render of the result to this file.").String()
	triShow        = triangulateCmd.Flag("show", "Print a render of the result in the terminal (iTerm only).").Bool()

	replayCmd    = app.Command("replay", "Replay a frame script against the default polygon.")
	replayScript = replayCmd.Arg("script", "Frame script: \"x y primary secondary\" lines, plus \"method NAME\" and \"triangulate\".").Required().ExistingFile()
	replayMethod = replayCmd.Flag("method", "Initial triangulation method.").Short('m').Default(internal.StackBased.String()).Enum(methodNames()...)
	replayPNG    = replayCmd.Flag("png", "Write a render of the final state to this file.").String()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	if *verbose {
		internal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var err error
	switch command {
	case triangulateCmd.FullCommand():
		err = runTriangulate(os.Stdin, os.Stdout, os.Stderr)
	case replayCmd.FullCommand():
		err = runReplay(os.Stdout)
	}
	app.FatalIfError(err, "%s", command)
}

func methodNames() []string {
	var names []string
	for _, m := range internal.Methods() {
		names = append(names, m.String())
	}
	return names
}

// Config file first, then flags on top.
func loadConfig() (internal.Config, error) {
	cfg := internal.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = internal.LoadConfig(*configPath)
		if err != nil {
			return cfg, err
		}
	}
	if *grabRadius > 0 {
		cfg.GrabRadius = *grabRadius
	}
	if *insRadius > 0 {
		cfg.InsertRadius = *insRadius
	}
	return cfg, cfg.Validate()
}

// Warnings go to errOut so that out only carries the result.
func runTriangulate(stdin io.Reader, out, errOut io.Writer) error {
	method, err := internal.ParseMethod(*triMethod)
	if err != nil {
		return err
	}

	var poly internal.Polygon
	if *triSVG != "" {
		f, err := os.Open(*triSVG)
		if err != nil {
			return errors.Wrap(err, "open svg")
		}
		defer f.Close()
		poly, err = readSVGPolygon(f)
		if err != nil {
			return err
		}
	} else {
		poly, err = readPolygon(stdin)
		if err != nil {
			return err
		}
	}

	if w := method.Warning(); w != "" {
		fmt.Fprintf(errOut, "warning: %s\n", w)
	}

	triangles := internal.Triangulate(poly, method)
	fmt.Fprintf(out, "Read %d vertices\n", poly.Len())
	for _, t := range triangles {
		fmt.Fprintln(out, t)
	}
	fmt.Fprintln(out, triangles.Summary(poly.Len()))
	return writeRenders(out, poly, triangles, *triPNG, *triShow)
}

func runReplay(out io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	method, err := internal.ParseMethod(*replayMethod)
	if err != nil {
		return err
	}
	f, err := os.Open(*replayScript)
	if err != nil {
		return errors.Wrap(err, "open script")
	}
	defer f.Close()
	steps, err := readScript(f)
	if err != nil {
		return err
	}

	session, err := internal.NewSession(internal.DefaultPolygon(), cfg)
	if err != nil {
		return err
	}
	if err := session.SetMethod(method); err != nil {
		return err
	}
	if err := replay(session, steps, out); err != nil {
		return err
	}

	fmt.Fprintln(out, session)
	poly := session.Polygon()
	triangles, _ := session.Triangles()
	return writeRenders(out, poly, triangles, *replayPNG, false)
}

func writeRenders(out io.Writer, poly internal.Polygon, triangles internal.TriangleList, pngPath string, show bool) error {
	if pngPath != "" {
		f, err := os.Create(pngPath)
		if err != nil {
			return errors.Wrap(err, "create png")
		}
		if err := internal.RenderPNG(f, poly, triangles, 1); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return errors.Wrap(err, "close png")
		}
	}
	if show {
		return internal.ShowInTerminal(out, poly, triangles, 1)
	}
	return nil
}
