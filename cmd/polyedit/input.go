package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/polyedit/internal"
	"github.com/pkg/errors"
)

// Read one polygon as newline separated "x y" points. Blank lines and lines
// starting with # are skipped.
func readPolygon(in io.Reader) (internal.Polygon, error) {
	var poly internal.Polygon
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return poly, errors.Errorf("line %d: expected \"x y\", got %q", lineNumber, line)
		}
		p, err := parsePoint(fields[0], fields[1])
		if err != nil {
			return poly, errors.Wrapf(err, "line %d", lineNumber)
		}
		poly.Append(p)
	}
	return poly, errors.Wrap(scanner.Err(), "read polygon")
}

// Read the first <polygon> element of an SVG document. Only the points
// attribute is looked at; transforms are ignored.
func readSVGPolygon(in io.Reader) (internal.Polygon, error) {
	var poly internal.Polygon
	rootEl, err := svgparser.Parse(in, false)
	if err != nil {
		return poly, errors.Wrap(err, "parse svg")
	}
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return poly, errors.New("no polygon found in svg")
	}

	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			return poly, errors.Errorf("invalid point string %q", pointString)
		}
		p, err := parsePoint(coords[0], coords[1])
		if err != nil {
			return poly, err
		}
		poly.Append(p)
	}
	return poly, nil
}

func parsePoint(xs, ys string) (internal.Point, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return internal.Point{}, errors.Wrapf(err, "invalid x value %q", xs)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return internal.Point{}, errors.Wrapf(err, "invalid y value %q", ys)
	}
	return internal.Point{X: x, Y: y}, nil
}

// One line of a frame script. Exactly one of the fields is meaningful: a
// frame input, a method change, or a triangulation request.
type scriptStep struct {
	input       *internal.Input
	method      *internal.Method
	triangulate bool
}

func readScript(in io.Reader) ([]scriptStep, error) {
	var steps []scriptStep
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch {
		case fields[0] == "triangulate" && len(fields) == 1:
			steps = append(steps, scriptStep{triangulate: true})
		case fields[0] == "method" && len(fields) >= 2:
			m, err := internal.ParseMethod(strings.Join(fields[1:], " "))
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNumber)
			}
			steps = append(steps, scriptStep{method: &m})
		case len(fields) == 4:
			p, err := parsePoint(fields[0], fields[1])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNumber)
			}
			primary, err := strconv.ParseBool(fields[2])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: primary", lineNumber)
			}
			secondary, err := strconv.ParseBool(fields[3])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: secondary", lineNumber)
			}
			steps = append(steps, scriptStep{input: &internal.Input{X: p.X, Y: p.Y, Primary: primary, Secondary: secondary}})
		default:
			return nil, errors.Errorf("line %d: cannot parse %q", lineNumber, line)
		}
	}
	return steps, errors.Wrap(scanner.Err(), "read script")
}

func replay(session *internal.Session, steps []scriptStep, out io.Writer) error {
	frame := 0
	for _, step := range steps {
		switch {
		case step.input != nil:
			frame++
			fb := session.Step(*step.input)
			fmt.Fprintf(out, "frame %d: %s\n", frame, describeFeedback(fb))
		case step.method != nil:
			if err := session.SetMethod(*step.method); err != nil {
				return err
			}
			fmt.Fprintf(out, "method: %s\n", step.method)
		case step.triangulate:
			triangles, err := session.Triangulate()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "triangulate: %s\n", triangles.Summary(session.Polygon().Len()))
		}
	}
	return nil
}

func describeFeedback(fb internal.Feedback) string {
	parts := []string{"action=" + fb.Action.String(), fmt.Sprintf("nearest=%d", fb.Nearest)}
	if fb.HasMidpoint {
		parts = append(parts, fmt.Sprintf("midpoint=(%g,%g) in-range=%t", fb.Midpoint.X, fb.Midpoint.Y, fb.MidpointInRange))
	}
	if fb.Dragging {
		parts = append(parts, "dragging")
	}
	if fb.Released {
		parts = append(parts, "released")
	}
	return strings.Join(parts, " ")
}
