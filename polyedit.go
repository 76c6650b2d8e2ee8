// An interactive polygon editing and triangulation core for Go.
//
// This package holds the state behind a polygon editor: a closed polygon that
// the user reshapes with a pointer (grab and drag vertices, insert at edge
// midpoints, delete), and three selectable triangulation methods. It does not
// draw or read input devices; the caller feeds it pointer state once per frame
// and reads back the polygon and the cached triangles.
//
// Only ear clipping handles non-convex polygons. The stack based method is a
// fan and the horizontal sweep is unfinished; both are kept as they are and
// carry a warning (see Method.Warning).
package polyedit

import (
	"log/slog"

	"github.com/osuushi/polyedit/internal"
)

type Point = internal.Point
type Polygon = internal.Polygon
type Triangle = internal.Triangle
type TriangleList = internal.TriangleList
type Method = internal.Method
type Config = internal.Config
type Session = internal.Session
type Input = internal.Input
type Feedback = internal.Feedback
type Action = internal.Action

const (
	StackBased      = internal.StackBased
	HorizontalSweep = internal.HorizontalSweep
	EarClipping     = internal.EarClipping
)

const (
	ActionNone   = internal.ActionNone
	ActionGrab   = internal.ActionGrab
	ActionDelete = internal.ActionDelete
	ActionInsert = internal.ActionInsert
)

var (
	ErrTooFewVertices = internal.ErrTooFewVertices
	ErrUnknownMethod  = internal.ErrUnknownMethod
	ErrInvalidConfig  = internal.ErrInvalidConfig
)

// Triangulate a point list with one of the methods. Fewer than three points
// give no triangles and no error. An unknown method is an error.
//
// The points are expected to wind so that their shoelace area is positive
// (clockwise on screen, where y points down).
func Triangulate(points []Point, method Method) (result TriangleList, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.Triangulate(Polygon{Points: points}, method), nil
}

// Start an editing session on a copy of the polygon. A nil polygon starts from
// the default triangle.
func NewSession(points []Point, config Config) (*Session, error) {
	poly := internal.DefaultPolygon()
	if points != nil {
		poly = Polygon{Points: points}
	}
	return internal.NewSession(poly, config)
}

func DefaultConfig() Config {
	return internal.DefaultConfig()
}

func ParseMethod(name string) (Method, error) {
	return internal.ParseMethod(name)
}

// By default nothing is logged. Pass nil to silence logging again.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}
