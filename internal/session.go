package internal

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polyedit/dbg"
	"github.com/pkg/errors"
)

// The edit engine. A Session owns one polygon, the selected triangulation
// method and the cached triangulation, and is advanced one frame at a time by
// the caller with the current pointer state. Nothing here is safe for
// concurrent use; the caller's frame loop is the only writer.

// Pointer state for a single frame, in window pixels. Button fields are
// levels: true while the button is held.
type Input struct {
	X, Y      float64
	Primary   bool
	Secondary bool
}

type Action int

const (
	ActionNone Action = iota
	ActionGrab
	ActionDelete
	ActionInsert
)

func (a Action) String() string {
	switch a {
	case ActionGrab:
		return "grab"
	case ActionDelete:
		return "delete"
	case ActionInsert:
		return "insert"
	}
	return "none"
}

// What happened during a frame, and what the renderer should highlight.
type Feedback struct {
	Action Action
	// Nearest vertex to the pointer, resolved before any edit this frame
	Nearest int
	// Pointer is close enough to Nearest to grab or delete it
	InGrabZone bool
	// Nearest edge midpoint. Only resolved outside the grab zone.
	Midpoint        Point
	HasMidpoint     bool
	MidpointInRange bool
	// A vertex is grabbed after this frame
	Dragging bool
	// The grab ended this frame
	Released bool
}

type Session struct {
	config  Config
	polygon Polygon
	method  Method
	// grabIndex is only meaningful while grabbing
	grabbing  bool
	grabIndex int
	// Count of grabs so far, to tell them apart in logs
	grabs int
	// A primary press that has not yet been used by a grab or an insertion
	pressed     bool
	primaryHeld bool

	triangles TriangleList
	fresh     bool
}

func NewSession(poly Polygon, config Config) (*Session, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if poly.Len() < 2 {
		return nil, errors.Wrapf(ErrTooFewVertices, "got %d", poly.Len())
	}
	return &Session{
		config:  config,
		polygon: poly.Clone(),
		method:  StackBased,
	}, nil
}

// A copy of the current polygon.
func (s *Session) Polygon() Polygon {
	return s.polygon.Clone()
}

func (s *Session) Method() Method {
	return s.method
}

// Changing the method does not touch the cache; the previous result stays
// valid for the polygon it was computed from until the next edit.
func (s *Session) SetMethod(m Method) error {
	if !m.Valid() {
		return errors.Wrapf(ErrUnknownMethod, "selector %d", int(m))
	}
	s.method = m
	return nil
}

// Index of the grabbed vertex, if any.
func (s *Session) Grabbed() (int, bool) {
	if !s.grabbing {
		return 0, false
	}
	return s.grabIndex, true
}

// The cached triangulation. ok is false when there is none, or when the
// polygon changed since it was computed.
func (s *Session) Triangles() (triangles TriangleList, ok bool) {
	if !s.fresh {
		return nil, false
	}
	return s.triangles, true
}

func (s *Session) Stale() bool {
	return !s.fresh
}

// Run the selected method against the current polygon and cache the result.
// The previous result is replaced as a whole.
func (s *Session) Triangulate() (result TriangleList, err error) {
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	triangles := Triangulate(s.polygon.Clone(), s.method)
	s.triangles = triangles
	s.fresh = true
	return triangles, nil
}

func (s *Session) invalidate() {
	s.triangles = nil
	s.fresh = false
}

// Advance one frame. Resolution order is fixed: nearest vertex, then either
// the grab/delete zone or the midpoint zone, then drag continuation.
func (s *Session) Step(in Input) Feedback {
	pointer := Point{X: in.X, Y: in.Y}
	if in.Primary && !s.primaryHeld {
		s.pressed = true
	} else if !in.Primary {
		s.pressed = false
	}
	s.primaryHeld = in.Primary

	var fb Feedback
	nearest, dist := s.nearestVertex(pointer)
	fb.Nearest = nearest

	grabRadius := s.config.GrabRadius * s.config.GrabRadius
	insertRadius := s.config.InsertRadius * s.config.InsertRadius
	if dist <= grabRadius {
		fb.InGrabZone = true
		if s.pressed && !s.grabbing {
			s.startGrab(nearest)
			fb.Action = ActionGrab
		}
		if in.Secondary && s.deleteVertex(nearest) {
			fb.Action = ActionDelete
		}
	} else {
		mp := s.nearestMidpoint(pointer)
		fb.Midpoint = mp.point
		fb.HasMidpoint = true
		if mp.dist <= insertRadius {
			fb.MidpointInRange = true
			if s.pressed && !s.grabbing {
				// The press is spent on the insertion, so the new vertex is not
				// grabbed until the button goes down again.
				s.pressed = false
				s.insertMidpoint(mp)
				fb.Action = ActionInsert
			}
		}
	}

	if s.grabbing {
		if s.polygon.Points[s.grabIndex] != pointer {
			s.polygon.Move(s.grabIndex, pointer)
			s.invalidate()
		}
		if in.Primary {
			fb.Dragging = true
		} else {
			s.endGrab()
			fb.Released = true
		}
	}
	return fb
}

// Ties go to the lowest index.
func (s *Session) nearestVertex(p Point) (int, float64) {
	nearest := 0
	minDist := SqDist(s.polygon.Points[0], p)
	for i, v := range s.polygon.Points {
		dist := SqDist(v, p)
		if dist < minDist {
			minDist = dist
			nearest = i
		}
	}
	return nearest, minDist
}

type midpoint struct {
	point Point
	dist  float64
	// Endpoints of the edge, ordered by distance to the pointer
	idxNearest, idx2ndNearest int
}

// Ties go to the first edge in scan order.
func (s *Session) nearestMidpoint(p Point) midpoint {
	var best midpoint
	for i := range s.polygon.Points {
		_, other := s.polygon.Neighbors(i)
		v, o := s.polygon.Edge(i)
		mp := midpoint{point: Midpoint(v, o)}
		mp.dist = SqDist(mp.point, p)
		if SqDist(v, p) < SqDist(o, p) {
			mp.idxNearest, mp.idx2ndNearest = i, other
		} else {
			mp.idxNearest, mp.idx2ndNearest = other, i
		}
		if i == 0 || mp.dist < best.dist {
			best = mp
		}
	}
	return best
}

// Where a vertex inserted between two adjacent vertices must go to keep the
// cyclic order. The edge between the last and first vertex appends.
func insertionIndex(idxNearest, idx2ndNearest, vertexCount int) int {
	last := vertexCount - 1
	if (idxNearest == 0 && idx2ndNearest == last) || (idxNearest == last && idx2ndNearest == 0) {
		return vertexCount
	}
	if idxNearest > idx2ndNearest {
		return idxNearest
	}
	return idx2ndNearest
}

func (s *Session) insertMidpoint(mp midpoint) {
	i := insertionIndex(mp.idxNearest, mp.idx2ndNearest, s.polygon.Len())
	s.polygon.Insert(i, mp.point)
	s.invalidate()
	Logger().Debug("inserted vertex", "index", i, "x", mp.point.X, "y", mp.point.Y, "vertices", s.polygon.Len())
}

func (s *Session) startGrab(i int) {
	s.grabbing = true
	s.grabIndex = i
	s.grabs++
	s.invalidate()
	Logger().Debug("grabbed vertex", "grab", s.grabs, "index", i)
}

func (s *Session) endGrab() {
	Logger().Debug("released vertex", "grab", s.grabs, "index", s.grabIndex)
	s.grabbing = false
	s.grabIndex = 0
}

func (s *Session) deleteVertex(i int) bool {
	if !s.polygon.Delete(i, s.config.MinVertices) {
		Logger().Debug("refused delete", "index", i, "vertices", s.polygon.Len())
		return false
	}
	s.invalidate()
	Logger().Debug("deleted vertex", "index", i, "vertices", s.polygon.Len())

	// Keep the grab pointing at the same vertex
	if s.grabbing {
		switch {
		case s.grabIndex == i:
			s.endGrab()
		case s.grabIndex > i:
			s.grabIndex--
		}
	}
	return true
}

func (s *Session) String() string {
	cache := aurora.Yellow("stale").String()
	if s.fresh {
		cache = s.triangles.Summary(s.polygon.Len())
	}
	grabbed := "none"
	if s.grabbing {
		grabbed = fmt.Sprintf("#%d (vertex %d)", s.grabs, s.grabIndex)
	}
	return fmt.Sprintf("Session %s { %d vertices, method: %s, grab: %s, triangles: %s }",
		dbg.Name(s), s.polygon.Len(), s.method, grabbed, cache)
}
