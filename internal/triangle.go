package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
)

func (t Triangle) Points() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

func (t Triangle) SignedArea() float64 {
	return ((t.B.X-t.A.X)*(t.C.Y-t.A.Y) - (t.C.X-t.A.X)*(t.B.Y-t.A.Y)) / 2
}

func (t Triangle) ToPolygon() Polygon {
	return Polygon{Points: []Point{t.A, t.B, t.C}}
}

// Two triangles are the same if they have the same corners, in any order.
func (t Triangle) SameCorners(other Triangle) bool {
	mine := t.Points()
	theirs := other.Points()
	used := [3]bool{}
	for _, p := range mine {
		found := false
		for j, q := range theirs {
			if !used[j] && p.Equal(q) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (t Triangle) String() string {
	return fmt.Sprintf("(%g,%g) (%g,%g) (%g,%g)", t.A.X, t.A.Y, t.B.X, t.B.Y, t.C.X, t.C.Y)
}

func (list TriangleList) ToPolygonList() PolygonList {
	result := make(PolygonList, len(list))
	for i, t := range list {
		result[i] = t.ToPolygon()
	}
	return result
}

// Total unsigned area covered by the triangles.
func (list TriangleList) Area() float64 {
	var sum float64
	for _, t := range list {
		sum += Area(t)
	}
	return sum
}

// A triangulation of an n-gon is complete when it has n-2 triangles. Anything
// less means a method gave up part way through.
func (list TriangleList) Complete(vertexCount int) bool {
	return vertexCount >= 3 && len(list) == vertexCount-2
}

// Summary line for a triangulation of a polygon with vertexCount vertices.
// Complete results are green, partial ones red.
func (list TriangleList) Summary(vertexCount int) string {
	expected := vertexCount - 2
	if expected < 0 {
		expected = 0
	}
	text := fmt.Sprintf("%d/%d triangles", len(list), expected)
	if list.Complete(vertexCount) {
		return aurora.Green(text).String()
	}
	return aurora.Red(text).String()
}

func (list TriangleList) String() string {
	parts := make([]string, len(list))
	for i, t := range list {
		parts[i] = t.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}
