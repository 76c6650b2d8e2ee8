package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. There are exactly n-2 triangles.
// 2. Every triangle corner is a vertex of the polygon.
// 3. No triangle has zero area.
// 4. The sum of the areas of all triangles is equal to the area of the polygon.
//
// Orientation is not checked, since the fan emits its triangles in reverse.
func AssertValidTriangulation(t *testing.T, polygon Polygon, triangles TriangleList) {
	require.Len(t, triangles, polygon.Len()-2, "a triangulation of an n-gon has n-2 triangles")

	for _, tri := range triangles {
		for _, corner := range tri.Points() {
			require.True(t, hasVertex(polygon, corner), "corner %v of %v is not a polygon vertex", corner, tri)
		}
		require.Greater(t, Area(tri), Tolerance, "degenerate triangle: %v", tri)
	}

	require.InDelta(t, Area(polygon), triangles.Area(), 1e-6*math.Max(1, Area(polygon)),
		"sum of the areas of all triangles must equal the area of the polygon")
}

// Every triangle wound the same way as the polygon.
func AssertConsistentWinding(t *testing.T, polygon Polygon, triangles TriangleList) {
	for _, tri := range triangles {
		require.Equal(t, IsCCW(polygon), IsCCW(tri), "triangle %v is wound against the polygon", tri)
	}
}

func hasVertex(polygon Polygon, p Point) bool {
	for _, v := range polygon.Points {
		if v == p {
			return true
		}
	}
	return false
}

// Strict containment, used to check that no vertex sits inside an emitted ear.
// The boundary doesn't count.
func strictlyInside(p, a, b, c Point) bool {
	d1 := Triangle{a, b, p}.SignedArea()
	d2 := Triangle{b, c, p}.SignedArea()
	d3 := Triangle{c, a, p}.SignedArea()
	eps := Tolerance
	return (d1 > eps && d2 > eps && d3 > eps) || (d1 < -eps && d2 < -eps && d3 < -eps)
}

// Sample a grid over both shapes and check that every sample is inside one
// exactly when it is inside the other. Triangles that overlap cancel out under
// the even-odd rule, so this also catches overlapping triangulations.
func validatePolygonsBySampling(t *testing.T, actualPolygons PolygonList, expectedPolygons PolygonList) {
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, list := range []PolygonList{actualPolygons, expectedPolygons} {
		for _, poly := range list {
			for _, p := range poly.Points {
				minX = math.Min(minX, p.X)
				minY = math.Min(minY, p.Y)
				maxX = math.Max(maxX, p.X)
				maxY = math.Max(maxY, p.Y)
			}
		}
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	// The odd offset keeps samples off vertices and axis-aligned edges
	step := math.Max(maxX-minX, maxY-minY) / 50
	offset := step * 0.3719

	for y := minY + offset; y <= maxY; y += step {
		for x := minX + offset; x <= maxX; x += step {
			p := Point{X: x, Y: y}

			actual := actualPolygons.ContainsPointByEvenOdd(p)
			if expectedPolygons.ContainsPointByEvenOdd(p) {
				assert.True(t, actual, "point %v should be covered by the triangulation", p)
			} else {
				assert.False(t, actual, "point %v should not be covered by the triangulation", p)
			}
		}
	}
}
