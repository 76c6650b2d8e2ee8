package internal

// Points are plain values in window-pixel space. Unlike a mesh, the editor
// has no stable vertex identity: a vertex is its position, and the polygon
// addresses vertices by index.
type Point struct {
	X float64
	Y float64
}

type Polygon struct {
	Points []Point
}

type PolygonList []Polygon

// The stored order of the three points matters for area sign tests.
type Triangle struct {
	A, B, C Point
}

type TriangleList []Triangle

type PointStack []Point
