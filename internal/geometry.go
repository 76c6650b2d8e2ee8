package internal

// Stateless predicates shared by the triangulation and edit engines.
//
// Orientation convention: for a polygon whose shoelace area is positive,
// OrientationSign is negative at convex vertices and positive at reflex ones.
// In window pixels (y pointing down) that is a clockwise polygon on screen.

// Signed area (doubled) of the triangle prev, cur, next, with the sign flipped
// relative to the shoelace formula. A positive result marks cur as reflex.
func OrientationSign(prev, cur, next Point) float64 {
	var sum float64
	sum += prev.X * (next.Y - cur.Y)
	sum += cur.X * (prev.Y - next.Y)
	sum += next.X * (cur.Y - prev.Y)
	return sum
}

// Collinear vertices are not reflex.
func IsReflex(prev, cur, next Point) bool {
	return OrientationSign(prev, cur, next) > 0
}

// Barycentric containment test, inclusive of the boundary. A zero-area
// triangle contains nothing.
func PointInTriangle(p, a, b, c Point) bool {
	d := a.X*(b.Y-c.Y) + a.Y*(c.X-b.X) + b.X*c.Y - b.Y*c.X
	if d == 0 {
		return false
	}
	t1 := (p.X*(c.Y-a.Y) + p.Y*(a.X-c.X) - a.X*c.Y + a.Y*c.X) / d
	t2 := (p.X*(b.Y-a.Y) + p.Y*(a.X-b.X) - a.X*b.Y + a.Y*b.X) / -d
	return 0 <= t1 && t1 <= 1 && 0 <= t2 && t2 <= 1 && t1+t2 <= 1
}

func SqDist(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Anything with a shoelace area. Both polygons and triangles qualify.
type Shape interface {
	SignedArea() float64
}

func IsCCW(s Shape) bool {
	return s.SignedArea() > 0
}

func IsCW(s Shape) bool {
	return s.SignedArea() < 0
}

func Area(s Shape) float64 {
	a := s.SignedArea()
	if a < 0 {
		return -a
	}
	return a
}
