package internal

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func (p Point) Equal(other Point) bool {
	return Equal(p.X, other.X) && Equal(p.Y, other.Y)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

// Pop on an empty stack returns the zero point and false.
func (s *PointStack) Pop() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p, true
}

func (s *PointStack) Peek() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	return (*s)[len(*s)-1], true
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}

// Build a stack whose top is the last point of the slice, so that popping
// walks the slice backwards.
func NewPointStack(points []Point) PointStack {
	stack := make(PointStack, 0, len(points))
	for _, p := range points {
		stack.Push(p)
	}
	return stack
}
