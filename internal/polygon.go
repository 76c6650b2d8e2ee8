package internal

// The polygon store. Vertices live in a contiguous slice and adjacency is
// derived from indices with wraparound; there is no linked structure to keep
// in sync when inserting or deleting.

// The polygon every new editor starts from.
func DefaultPolygon() Polygon {
	return Polygon{Points: []Point{
		{X: 350, Y: 150},
		{X: 500, Y: 225},
		{X: 350, Y: 300},
	}}
}

func (poly Polygon) Len() int {
	return len(poly.Points)
}

func (poly Polygon) At(i int) Point {
	return poly.Points[CircularIndex(i, len(poly.Points))]
}

// Cyclic neighbor indices of vertex i.
func (poly Polygon) Neighbors(i int) (prev, next int) {
	n := len(poly.Points)
	return CircularIndex(i-1, n), CircularIndex(i+1, n)
}

// Edge i runs from vertex i to its successor.
func (poly Polygon) Edge(i int) (Point, Point) {
	_, next := poly.Neighbors(i)
	return poly.Points[i], poly.Points[next]
}

func (poly Polygon) Clone() Polygon {
	points := make([]Point, len(poly.Points))
	copy(points, poly.Points)
	return Polygon{Points: points}
}

// Insert p so that it ends up at index i. Inserting at Len() appends.
func (poly *Polygon) Insert(i int, p Point) {
	if i < 0 || i > len(poly.Points) {
		fatalf("insert index %d out of range for %d vertices", i, len(poly.Points))
	}
	poly.Points = append(poly.Points, Point{})
	copy(poly.Points[i+1:], poly.Points[i:])
	poly.Points[i] = p
}

func (poly *Polygon) Append(p Point) {
	poly.Points = append(poly.Points, p)
}

// Remove vertex i unless that would leave fewer than floor vertices. Reports
// whether the vertex was removed.
func (poly *Polygon) Delete(i int, floor int) bool {
	if len(poly.Points) <= floor {
		return false
	}
	if i < 0 || i >= len(poly.Points) {
		fatalf("delete index %d out of range for %d vertices", i, len(poly.Points))
	}
	poly.Points = append(poly.Points[:i], poly.Points[i+1:]...)
	return true
}

func (poly *Polygon) Move(i int, p Point) {
	poly.Points[i] = p
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Shoelace formula. Positive when the points wind counterclockwise in a y-up
// coordinate system.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// Winding rule point-in-polygon. This is provided primarily for testing
// triangulation coverage by sampling.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule. Counts edges crossed by a ray
// cast from p towards +x.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

func (list PolygonList) ContainsPointByEvenOdd(p Point) bool {
	count := 0
	for _, poly := range list {
		count += poly.CrossingCount(p)
	}
	return count%2 == 1
}
