package internal

import "sort"

// Horizontal sweep. Vertices are ordered by x (largest first, stable for
// ties), stacked, and then consumed with a sliding window of two: each popped
// vertex forms a triangle with the window, and the window slides forward.
//
// This is not a monotone polygon sweep. It produces n-2 triangles, but they
// only tile the polygon for some convex inputs, and the method is exposed with
// a warning saying so. A correct sweep would be a separate method.
func TriangulateSweep(poly Polygon) TriangleList {
	if poly.Len() < 3 {
		return nil
	}

	sorted := poly.Clone().Points
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X > sorted[j].X
	})

	triangles := make(TriangleList, 0, len(sorted)-2)
	stack := NewPointStack(sorted)
	v1, _ := stack.Pop()
	v2, _ := stack.Pop()
	for !stack.Empty() {
		vt, _ := stack.Pop()
		triangles = append(triangles, Triangle{v1, v2, vt})
		v1 = v2
		v2 = vt
	}
	return triangles
}
