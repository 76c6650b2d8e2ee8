package internal

// Stack based fan triangulation. The vertices are pushed onto a stack, so they
// come back off in reverse storage order. The first vertex popped is the fixed
// anchor, and every following vertex closes a triangle with the previous one:
/*
	      v0 (anchor)
	     /|\
	    / | \
	   /  |  \
	  vh--vt--...
*/
// This is only a valid triangulation when the anchor can see every other
// vertex, which is guaranteed for convex polygons. Non-convex input silently
// gets overlapping triangles.
func TriangulateStack(poly Polygon) TriangleList {
	if poly.Len() < 3 {
		return nil
	}

	triangles := make(TriangleList, 0, poly.Len()-2)
	stack := NewPointStack(poly.Points)
	v0, _ := stack.Pop()
	vh, _ := stack.Pop()
	for !stack.Empty() {
		vt, _ := stack.Pop()
		triangles = append(triangles, Triangle{v0, vh, vt})
		vh = vt
	}
	return triangles
}
