package internal

// Ear clipping over a working copy of the polygon.
//
// Each pass scans the remaining vertices in index order and clips the first
// ear it finds, then restarts from index 0. An ear is a vertex that is not
// reflex and whose triangle with its two neighbors contains no other remaining
// vertex (boundary included). Emission order is therefore deterministic for a
// given input.
//
// Passes are O(n²) in the worst case, so the whole thing is O(n³). Editor
// polygons have tens of vertices, so this is not worth optimizing.

type ClipState int

const (
	// Three vertices were left and the final triangle was emitted
	ClipDone ClipState = iota
	// A full pass found no ear. The polygon is degenerate or self-intersecting,
	// and the triangles emitted so far are returned as they are.
	ClipStuck
)

func (s ClipState) String() string {
	if s == ClipDone {
		return "done"
	}
	return "stuck"
}

func ClipEars(poly Polygon) (TriangleList, ClipState) {
	if poly.Len() < 3 {
		return nil, ClipDone
	}

	working := poly.Clone()
	triangles := make(TriangleList, 0, poly.Len()-2)
	for {
		if working.Len() == 3 {
			triangles = append(triangles, Triangle{working.Points[0], working.Points[1], working.Points[2]})
			return triangles, ClipDone
		}

		ear, ok := findEar(working)
		if !ok {
			Logger().Debug("ear clipping stuck",
				"vertices", poly.Len(),
				"remaining", working.Len(),
				"triangles", len(triangles))
			return triangles, ClipStuck
		}

		prev, next := working.Neighbors(ear)
		triangles = append(triangles, Triangle{working.Points[prev], working.Points[ear], working.Points[next]})
		working.Delete(ear, 3)
	}
}

// Index of the first ear in index order.
func findEar(poly Polygon) (int, bool) {
	for cur := range poly.Points {
		if isEar(poly, cur) {
			return cur, true
		}
	}
	return 0, false
}

func isEar(poly Polygon, cur int) bool {
	prev, next := poly.Neighbors(cur)
	pv, cv, nv := poly.Points[prev], poly.Points[cur], poly.Points[next]
	if IsReflex(pv, cv, nv) {
		return false
	}
	// Exclusion is by index, so a different vertex sitting on top of one of the
	// corners still blocks the ear.
	for j, p := range poly.Points {
		if j == prev || j == cur || j == next {
			continue
		}
		if PointInTriangle(p, pv, cv, nv) {
			return false
		}
	}
	return true
}
