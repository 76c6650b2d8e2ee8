package internal

import (
	"strings"

	"github.com/pkg/errors"
)

// Triangulation methods. The numeric values match the order of the method
// selector in the UI.
type Method int

const (
	StackBased Method = iota
	HorizontalSweep
	EarClipping
)

var methodNames = []string{"stack-based", "horizontal-sweep", "ear-clipping"}

func Methods() []Method {
	return []Method{StackBased, HorizontalSweep, EarClipping}
}

func (m Method) Valid() bool {
	return m >= StackBased && m <= EarClipping
}

func (m Method) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return methodNames[m]
}

// Text shown next to the selector for methods with known limitations. Empty
// when the method has none.
func (m Method) Warning() string {
	switch m {
	case StackBased:
		return "Stack based triangulation works only on convex polygons"
	case HorizontalSweep:
		return "Horizontal sweep is not finished: it produces wrong shapes for special cases and works only on convex polygons"
	}
	return ""
}

// Accepts the names returned by String, with spaces or underscores in place of
// hyphens, in any case.
func ParseMethod(name string) (Method, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer(" ", "-", "_", "-").Replace(normalized)
	for i, n := range methodNames {
		if n == normalized {
			return Method(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownMethod, "%q", name)
}

// Triangulate a snapshot of the polygon with the given method. Fewer than
// three vertices produce no triangles. The polygon is never modified.
func Triangulate(poly Polygon, method Method) TriangleList {
	if poly.Len() < 3 {
		return nil
	}

	var result TriangleList
	switch method {
	case StackBased:
		result = TriangulateStack(poly)
	case HorizontalSweep:
		result = TriangulateSweep(poly)
	case EarClipping:
		result, _ = ClipEars(poly)
	default:
		fatalWrapf(ErrUnknownMethod, "selector %d", int(method))
	}

	Logger().Debug("triangulated",
		"method", method.String(),
		"vertices", poly.Len(),
		"triangles", len(result))
	return result
}
