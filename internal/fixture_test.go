package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds whatever the
// first polygon is, then converts that into a polygon with positive shoelace
// area. If anything goes wrong, it bails.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	var points []Point
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, Point{x, y})
	}
	result := Polygon{Points: points}

	// Ensure the orientation the editor's convexity test expects
	if IsCW(result) {
		result = result.Reverse()
	}
	return result
}

// Some ad hoc fixtures

// Convex n-gon with positive shoelace area. The phase keeps vertices off the
// axes so no edge is exactly horizontal.
func RegularPolygon(n int, radius float64) Polygon {
	var points []Point
	for i := 0; i < n; i++ {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.1
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return Polygon{points}
}

func SimpleStar() Polygon {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return Polygon{points}
}

func Square() Polygon {
	return Polygon{[]Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
}

// Self-intersecting: the edges (0,0)-(10,10) and (10,0)-(0,10) cross.
func Bowtie() Polygon {
	return Polygon{[]Point{{0, 0}, {10, 10}, {10, 0}, {0, 10}}}
}
