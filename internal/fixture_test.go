package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This loads the svg fixtures as polygons. It is not a real svg parser: it
// finds the polygon elements and reads their points attributes. The first
// polygon is made counterclockwise. Any others are taken with the winding
// they're given in, so holes must be drawn clockwise. If anything goes wrong,
// it bails.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

var svgFixtureNames = []string{"comb", "zigzag", "frame", "staircase"}

func LoadFixture(name string) []Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygonEls := rootEl.FindAll("polygon")
	if len(polygonEls) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}

	var polygons []Polygon
	for i, polygonEl := range polygonEls {
		var points []Point
		for _, pointString := range strings.Fields(polygonEl.Attributes["points"]) {
			coordinates := strings.Split(pointString, ",")
			if len(coordinates) != 2 {
				log.Fatalf("Invalid point string %q in fixture %q", pointString, name)
			}
			x, err := strconv.ParseFloat(coordinates[0], 64)
			if err != nil {
				log.Fatalf("Invalid x value %q: %v", coordinates[0], err)
			}
			y, err := strconv.ParseFloat(coordinates[1], 64)
			if err != nil {
				log.Fatalf("Invalid y value %q: %v", coordinates[1], err)
			}
			points = append(points, Point{x, y})
		}
		polygon := Polygon{Points: points}
		if i == 0 && !polygon.IsCCW() {
			polygon = polygon.Reverse()
		}
		polygons = append(polygons, polygon)
	}
	return polygons
}

// Some ad hoc code specified fixtures

func makeStar(x, y, outerRadius, innerRadius float64) Polygon {
	var points []Point
	for i := 0; i < 10; i++ {
		angle := 2 * math.Pi * float64(i) / 10
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		points = append(points, Point{X: x + r*math.Cos(angle), Y: y + r*math.Sin(angle)})
	}
	return Polygon{points}
}

func SimpleStar() []Polygon {
	return []Polygon{makeStar(0, 0, 5, 2)}
}

func SquareWithHole() []Polygon {
	return []Polygon{
		{[]Point{{-5, -5}, {5, -5}, {5, 5}, {-5, 5}}},
		{[]Point{{-2, -2}, {-2, 2}, {2, 2}, {2, -2}}},
	}
}

func StarOutline() []Polygon {
	return []Polygon{
		makeStar(0, 0, 10, 5),
		makeStar(0, 0, 8, 3).Reverse(),
	}
}

// Multiple inset stars with alternating winding
func StarStripes() []Polygon {
	var polygons []Polygon
	scale := 1.0
	for i := 0; i < 20; i++ {
		star := makeStar(0, 0, 10*scale, 7*scale)
		if i%2 == 1 {
			star = star.Reverse()
		}
		polygons = append(polygons, star)
		scale *= 0.9
	}
	return polygons
}

// Holes which contain filled shapes inside
func MultiLayeredHoles() []Polygon {
	return []Polygon{
		// Outer star
		makeStar(0, 0, 10, 7),
		// Top hole and its island
		makeStar(1.5, 5, 3, 2).Reverse(),
		makeStar(1.5, 5, 2, 1),
		// Bottom hole and its island
		makeStar(1.8, -5, 3, 2).Reverse(),
		makeStar(1.8, -5, 2, 1),
		// Left hole and its island
		makeStar(-3, 0, 4, 2).Reverse(),
		makeStar(-3, 0, 3, 1),
	}
}

type namedFixture struct {
	name     string
	polygons []Polygon
}

func allFixtures() []namedFixture {
	fixtures := []namedFixture{
		{"SimpleStar", SimpleStar()},
		{"SquareWithHole", SquareWithHole()},
		{"StarOutline", StarOutline()},
		{"StarStripes", StarStripes()},
		{"MultiLayeredHoles", MultiLayeredHoles()},
	}
	for _, name := range svgFixtureNames {
		fixtures = append(fixtures, namedFixture{name, LoadFixture(name)})
	}
	return fixtures
}
