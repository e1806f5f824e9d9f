package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/trapmap"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"
)

// Command line front end. Build a map from a YAML scene file (or polygons on
// stdin), then locate points in it, draw it, or print its statistics.
//
// Stdin polygons are newline separated points in the form "x y", with each
// polygon separated by an extra newline. Solids wind counterclockwise, holes
// clockwise.

var (
	app       = kingpin.New("trapmap", "Point location over a trapezoidal decomposition.")
	scenePath = app.Flag("scene", "YAML scene file with arcs and polygons.").Short('s').ExistingFile()
	fromStdin = app.Flag("stdin", "Read polygons from stdin.").Bool()
	seed      = app.Flag("seed", "Seed for the insertion order (overrides TRAPMAP_SEED).").Action(markSeedSet).Int64()
	seedSet   bool

	locateCmd    = app.Command("locate", "Classify points as trapezoid, edge or vertex.")
	locatePoints = locateCmd.Arg("point", "Points as x,y.").Required().Strings()

	drawCmd    = app.Command("draw", "Render the decomposition to a PNG.")
	drawOut    = drawCmd.Flag("out", "Output file.").Short('o').Default("trapmap.png").String()
	drawScale  = drawCmd.Flag("scale", "Pixels per unit (overrides TRAPMAP_DRAW_SCALE).").Float64()
	drawImgcat = drawCmd.Flag("imgcat", "Also print the image to the terminal.").Bool()

	statsCmd = app.Command("stats", "Print the size of the decomposition and its search DAG.")
)

// Scene files list loose arcs as [x1, y1, x2, y2] and polygons as lists of
// [x, y] points.
type scene struct {
	Arcs     [][]float64   `yaml:"arcs"`
	Polygons [][][]float64 `yaml:"polygons"`
}

func main() {
	config, err := trapmap.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	applyFlags(&config)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.SlogLevel()}))
	slog.SetDefault(logger)

	m := trapmap.New(config)
	if err := load(m); err != nil {
		logger.Error("could not build map", "err", err)
		os.Exit(1)
	}

	switch command {
	case locateCmd.FullCommand():
		for _, arg := range *locatePoints {
			p, err := parseCoordinates(arg, ",")
			if err != nil {
				app.Fatalf("%v", err)
			}
			fmt.Println(describe(m, p))
		}
	case drawCmd.FullCommand():
		if err := m.Draw(*drawOut, *drawScale); err != nil {
			logger.Error("could not draw map", "err", err)
			os.Exit(1)
		}
		if *drawImgcat {
			if err := imgcat.CatFile(*drawOut, os.Stdout); err != nil {
				logger.Error("could not print image", "err", err)
				os.Exit(1)
			}
		}
	case statsCmd.FullCommand():
		stats := m.Stats()
		fmt.Printf("vertices: %d\narcs: %d\ntrapezoids: %d\ndag nodes: %d\ndag depth: %d\n",
			stats.Vertices, stats.Arcs, stats.Trapezoids, stats.DagNodes, stats.DagDepth)
	}
}

func markSeedSet(*kingpin.ParseContext) error {
	seedSet = true
	return nil
}

// Flags given on the command line win over the environment, even when they
// are zero.
func applyFlags(config *trapmap.Config) {
	if seedSet {
		config.Seed = *seed
	}
}

func load(m *trapmap.Map) error {
	if *scenePath != "" {
		s, err := readScene(*scenePath)
		if err != nil {
			return err
		}
		for _, arc := range s.Arcs {
			if _, _, err := m.Insert(trapmap.Point{X: arc[0], Y: arc[1]}, trapmap.Point{X: arc[2], Y: arc[3]}); err != nil {
				return err
			}
		}
		var polygons [][]trapmap.Point
		for _, polygon := range s.Polygons {
			points := make([]trapmap.Point, len(polygon))
			for i, p := range polygon {
				points[i] = trapmap.Point{X: p[0], Y: p[1]}
			}
			polygons = append(polygons, points)
		}
		if _, err := m.InsertPolygons(polygons...); err != nil {
			return err
		}
	}
	if *fromStdin {
		polygons, err := readPolygons(os.Stdin)
		if err != nil {
			return err
		}
		slog.Info("read polygons", "count", len(polygons))
		if _, err := m.InsertPolygons(polygons...); err != nil {
			return err
		}
	}
	return nil
}

func readScene(path string) (*scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading scene")
	}
	var s scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(err, "parsing scene %s", path)
	}
	for i, arc := range s.Arcs {
		if len(arc) != 4 {
			return nil, errors.Errorf("arc %d in %s needs 4 coordinates, got %d", i, path, len(arc))
		}
	}
	for i, polygon := range s.Polygons {
		for _, p := range polygon {
			if len(p) != 2 {
				return nil, errors.Errorf("polygon %d in %s has a point with %d coordinates", i, path, len(p))
			}
		}
	}
	return &s, nil
}

func describe(m *trapmap.Map, p trapmap.Point) string {
	switch item := m.Locate(p).(type) {
	case *trapmap.Trapezoid:
		return fmt.Sprintf("%v: trapezoid (%s)", p, m.Classify(p))
	case *trapmap.EdgeItem:
		return fmt.Sprintf("%v: edge %v", p, item.Halfedge())
	}
	return fmt.Sprintf("%v: %s", p, m.Classify(p))
}

func readPolygons(in io.Reader) ([][]trapmap.Point, error) {
	var polygons [][]trapmap.Point
	var points []trapmap.Point
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// A blank line ends the polygon, if there is one
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = nil
			}
			continue
		}

		point, err := parseCoordinates(line, " ")
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polygons")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons, nil
}

func parseCoordinates(s, separator string) (trapmap.Point, error) {
	var parts []string
	if separator == " " {
		parts = strings.Fields(s)
	} else {
		parts = strings.Split(s, separator)
	}
	if len(parts) != 2 {
		return trapmap.Point{}, errors.Errorf("invalid point %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return trapmap.Point{}, errors.Wrapf(err, "invalid x in %q", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return trapmap.Point{}, errors.Wrapf(err, "invalid y in %q", s)
	}
	return trapmap.Point{X: x, Y: y}, nil
}
