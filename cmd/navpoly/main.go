// Command navpoly decomposes a rectangular walkable area with convex
// obstacles into convex polygons and prints (and optionally renders) the
// result.
//
// Input is newline-separated points in the form "x y", with polygons
// separated by a blank line. The first polygon is the 4-vertex bounding
// rectangle; every following polygon is a convex obstacle inside it.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/irfansharif/navmesh"
	"github.com/irfansharif/navmesh/geom"
	"github.com/irfansharif/navmesh/internal/render"
)

var (
	input = kingpin.Arg("input", "Input file with polygons; reads stdin when omitted.").String()
	out   = kingpin.Flag("out", "Write a PNG visualization of the decomposition.").Short('o').String()
	size  = kingpin.Flag("size", "Output image size in pixels.").Default("800").Int()
	seed  = kingpin.Flag("seed", "Palette seed for the visualization.").Default("0").Int64()
)

func init() {
	log.SetFlags(log.Ltime | log.Lshortfile)
}

func main() {
	kingpin.Parse()

	in := os.Stdin
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatalf("Failed to open input: %v", err)
		}
		defer f.Close()
		in = f
	}

	polygons, err := readPolygons(in)
	if err != nil {
		log.Fatalf("Failed to read polygons: %v", err)
	}
	if len(polygons) == 0 {
		log.Fatalf("No polygons in input")
	}
	bounds, obstacles := polygons[0], polygons[1:]

	result, err := navmesh.Decompose(bounds, obstacles)
	if err != nil {
		log.Fatalf("Decomposition failed: %v", err)
	}

	obstacleArea := 0.0
	for _, obstacle := range obstacles {
		obstacleArea += geom.Area(obstacle)
	}
	walkable := 0.0
	for i, polygon := range result {
		walkable += geom.Area(polygon)
		fmt.Printf("polygon %d (%d vertices):", i, len(polygon))
		for _, p := range polygon {
			fmt.Printf(" (%g, %g)", p.X, p.Y)
		}
		fmt.Println()
	}
	fmt.Printf("%d obstacles, %d convex polygons, walkable area %.4f (bounds %.4f - obstacles %.4f)\n",
		len(obstacles), len(result), walkable, geom.Area(bounds), obstacleArea)

	if *out == "" {
		return
	}
	dc, err := render.Draw(bounds, obstacles, result, render.Options{Size: *size, Seed: *seed})
	if err != nil {
		log.Fatalf("Rendering failed: %v", err)
	}
	if err := dc.SavePNG(*out); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	fmt.Printf("wrote %s\n", *out)
}

// readPolygons parses blank-line-separated polygons, one "x y" point per
// line.
func readPolygons(in io.Reader) ([]navmesh.Polygon, error) {
	var polygons []navmesh.Polygon
	var points navmesh.Polygon

	scanner := bufio.NewScanner(in)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())

		// A blank line ends the current polygon, if any points were collected.
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = nil
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected \"x y\", got %q", lineno, line)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineno, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineno, err)
		}
		points = append(points, geom.MakePoint(x, y))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons, nil
}
