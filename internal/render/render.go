// Package render draws decompositions to raster images for debugging. It
// maps world coordinates into image space, fills each convex polygon with a
// distinct color, and overlays the obstacle and boundary outlines.
package render

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"github.com/irfansharif/navmesh"
	"github.com/irfansharif/navmesh/geom"
)

const margin = 16 // image-space border around the drawn area, in pixels

// Options controls the output image.
type Options struct {
	Size int   // width and height of the (square) output image in pixels
	Seed int64 // palette seed; same seed, same colors
}

// Draw renders the decomposition to an image context. The bounding box
// determines the world-to-image mapping; polygons are the decomposition
// output and obstacles are drawn on top as filled outlines. The caller owns
// encoding (e.g. SavePNG).
func Draw(bounds navmesh.Polygon, obstacles, polygons []navmesh.Polygon, opts Options) (*gg.Context, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("invalid image size %d", opts.Size)
	}
	toImage, err := worldToImage(bounds, opts.Size)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(opts.Size, opts.Size)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	colors := palette(len(polygons), opts.Seed)
	for i, polygon := range polygons {
		tracePath(dc, polygon, toImage)
		dc.SetColor(colors[i])
		dc.FillPreserve()
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.SetLineWidth(1.5)
		dc.Stroke()
	}

	for _, obstacle := range obstacles {
		tracePath(dc, obstacle, toImage)
		dc.SetRGB(0.15, 0.15, 0.15)
		dc.FillPreserve()
		dc.SetRGB(0, 0, 0)
		dc.SetLineWidth(2)
		dc.Stroke()
	}

	tracePath(dc, bounds, toImage)
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(2)
	dc.Stroke()

	return dc, nil
}

func tracePath(dc *gg.Context, polygon navmesh.Polygon, toImage func(geom.Point) (float64, float64)) {
	for i, p := range polygon {
		x, y := toImage(p)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
}

// worldToImage returns a mapping from world coordinates to image pixels that
// fits the bounding box into a size×size image with a margin, preserving
// aspect ratio. Fails on degenerate (zero-extent) bounds.
func worldToImage(bounds navmesh.Polygon, size int) (func(geom.Point) (float64, float64), error) {
	xmin, xmax := math.MaxFloat64, -math.MaxFloat64
	ymin, ymax := math.MaxFloat64, -math.MaxFloat64
	for _, p := range bounds {
		xmin = math.Min(xmin, p.X)
		xmax = math.Max(xmax, p.X)
		ymin = math.Min(ymin, p.Y)
		ymax = math.Max(ymax, p.Y)
	}
	if len(bounds) == 0 || xmin >= xmax || ymin >= ymax {
		return nil, fmt.Errorf("degenerate bounds: x[%f,%f] y[%f,%f]", xmin, xmax, ymin, ymax)
	}

	usable := float64(size) - 2*margin
	scale := math.Min(usable/(xmax-xmin), usable/(ymax-ymin))
	offsetX := (float64(size) - scale*(xmax-xmin)) / 2
	offsetY := (float64(size) - scale*(ymax-ymin)) / 2

	return func(p geom.Point) (float64, float64) {
		return offsetX + (p.X-xmin)*scale, offsetY + (p.Y-ymin)*scale
	}, nil
}
