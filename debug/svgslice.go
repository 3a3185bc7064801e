// Package debug renders 2D cross-sections of a tetrahedral mesh for
// visual inspection while developing or debugging a run — a diagnostic
// collaborator, not a rendering product in its own right.
package debug

import (
	"math"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/sunpia/tetgen/mesh"
	"github.com/sunpia/tetgen/vec3"
)

// SliceSegment joins two points where a plane crosses edges of a single
// tetrahedron.
type SliceSegment struct {
	A, B vec3.Vec
}

// SliceZ cuts the plane z=height through every live (non-deleted,
// non-ghost) tetrahedron, testing each of its six edges for a sign
// change and linearly interpolating the crossing point. Crossings are
// paired in edge order (first with second, third with fourth): a
// tetrahedron cut in a triangle yields one of its three sides, and one
// cut in a quadrilateral yields two segments that need not be sides of
// it.
func SliceZ(s *mesh.Store, height float64) []SliceSegment {
	var segs []SliceSegment
	edges := [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

	for i := range s.Tets {
		t := &s.Tets[i]
		if t.Deleted || t.Ghost {
			continue
		}
		var crossings []vec3.Vec
		for _, e := range edges {
			pa, pb := s.Pos(t.V[e[0]]), s.Pos(t.V[e[1]])
			da, db := pa.Z-height, pb.Z-height
			if (da < 0) == (db < 0) {
				continue
			}
			frac := da / (da - db)
			crossings = append(crossings, vec3.Vec{
				X: pa.X + frac*(pb.X-pa.X),
				Y: pa.Y + frac*(pb.Y-pa.Y),
				Z: height,
			})
		}
		for j := 0; j+1 < len(crossings); j += 2 {
			segs = append(segs, SliceSegment{A: crossings[j], B: crossings[j+1]})
		}
	}
	return segs
}

// WriteSVGSlice renders SliceZ(s, planeZ) as an SVG drawing, scaled to
// fit a canvasSize x canvasSize canvas with a margin.
func WriteSVGSlice(path string, s *mesh.Store, planeZ float64, canvasSize int) error {
	segs := SliceZ(s, planeZ)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, seg := range segs {
		for _, p := range [2]vec3.Vec{seg.A, seg.B} {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	margin := 20.0
	scale := (float64(canvasSize) - 2*margin) / math.Max(spanX, spanY)

	project := func(p vec3.Vec) (int, int) {
		x := margin + (p.X-minX)*scale
		y := margin + (p.Y-minY)*scale
		return int(x), int(y)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	canvas := svg.New(f)
	canvas.Start(canvasSize, canvasSize)
	canvas.Rect(0, 0, canvasSize, canvasSize, "fill:white")
	for _, seg := range segs {
		x1, y1 := project(seg.A)
		x2, y2 := project(seg.B)
		canvas.Line(x1, y1, x2, y2, "stroke:black;stroke-width:1")
	}
	canvas.End()
	return nil
}
