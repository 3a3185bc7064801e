// Package stats provides the small numerical-analysis helpers the
// kernel needs around its core geometry: plane fitting for facet
// planarity checks, and distribution summaries for quality reporting.
package stats

import (
	"gonum.org/v1/gonum/mat"

	"github.com/sunpia/tetgen/vec3"
)

// PlaneFit is the least-squares plane through a point set: a centroid,
// a unit normal, and the worst perpendicular residual observed.
type PlaneFit struct {
	Centroid    vec3.Vec
	Normal      vec3.Vec
	MaxResidual float64
}

// FitPlane computes the best-fit plane through pts via SVD of the
// centered coordinate matrix: the normal is the right singular vector
// with the smallest singular value, the direction of least variance.
// Used to test PLC facets for near-planarity before accepting them.
func FitPlane(pts []vec3.Vec) PlaneFit {
	n := len(pts)
	var centroid vec3.Vec
	for _, p := range pts {
		centroid = centroid.Add(p)
	}
	centroid = centroid.DivScalar(float64(n))

	data := make([]float64, n*3)
	for i, p := range pts {
		c := p.Sub(centroid)
		data[i*3+0] = c.X
		data[i*3+1] = c.Y
		data[i*3+2] = c.Z
	}
	m := mat.NewDense(n, 3, data)

	var svd mat.SVD
	svd.Factorize(m, mat.SVDThin)
	var v mat.Dense
	svd.VTo(&v)

	normal := vec3.Vec{X: v.At(0, 2), Y: v.At(1, 2), Z: v.At(2, 2)}.Normalize()

	maxResidual := 0.0
	for _, p := range pts {
		d := p.Sub(centroid).Dot(normal)
		if d < 0 {
			d = -d
		}
		if d > maxResidual {
			maxResidual = d
		}
	}
	return PlaneFit{Centroid: centroid, Normal: normal, MaxResidual: maxResidual}
}
