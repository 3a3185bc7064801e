package stats

import "gonum.org/v1/gonum/stat"

// QualitySummary reports the distribution of a per-tetrahedron quality
// metric (radius-edge ratio, dihedral angle, volume...) across a mesh.
// Tetrahedralize fills Output.Quality with one over radius-edge ratios;
// the CLI prints its Count and Max unless -Q is given.
type QualitySummary struct {
	Count          int
	Min, Max       float64
	Mean, StdDev   float64
	Median         float64
	WorstPercentil float64 // 95th percentile, the figure refinement cares about
}

// Summarize computes a QualitySummary over values. values is sorted in
// place, matching gonum/stat's quantile precondition.
func Summarize(values []float64) QualitySummary {
	if len(values) == 0 {
		return QualitySummary{}
	}
	sortFloats(values)

	mean, std := stat.MeanStdDev(values, nil)
	return QualitySummary{
		Count:          len(values),
		Min:            values[0],
		Max:            values[len(values)-1],
		Mean:           mean,
		StdDev:         std,
		Median:         stat.Quantile(0.5, stat.Empirical, values, nil),
		WorstPercentil: stat.Quantile(0.95, stat.Empirical, values, nil),
	}
}

func sortFloats(values []float64) {
	var qs func(lo, hi int)
	qs = func(lo, hi int) {
		if hi-lo < 2 {
			return
		}
		pivot := values[(lo+hi)/2]
		i, j := lo, hi-1
		for i <= j {
			for values[i] < pivot {
				i++
			}
			for values[j] > pivot {
				j--
			}
			if i <= j {
				values[i], values[j] = values[j], values[i]
				i++
				j--
			}
		}
		qs(lo, j+1)
		qs(i, hi)
	}
	qs(0, len(values))
}
