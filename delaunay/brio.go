package delaunay

import (
	"math"
	"math/big"

	"github.com/sunpia/tetgen/vec3"
)

// hilbertBits is the per-axis quantization depth used to map floating
// point coordinates onto the integer grid the Hilbert curve walks.
const hilbertBits = 16

// hilbertIndex computes the distance along a 3D Hilbert curve of order
// hilbertBits for the integer coordinates in coords, via Skilling's
// transpose algorithm (axes-to-transpose, then bit interleave).
func hilbertIndex(coords [3]uint64) *big.Int {
	x := coords
	const nd = 3
	m := uint64(1) << (hilbertBits - 1)

	for q := m; q > 1; q >>= 1 {
		p := q - 1
		for i := 0; i < nd; i++ {
			if x[i]&q != 0 {
				x[0] ^= p
			} else {
				t := (x[0] ^ x[i]) & p
				x[0] ^= t
				x[i] ^= t
			}
		}
	}
	for i := 1; i < nd; i++ {
		x[i] ^= x[i-1]
	}
	t := uint64(0)
	for q := m; q > 1; q >>= 1 {
		if x[nd-1]&q != 0 {
			t ^= q - 1
		}
	}
	for i := range x {
		x[i] ^= t
	}

	result := new(big.Int)
	one := big.NewInt(1)
	for b := hilbertBits - 1; b >= 0; b-- {
		for i := 0; i < nd; i++ {
			result.Lsh(result, 1)
			if (x[i]>>uint(b))&1 != 0 {
				result.Or(result, one)
			}
		}
	}
	return result
}

// quantize maps points into the box's bounding cube on an integer grid
// of side 2^hilbertBits.
func quantize(p vec3.Vec, box vec3.Box3) [3]uint64 {
	span := box.Diagonal()
	if span <= 0 {
		span = 1
	}
	scale := float64(uint64(1)<<hilbertBits-1) / span
	clamp := func(v float64) uint64 {
		if v < 0 {
			return 0
		}
		max := float64(uint64(1)<<hilbertBits - 1)
		if v > max {
			return uint64(max)
		}
		return uint64(v)
	}
	return [3]uint64{
		clamp(math.Round((p.X - box.Min.X) * scale)),
		clamp(math.Round((p.Y - box.Min.Y) * scale)),
		clamp(math.Round((p.Z - box.Min.Z) * scale)),
	}
}

// hilbertSort orders idx (indices into pts) along the Hilbert curve over
// their bounding box, in place.
func hilbertSort(idx []int, pts []vec3.Vec, box vec3.Box3) {
	keys := make(map[int]*big.Int, len(idx))
	for _, i := range idx {
		keys[i] = hilbertIndex(quantize(pts[i], box))
	}
	sortInts(idx, func(a, b int) bool { return keys[a].Cmp(keys[b]) < 0 })
}

// sortInts is a small insertion-free sort helper so this file doesn't
// need to reach for sort.Slice's interface{} closures at every call site.
func sortInts(idx []int, less func(a, b int) bool) {
	// simple, allocation-free in-place quicksort; BRIO rounds are modest
	// in size (geometric decay), so O(n log n) here is not a hotspot.
	var qs func(lo, hi int)
	qs = func(lo, hi int) {
		if hi-lo < 2 {
			return
		}
		pivot := idx[(lo+hi)/2]
		i, j := lo, hi-1
		for i <= j {
			for less(idx[i], pivot) {
				i++
			}
			for less(pivot, idx[j]) {
				j--
			}
			if i <= j {
				idx[i], idx[j] = idx[j], idx[i]
				i++
				j--
			}
		}
		qs(lo, j+1)
		qs(i, hi)
	}
	qs(0, len(idx))
}

// BRIOOrder returns an insertion order for pts following the biased
// randomized insertion order scheme: points are split into
// geometrically shrinking rounds, the smallest round first, each round
// internally sorted along a Hilbert curve for locality. shuffle supplies
// the random permutation of all indices; callers pass one backed by a
// seeded source for reproducible runs.
func BRIOOrder(pts []vec3.Vec, box vec3.Box3, shuffle func([]int)) []int {
	n := len(pts)
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	shuffle(all)

	const minRound = 16
	var rounds [][]int
	remaining := all
	for len(remaining) > minRound {
		half := len(remaining) / 2
		rounds = append(rounds, remaining[half:])
		remaining = remaining[:half]
	}
	rounds = append(rounds, remaining)

	order := make([]int, 0, n)
	for i := len(rounds) - 1; i >= 0; i-- {
		r := rounds[i]
		hilbertSort(r, pts, box)
		order = append(order, r...)
	}
	return order
}
