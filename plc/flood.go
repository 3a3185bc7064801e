package plc

import (
	"fmt"

	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"

	"github.com/sunpia/tetgen/delaunay"
	"github.com/sunpia/tetgen/mesh"
	"github.com/sunpia/tetgen/vec3"
)

func sortTriple(a, b, c int) [3]int {
	arr := [3]int{a, b, c}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if arr[j] < arr[i] {
				arr[i], arr[j] = arr[j], arr[i]
			}
		}
	}
	return arr
}

func tetNodeID(t int) string {
	return fmt.Sprintf("t%d", t)
}

// buildDualGraph constructs an unweighted graph whose nodes are
// non-ghost, non-deleted tetrahedra, with an edge across every internal
// face that is not one of the recovered facet walls. Region flooding
// then reduces to a breadth-first search over this graph.
func buildDualGraph(s *mesh.Store, walls [][3]int) *core.Graph {
	wall := make(map[[3]int]bool, len(walls))
	for _, w := range walls {
		wall[sortTriple(w[0], w[1], w[2])] = true
	}

	g := core.NewGraph()
	for i := range s.Tets {
		if s.Tets[i].Deleted || s.Tets[i].Ghost {
			continue
		}
		g.AddVertex(tetNodeID(i))
	}
	for i := range s.Tets {
		t := &s.Tets[i]
		if t.Deleted || t.Ghost {
			continue
		}
		for f := 0; f < 4; f++ {
			nb := t.N[f]
			if nb <= i || s.Tets[nb].Deleted || s.Tets[nb].Ghost {
				continue
			}
			face := t.Face(f)
			if wall[sortTriple(face[0], face[1], face[2])] {
				continue
			}
			_, _ = g.AddEdge(tetNodeID(i), tetNodeID(nb), 0)
		}
	}
	return g
}

// FloodRegions assigns a.Attribute and a.MaxVolume to every tetrahedron
// reachable from each region's point without crossing a recovered
// facet wall, and marks every tetrahedron reachable from a hole point
// with mesh.ExcludedRegion so output writers, the quality scan, and
// refinement all treat it as void rather than mesh interior. Tetrahedra
// reached by neither keep Region == mesh.NoIndex.
func FloodRegions(s *mesh.Store, seed int, walls [][3]int, regions []Region, holes []vec3.Vec) error {
	g := buildDualGraph(s, walls)

	flood := func(point vec3.Vec, apply func(t *mesh.Tet)) error {
		loc := delaunay.Locate(s, seed, point)
		if s.Tets[loc].Ghost {
			return fmt.Errorf("plc: region/hole point %v lies outside the mesh", point)
		}
		result, err := bfs.BFS(g, tetNodeID(loc))
		if err != nil {
			return fmt.Errorf("plc: flooding region: %w", err)
		}
		for _, id := range result.Order {
			var t int
			if _, scanErr := fmt.Sscanf(id, "t%d", &t); scanErr != nil {
				continue
			}
			apply(&s.Tets[t])
		}
		return nil
	}

	for _, h := range holes {
		if err := flood(h, func(t *mesh.Tet) {
			t.Region = mesh.ExcludedRegion
			t.MaxVolume = 0
		}); err != nil {
			return err
		}
	}
	for _, r := range regions {
		if err := flood(r.Point, func(t *mesh.Tet) {
			t.Region = r.Attribute
			t.MaxVolume = r.MaxVolume
		}); err != nil {
			return err
		}
	}
	return nil
}
