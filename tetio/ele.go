package tetio

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sunpia/tetgen/mesh"
)

// WriteEle writes s's non-ghost, non-deleted tetrahedra in TetGen's
// .ele format: header "ntets 4 nregionattrs", then one line per cell.
func WriteEle(path string, s *mesh.Store) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()

	live := make([]int, 0, len(s.Tets))
	for i := range s.Tets {
		if !s.Tets[i].Deleted && !s.Tets[i].Ghost && s.Tets[i].Region != mesh.ExcludedRegion {
			live = append(live, i)
		}
	}

	if _, err := fmt.Fprintf(w, "%d 4 1\n", len(live)); err != nil {
		return err
	}
	for n, i := range live {
		v := s.Tets[i].V
		if _, err := fmt.Fprintf(w, "%d %d %d %d %d %d\n", n, v[0], v[1], v[2], v[3], s.Tets[i].Region); err != nil {
			return err
		}
	}
	return nil
}

// WriteFace writes the mesh's boundary faces in TetGen's .face format.
func WriteFace(path string, s *mesh.Store) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()

	faces := s.BoundaryFaces()
	if _, err := fmt.Fprintf(w, "%d 1\n", len(faces)); err != nil {
		return err
	}
	for i, bf := range faces {
		tri := s.Tets[bf.Tet].Face(bf.Face)
		if _, err := fmt.Fprintf(w, "%d %d %d %d 0\n", i, tri[0], tri[1], tri[2]); err != nil {
			return err
		}
	}
	return nil
}
