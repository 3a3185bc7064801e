// Package tetio reads and writes the file formats this kernel's output
// can take: TetGen's plain-text .node/.poly/.ele/.face/.edge family, the
// CalculiX/Abaqus .inp format, and the debug exporters in dxf.go and
// threemf.go.
package tetio

import (
	"fmt"
	"os"
	"time"

	"github.com/sunpia/tetgen/mesh"
)

// WriteCalculiX writes every non-ghost, non-deleted, non-excluded
// tetrahedron in s as a C3D4 element in an Abaqus/CalculiX .inp file:
// node IDs start at 1,
// one *NODE section, then one *ELEMENT section per region attribute,
// each naming its own element set so the rest of a CalculiX deck can
// reference regions by name. Adapted from the teacher's MeshTet4.WriteInp: same
// header banner, same "ID starts from one not zero" node and element
// numbering, generalized from one fixed Eall set to one set per region.
func WriteCalculiX(path string, s *mesh.Store) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "**\n** Structure: tetrahedral mesh.\n**\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f, "*HEADING\nModel: 3D mesh Date: %s\n", time.Now().UTC().Format("2006-Jan-02 MST")); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(f, "*NODE"); err != nil {
		return err
	}
	for i, v := range s.Vertices {
		if _, err := fmt.Fprintf(f, "%d,%f,%f,%f\n", i+1, v.Pos.X, v.Pos.Y, v.Pos.Z); err != nil {
			return err
		}
	}

	byRegion := make(map[int][]int)
	for i := range s.Tets {
		t := &s.Tets[i]
		if t.Deleted || t.Ghost || t.Region == mesh.ExcludedRegion {
			continue
		}
		byRegion[t.Region] = append(byRegion[t.Region], i)
	}

	eleID := 1
	for region, tets := range byRegion {
		setName := regionSetName(region)
		if _, err := fmt.Fprintf(f, "*ELEMENT, TYPE=C3D4, ELSET=%s\n", setName); err != nil {
			return err
		}
		for _, ti := range tets {
			v := s.Tets[ti].V
			if _, err := fmt.Fprintf(f, "%d,%d,%d,%d,%d\n", eleID, v[0]+1, v[1]+1, v[2]+1, v[3]+1); err != nil {
				return err
			}
			eleID++
		}
	}
	return nil
}

func regionSetName(region int) string {
	if region == mesh.NoIndex {
		return "Eall"
	}
	return fmt.Sprintf("Eregion%d", region)
}
