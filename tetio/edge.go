package tetio

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sunpia/tetgen/plc"
	"github.com/sunpia/tetgen/voronoi"
)

// WriteEdge writes a constrained-segment list in TetGen's .edge format.
func WriteEdge(path string, segments []plc.Segment) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()

	if _, err := fmt.Fprintf(w, "%d 1\n", len(segments)); err != nil {
		return err
	}
	for i, seg := range segments {
		if _, err := fmt.Fprintf(w, "%d %d %d %d\n", i, seg.V[0], seg.V[1], seg.Marker); err != nil {
			return err
		}
	}
	return nil
}

// WriteVNode writes a Voronoi dual's node set in TetGen's .v.node
// format, keyed by owning tetrahedron index (stable within one run).
func WriteVNode(path string, d voronoi.Dual) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()

	if _, err := fmt.Fprintf(w, "%d 3 0 0\n", len(d.Nodes)); err != nil {
		return err
	}
	for tet, p := range d.Nodes {
		if _, err := fmt.Fprintf(w, "%d %.17g %.17g %.17g\n", tet, p.X, p.Y, p.Z); err != nil {
			return err
		}
	}
	return nil
}

// WriteVEdge writes a Voronoi dual's edge list in TetGen's .v.edge
// format.
func WriteVEdge(path string, d voronoi.Dual) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()

	if _, err := fmt.Fprintf(w, "%d 0\n", len(d.Edges)); err != nil {
		return err
	}
	for i, e := range d.Edges {
		if _, err := fmt.Fprintf(w, "%d %d %d\n", i, e[0], e[1]); err != nil {
			return err
		}
	}
	return nil
}
