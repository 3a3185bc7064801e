package tetio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sunpia/tetgen/mesh"
	"github.com/sunpia/tetgen/vec3"
)

// WriteNode writes s's vertices in TetGen's .node format: a header line
// "npoints 3 nattributes nboundarymarkers", then one line per vertex.
func WriteNode(path string, s *mesh.Store) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()

	nattr := 0
	for _, v := range s.Vertices {
		if len(v.Attributes) > nattr {
			nattr = len(v.Attributes)
		}
	}

	if _, err := fmt.Fprintf(w, "%d 3 %d 1\n", len(s.Vertices), nattr); err != nil {
		return err
	}
	for i, v := range s.Vertices {
		fmt.Fprintf(w, "%d %.17g %.17g %.17g", i, v.Pos.X, v.Pos.Y, v.Pos.Z)
		for a := 0; a < nattr; a++ {
			val := 0.0
			if a < len(v.Attributes) {
				val = v.Attributes[a]
			}
			fmt.Fprintf(w, " %.17g", val)
		}
		fmt.Fprintf(w, " %d\n", v.Marker)
	}
	return nil
}

// NodeSet is a parsed .node file: positions, per-point attributes, and
// boundary markers, not yet loaded into a mesh.Store.
type NodeSet struct {
	Points     []vec3.Vec
	Attributes [][]float64
	Markers    []int
}

// ReadNode parses a TetGen .node file, skipping '#'-prefixed comment
// lines as the format allows.
func ReadNode(path string) (*NodeSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	header, err := nextFields(sc)
	if err != nil {
		return nil, err
	}
	if len(header) < 4 {
		return nil, fmt.Errorf("tetio: malformed .node header")
	}
	n, _ := strconv.Atoi(header[0])
	nattr, _ := strconv.Atoi(header[2])
	hasMarker, _ := strconv.Atoi(header[3])

	ns := &NodeSet{Points: make([]vec3.Vec, n), Attributes: make([][]float64, n)}
	if hasMarker != 0 {
		ns.Markers = make([]int, n)
	}
	for i := 0; i < n; i++ {
		fields, err := nextFields(sc)
		if err != nil {
			return nil, err
		}
		x, _ := strconv.ParseFloat(fields[1], 64)
		y, _ := strconv.ParseFloat(fields[2], 64)
		z, _ := strconv.ParseFloat(fields[3], 64)
		ns.Points[i] = vec3.Vec{X: x, Y: y, Z: z}
		attrs := make([]float64, nattr)
		for a := 0; a < nattr; a++ {
			attrs[a], _ = strconv.ParseFloat(fields[4+a], 64)
		}
		ns.Attributes[i] = attrs
		if hasMarker != 0 {
			m, _ := strconv.Atoi(fields[4+nattr])
			ns.Markers[i] = m
		}
	}
	return ns, nil
}

// nextFields returns the next non-comment, non-blank line's
// whitespace-separated fields.
func nextFields(sc *bufio.Scanner) ([]string, error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		return strings.Fields(line), nil
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("tetio: unexpected end of file")
}
