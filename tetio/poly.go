package tetio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/sunpia/tetgen/plc"
	"github.com/sunpia/tetgen/vec3"
)

// ReadPoly parses a TetGen .poly file: an optional point list (if its
// count is 0, the returned NodeSet is nil and no companion .node file
// is read), a facet list, a hole list, and a region list.
func ReadPoly(path string) (*NodeSet, plc.PLC, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, plc.PLC{}, err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)

	// Part 1: points.
	header, err := nextFields(sc)
	if err != nil {
		return nil, plc.PLC{}, err
	}
	npoints, _ := strconv.Atoi(header[0])
	nattr, _ := strconv.Atoi(header[2])
	hasMarker := len(header) > 3 && header[3] == "1"

	var ns *NodeSet
	if npoints > 0 {
		ns = &NodeSet{Points: make([]vec3.Vec, npoints), Attributes: make([][]float64, npoints)}
		if hasMarker {
			ns.Markers = make([]int, npoints)
		}
		for i := 0; i < npoints; i++ {
			fields, err := nextFields(sc)
			if err != nil {
				return nil, plc.PLC{}, err
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
		}
	}

	// Part 2: facets.
	facetHeader, err := nextFields(sc)
	if err != nil {
		return nil, plc.PLC{}, err
	}
	nfacets, _ := strconv.Atoi(facetHeader[0])

	out := plc.PLC{}
	for i := 0; i < nfacets; i++ {
		fh, err := nextFields(sc)
		if err != nil {
			return nil, plc.PLC{}, err
		}
		npoly, _ := strconv.Atoi(fh[0])
		marker := 0
		if len(fh) > 2 {
			marker, _ = strconv.Atoi(fh[2])
		}

		facet := plc.Facet{Marker: marker}
		for p := 0; p < npoly; p++ {
			cl, err := nextFields(sc)
			if err != nil {
				return nil, plc.PLC{}, err
			}
			ncorners, _ := strconv.Atoi(cl[0])
			loop := make([]int, ncorners)
			for c := 0; c < ncorners; c++ {
				loop[c], _ = strconv.Atoi(cl[1+c])
			}
			facet.Polygons = append(facet.Polygons, loop)
		}

		nholes := 0
		if len(fh) > 1 {
			nholes, _ = strconv.Atoi(fh[1])
		}
		for h := 0; h < nholes; h++ {
			if _, err := nextFields(sc); err != nil {
				return nil, plc.PLC{}, err
			}
		}
		out.Facets = append(out.Facets, facet)
	}

	// Part 3: holes.
	if holeHeader, err := nextFields(sc); err == nil {
		nholes, _ := strconv.Atoi(holeHeader[0])
		for i := 0; i < nholes; i++ {
			fields, err := nextFields(sc)
			if err != nil {
				return nil, plc.PLC{}, err
			}
			x, _ := strconv.ParseFloat(fields[1], 64)
			y, _ := strconv.ParseFloat(fields[2], 64)
			z, _ := strconv.ParseFloat(fields[3], 64)
			out.Holes = append(out.Holes, vec3.Vec{X: x, Y: y, Z: z})
		}

		// Part 4: regions (optional).
		if regionHeader, err := nextFields(sc); err == nil {
			nregions, _ := strconv.Atoi(regionHeader[0])
			for i := 0; i < nregions; i++ {
				fields, err := nextFields(sc)
				if err != nil {
					return nil, plc.PLC{}, err
				}
				x, _ := strconv.ParseFloat(fields[1], 64)
				y, _ := strconv.ParseFloat(fields[2], 64)
				z, _ := strconv.ParseFloat(fields[3], 64)
				attr, _ := strconv.Atoi(fields[4])
				vol := 0.0
				if len(fields) > 5 {
					vol, _ = strconv.ParseFloat(fields[5], 64)
				}
				out.Regions = append(out.Regions, plc.Region{
					Point:     vec3.Vec{X: x, Y: y, Z: z},
					Attribute: attr,
					MaxVolume: vol,
				})
			}
		}
	}

	if ns == nil && npoints == 0 {
		return nil, out, fmt.Errorf("tetio: .poly file has no inline points; load a companion .node file")
	}
	return ns, out, nil
}
