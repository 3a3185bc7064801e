package behavior

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a TetGen-style switch string (e.g. "pq1.2a0.1AVC") into a
// Behavior built on top of Default. Switches are single letters,
// optionally followed by a numeric value consumed greedily up to the
// next letter; unrecognized letters are reported as an error rather
// than silently ignored.
func Parse(switches string) (Behavior, error) {
	b := Default()
	i := 0
	readNumber := func() (float64, bool, error) {
		start := i
		for i < len(switches) && (isDigit(switches[i]) || switches[i] == '.' || switches[i] == '-') {
			i++
		}
		if i == start {
			return 0, false, nil
		}
		v, err := strconv.ParseFloat(switches[start:i], 64)
		if err != nil {
			return 0, false, fmt.Errorf("behavior: bad numeric value %q: %w", switches[start:i], err)
		}
		return v, true, nil
	}

	for i < len(switches) {
		c := switches[i]
		i++
		switch c {
		case 'p':
			b.PLC = true
		case 'q':
			b.Quality = true
			if v, ok, err := readNumber(); err != nil {
				return b, err
			} else if ok {
				b.MinRadiusEdgeRatio = v
			}
		case 'a':
			b.VolumeConstraint = true
			if v, ok, err := readNumber(); err != nil {
				return b, err
			} else if ok {
				b.MaxVolume = v
			}
		case 'A':
			b.AssignRegionAttributes = true
		case 'r':
			b.Reconstruct = true
		case 'c':
			b.Convex = true
		case 'f':
			b.FacetsOnly = true
		case 'C':
			b.CheckConsistency = true
		case 'V':
			b.Verbose++
		case 'Q':
			b.Quiet = true
		case 'z':
			// zero-indexed output; this kernel always indexes output
			// files from 0 (no TetGen-1 convention baggage), so the
			// switch is accepted and otherwise a no-op.
		case 'e':
			b.EdgesOnly = true
		case 'v':
			b.VoronoiDual = true
		case 'D':
			b.ConformingDelaunay = true
		case 'i':
			// accepted and ignored: no Behavior field records it and
			// no entrypoint inserts extra points.
		case ' ', '\t', '\n':
			// allow switch strings built by joining flag descriptions
		default:
			return b, fmt.Errorf("behavior: unrecognized switch %q", string(c))
		}
	}
	return b, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// String renders b back into switch notation, for logging.
func (b Behavior) String() string {
	var sb strings.Builder
	if b.PLC {
		sb.WriteByte('p')
	}
	if b.Quality {
		sb.WriteByte('q')
		sb.WriteString(strconv.FormatFloat(b.MinRadiusEdgeRatio, 'g', -1, 64))
	}
	if b.VolumeConstraint {
		sb.WriteByte('a')
		if b.MaxVolume > 0 {
			sb.WriteString(strconv.FormatFloat(b.MaxVolume, 'g', -1, 64))
		}
	}
	if b.AssignRegionAttributes {
		sb.WriteByte('A')
	}
	if b.Reconstruct {
		sb.WriteByte('r')
	}
	if b.Convex {
		sb.WriteByte('c')
	}
	if b.FacetsOnly {
		sb.WriteByte('f')
	}
	if b.CheckConsistency {
		sb.WriteByte('C')
	}
	if b.VoronoiDual {
		sb.WriteByte('v')
	}
	if b.EdgesOnly {
		sb.WriteByte('e')
	}
	if b.ConformingDelaunay {
		sb.WriteByte('D')
	}
	for n := 0; n < b.Verbose; n++ {
		sb.WriteByte('V')
	}
	if b.Quiet {
		sb.WriteByte('Q')
	}
	return sb.String()
}
