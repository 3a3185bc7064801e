// Package behavior holds the immutable configuration record that
// threads through every stage of a tetrahedralization run, and the
// parser that builds one from TetGen-style command-line switches.
package behavior

// Behavior is passed by value (or as a read-only pointer) through the
// whole pipeline; nothing in this kernel mutates it once Parse returns,
// so it is safe to share across goroutines in the quality-scan worker
// pool without locking.
type Behavior struct {
	// PLC enables constrained recovery (-p): without it, the input is
	// treated as a bare point set and only Delaunay tetrahedralization
	// runs.
	PLC bool
	// Quality enables mesh refinement (-q).
	Quality bool
	// MinRadiusEdgeRatio bounds the worst allowed circumradius /
	// shortest-edge ratio when Quality is set (-q switch value, default
	// 2.0 if unset and Quality is true).
	MinRadiusEdgeRatio float64
	// MaxVolume holds the -a switch's numeric value; <= 0 means none was
	// given. Tetrahedralize does not read it: refinement applies only
	// the per-region volume bounds flooded onto tetrahedra.
	MaxVolume float64
	// VolumeConstraint records that -a was given, with or without a
	// value. Tetrahedralize does not read it.
	VolumeConstraint bool
	// AssignRegionAttributes floods region markers from the PLC's
	// region list onto every tetrahedron (-A).
	AssignRegionAttributes bool
	// Reconstruct records the -r switch. Tetrahedralize does not read
	// it: no prior mesh is loaded, and the input points are always
	// tetrahedralized from scratch.
	Reconstruct bool
	// Convex records the -c switch. Tetrahedralize does not read it; a
	// point set without a PLC is always meshed over its whole convex
	// hull.
	Convex bool
	// FacetsOnly records the -f switch. Tetrahedralize does not read it:
	// refinement runs whenever Quality is set, and the CLI writes the
	// .face file in every run without -e.
	FacetsOnly bool
	// CheckConsistency records the -C switch. Tetrahedralize does not
	// read it and runs no invariant checks of its own.
	CheckConsistency bool
	// Verbose counts -V switches (repeatable). Nothing in this module
	// reads it; no progress diagnostics are printed.
	Verbose int
	// Quiet suppresses the one-line stdout summary (-Q).
	Quiet bool
	// CoincidentTolerance is the distance below which two input points
	// are rejected as duplicates.
	CoincidentTolerance float64
	// PlanarTolerance is the residual (from stats.FitPlane) above which
	// a facet is rejected as non-planar.
	PlanarTolerance float64
	// MaxSteinerPerRecovery bounds how many Steiner points a single
	// segment or facet recovery may insert before giving up with
	// errkind.MissingSegment / errkind.MissingFacet; 0 means unlimited.
	MaxSteinerPerRecovery int
	// Seed initializes the BRIO insertion order's random shuffle, for
	// reproducible runs; 0 picks a fixed default rather than reading
	// system entropy, so repeated runs on the same input are identical
	// unless the caller asks otherwise.
	Seed int64
	// VoronoiDual additionally computes the Voronoi dual (-v).
	VoronoiDual bool
	// EdgesOnly (-e) makes the CLI write the constrained-segment list as
	// a .edge file in place of the .ele and .face files.
	EdgesOnly bool
	// ConformingDelaunay (-D) asks for a conforming Delaunay
	// tetrahedralization: segment and facet recovery by Steiner-point
	// insertion only, never by flip/cavity-retetrahedralization
	// shortcuts, so every mesh edge and face stays Delaunay. This kernel's
	// recovery (plc.RecoverSegment/RecoverFacet) is already always
	// Steiner-only, so the flag is accepted for CLI compatibility and has
	// no further effect.
	ConformingDelaunay bool
}

// Default returns the TetGen-equivalent defaults for a plain Delaunay
// tetrahedralization with no PLC and no refinement.
func Default() Behavior {
	return Behavior{
		MinRadiusEdgeRatio:    2.0,
		CoincidentTolerance:   1e-8,
		PlanarTolerance:       1e-6,
		MaxSteinerPerRecovery: 0,
		Seed:                  1,
	}
}
