// Package errkind classifies the ways a tetrahedralization can fail,
// so callers can tell failure categories apart without parsing error
// strings.
package errkind

import "fmt"

// Kind enumerates the classes of failure the kernel can report.
type Kind int

const (
	// Unknown is the zero value; a *Error should never carry it.
	Unknown Kind = iota
	// CoincidentVertices marks two input points closer than the
	// configured tolerance.
	CoincidentVertices
	// DegeneratePLC marks a facet whose vertices are not coplanar
	// within tolerance, or a segment with zero length.
	DegeneratePLC
	// SelfIntersectingPLC marks two facets or segments that cross
	// without a shared vertex.
	SelfIntersectingPLC
	// MissingSegment marks a constrained segment that could not be
	// recovered by flips or Steiner insertion within the configured
	// budget.
	MissingSegment
	// MissingFacet marks a constrained facet that could not be
	// recovered.
	MissingFacet
	// Canceled marks an operation stopped by context cancellation.
	Canceled
	// Internal marks a broken invariant (non-symmetric neighbors, an
	// inverted tetrahedron surviving construction, and the like). It is
	// also returned for input with fewer than 4 points, for a failed
	// Delaunay build (such as all-coplanar input) and for an exhausted
	// refinement Steiner budget: there is no separate malformed-input or
	// non-convergence kind.
	Internal
)

func (k Kind) String() string {
	switch k {
	case CoincidentVertices:
		return "coincident vertices"
	case DegeneratePLC:
		return "degenerate PLC geometry"
	case SelfIntersectingPLC:
		return "self-intersecting PLC"
	case MissingSegment:
		return "missing segment"
	case MissingFacet:
		return "missing facet"
	case Canceled:
		return "canceled"
	case Internal:
		return "internal invariant violation"
	default:
		return "unknown"
	}
}

// Error carries a Kind alongside the usual message and optional wrapped
// cause, so callers can type-switch on Kind via errors.As without
// string matching.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New builds a *Error with no wrapped cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds a *Error wrapping cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}
