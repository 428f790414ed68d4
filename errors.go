package arbor

import "errors"

// Errors reported by graph operations. Operations wrap these with
// context; test for them with errors.Is.
var (
	// ErrInvalidWriteTiming is returned when a live node is mutated
	// outside the callback window its update handler permits.
	ErrInvalidWriteTiming = errors.New("arbor: invalid write timing")

	// ErrInvalidPickTiming is returned when pick data of a live node is
	// requested while the update handler does not permit picking.
	ErrInvalidPickTiming = errors.New("arbor: invalid pick timing")

	// ErrCyclicGraphStructure is returned when an attach operation would
	// make a node its own ancestor. The graph is left unmodified.
	ErrCyclicGraphStructure = errors.New("arbor: cyclic graph structure")

	// ErrIllegalArgument is returned for malformed input such as
	// undersized buffers or duplicate child edges.
	ErrIllegalArgument = errors.New("arbor: illegal argument")
)
