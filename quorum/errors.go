package quorum

import "errors"

// Sentinel errors for the malformed-input taxonomy in spec.md §7. Each
// is wrapped with the offending validator or quorum set before being
// returned, following the teacher's plain errors.New + fmt.Errorf("%w")
// convention (core/errors.go) rather than a custom error-struct
// hierarchy.
var (
	// ErrEmptyQuorumSet is returned when a quorum set has no
	// validators and no inner quorum sets.
	ErrEmptyQuorumSet = errors.New("empty quorum set")

	// ErrThresholdOutOfRange is returned when threshold < 1 or
	// threshold > len(validators)+len(inner).
	ErrThresholdOutOfRange = errors.New("threshold out of range")

	// ErrDuplicateValidator is returned when two validators in a
	// network share the same identifier.
	ErrDuplicateValidator = errors.New("duplicate validator")

	// ErrUnknownValidator is returned when a quorum set references a
	// validator identifier not present in the network.
	ErrUnknownValidator = errors.New("unknown validator")

	// ErrMaxDepthExceeded is returned when a quorum set's nesting
	// exceeds the soft recursion bound (spec.md §5).
	ErrMaxDepthExceeded = errors.New("quorum set nesting exceeds max depth")

	// ErrEmptyNetwork is returned by operations that require at least
	// one validator.
	ErrEmptyNetwork = errors.New("network has no validators")
)
