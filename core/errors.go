package core

import "errors"

// Sentinel errors for the core package. Callers should match these with
// errors.Is; wrap with %w only at process boundaries (CLI commands).
var (
	// ErrEmptyItemset is returned when an operation requires a non-empty itemset.
	ErrEmptyItemset = errors.New("core: itemset is empty")

	// ErrNonPositiveItem indicates an item id <= 0 was supplied; item ids are
	// positive integers per the FIMI convention (spec.md §6).
	ErrNonPositiveItem = errors.New("core: item id must be positive")

	// ErrDuplicateItemset indicates a Collection builder saw the same itemset twice.
	ErrDuplicateItemset = errors.New("core: duplicate itemset")

	// ErrNonPositiveFrequency indicates a frequency outside (0,1].
	ErrNonPositiveFrequency = errors.New("core: frequency must be in (0,1]")

	// ErrBadDelta indicates delta outside the open interval (0,1).
	ErrBadDelta = errors.New("core: delta must be in (0,1)")

	// ErrBadTheta indicates theta outside [0,1].
	ErrBadTheta = errors.New("core: theta must be in [0,1]")

	// ErrNonPositiveSize indicates a dataset/sample size <= 0.
	ErrNonPositiveSize = errors.New("core: size must be positive")

	// ErrLengthHistogramMismatch indicates the transaction-length histogram
	// does not sum to the declared dataset size.
	ErrLengthHistogramMismatch = errors.New("core: length histogram does not sum to size")

	// ErrBadPValueMode indicates a p-value mode string outside
	// {exact, chernoff, weak-chernoff}.
	ErrBadPValueMode = errors.New("core: p-value mode must be exact, chernoff, or weak-chernoff")
)
