package profiler

import "errors"

// Sentinel errors for the profiler package. Match with errors.Is; callers
// at process boundaries (cmd/profile and friends) wrap with %w to attach
// the dataset path.
var (
	// ErrEmptyDataset indicates a transaction file with zero lines.
	ErrEmptyDataset = errors.New("profiler: dataset has no transactions")

	// ErrMalformedTransaction indicates a transaction line contains a token
	// that is not a positive integer item id.
	ErrMalformedTransaction = errors.New("profiler: transaction line contains a non-integer or non-positive item id")
)
