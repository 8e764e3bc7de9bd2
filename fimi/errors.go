package fimi

import "errors"

// Sentinel errors for the fimi package.
var (
	// ErrBadHeader indicates the first line was not of the form "(SIZE)".
	ErrBadHeader = errors.New("fimi: header line is not of the form (SIZE)")

	// ErrNotSorted indicates a results file's support column increased
	// somewhere instead of staying non-increasing.
	ErrNotSorted = errors.New("fimi: results file is not sorted by non-increasing support")

	// ErrMalformedLine indicates an itemset line could not be parsed.
	ErrMalformedLine = errors.New("fimi: malformed itemset line")
)
