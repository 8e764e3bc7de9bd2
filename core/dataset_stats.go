package core

// DatasetStats is the immutable descriptive-statistics record produced by
// the dataset profiler (spec.md §3, §4.3). All fields are filled in by a
// single pass over a transaction file; nothing here is ever recomputed
// incrementally after construction.
type DatasetStats struct {
	// Size is the number of transactions.
	Size int
	// Items is the set of distinct item ids observed.
	Items map[int]struct{}
	// MaxLen is the maximum transaction length.
	MaxLen int
	// MaxSupp is the maximum per-item support count.
	MaxSupp int
	// Lengths maps transaction length -> count of transactions of that length.
	Lengths map[int]int
	// DIndex is the profiler's upper bound on the d-index (spec.md §4.3).
	DIndex int
}

// NewDatasetStats validates and constructs a DatasetStats record. It
// enforces the Lengths-sum-to-Size invariant from spec.md §3.
func NewDatasetStats(size int, items map[int]struct{}, maxLen, maxSupp int, lengths map[int]int, dIndex int) (DatasetStats, error) {
	if size <= 0 {
		return DatasetStats{}, ErrNonPositiveSize
	}
	sum := 0
	for _, c := range lengths {
		sum += c
	}
	if sum != size {
		return DatasetStats{}, ErrLengthHistogramMismatch
	}
	return DatasetStats{
		Size:    size,
		Items:   items,
		MaxLen:  maxLen,
		MaxSupp: maxSupp,
		Lengths: lengths,
		DIndex:  dIndex,
	}, nil
}

// NumItems returns the size of the item universe (spec.md §3: numitems).
func (d DatasetStats) NumItems() int { return len(d.Items) }

// MaxItemFrequency returns MaxSupp / Size, the fmax term used throughout
// the statistics engine.
func (d DatasetStats) MaxItemFrequency() float64 {
	return float64(d.MaxSupp) / float64(d.Size)
}

// SortedLengths returns the distinct transaction lengths present, in
// non-increasing order, matching the empirical-VC-dimension loop's
// iteration order (spec.md §4.4).
func (d DatasetStats) SortedLengths() []int {
	out := make([]int, 0, len(d.Lengths))
	for l := range d.Lengths {
		out = append(out, l)
	}
	sortIntsDesc(out)
	return out
}

func sortIntsDesc(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] < s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
