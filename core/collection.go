package core

import "sort"

// Collection maps Itemset -> empirical frequency in (0, 1]. Frequencies are
// strictly positive and keys are unique by construction; there is no public
// way to mutate a Collection after NewCollection returns, matching the
// "produced by a single pass or a pure transformation" lifecycle of
// spec.md §3.
//
// A Collection plays one of several roles depending on how it was produced
// (observed supports, candidates, base set, negative border, certified
// TFIs, maximal, closed); the type itself carries no tag for the role since
// Go's type system would force an awkward wrapper for no behavioral gain —
// callers track role through which variable holds the Collection, the way
// the original Python pipeline tracks it through variable names like
// freq_itemsets_1_dict vs base_set vs negative_border.
type Collection struct {
	freq map[string]entry
}

type entry struct {
	itemset Itemset
	freq    float64
}

// NewCollection builds a Collection from parallel itemsets and frequencies.
// Returns ErrDuplicateItemset if the same itemset appears twice, or
// ErrNonPositiveFrequency if any frequency is outside (0,1].
func NewCollection(itemsets []Itemset, freqs []float64) (Collection, error) {
	if len(itemsets) != len(freqs) {
		panic("core: itemsets and freqs length mismatch")
	}
	m := make(map[string]entry, len(itemsets))
	for i, is := range itemsets {
		if freqs[i] <= 0 || freqs[i] > 1 {
			return Collection{}, ErrNonPositiveFrequency
		}
		if _, exists := m[is.Key()]; exists {
			return Collection{}, ErrDuplicateItemset
		}
		m[is.Key()] = entry{itemset: is, freq: freqs[i]}
	}
	return Collection{freq: m}, nil
}

// EmptyCollection returns a Collection with no itemsets.
func EmptyCollection() Collection { return Collection{freq: map[string]entry{}} }

// Len returns the number of itemsets (|C| in spec.md §3).
func (c Collection) Len() int { return len(c.freq) }

// Frequency returns the frequency of is and whether is is present.
func (c Collection) Frequency(is Itemset) (float64, bool) {
	e, ok := c.freq[is.Key()]
	return e.freq, ok
}

// Contains reports whether is is a member of the collection.
func (c Collection) Contains(is Itemset) bool {
	_, ok := c.freq[is.Key()]
	return ok
}

// Itemsets returns the collection's itemsets in non-increasing frequency
// order, matching the FIMI result-file convention (spec.md §3, §6).
func (c Collection) Itemsets() []Itemset {
	out := make([]Itemset, 0, len(c.freq))
	for _, e := range c.freq {
		out = append(out, e.itemset)
	}
	sort.Slice(out, func(i, j int) bool {
		fi, _ := c.Frequency(out[i])
		fj, _ := c.Frequency(out[j])
		if fi != fj {
			return fi > fj
		}
		return out[i].Key() < out[j].Key() // deterministic tiebreak
	})
	return out
}

// Each calls fn once per (itemset, frequency) pair in non-increasing
// frequency order, stopping early if fn returns false.
func (c Collection) Each(fn func(Itemset, float64) bool) {
	for _, is := range c.Itemsets() {
		f, _ := c.Frequency(is)
		if !fn(is, f) {
			return
		}
	}
}

// Filter returns the sub-collection of itemsets for which keep returns true.
func (c Collection) Filter(keep func(Itemset, float64) bool) Collection {
	out := EmptyCollection()
	for k, e := range c.freq {
		if keep(e.itemset, e.freq) {
			out.freq[k] = e
		}
	}
	return out
}

// Merge returns the union of c and o. When both contain the same itemset,
// o's frequency wins (callers merging disjoint result sets, the common
// case in binomtfi/holdouttfi, never hit this).
func (c Collection) Merge(o Collection) Collection {
	out := EmptyCollection()
	for k, e := range c.freq {
		out.freq[k] = e
	}
	for k, e := range o.freq {
		out.freq[k] = e
	}
	return out
}

// Intersect returns the itemsets present in both c and o, keeping c's
// frequency values.
func (c Collection) Intersect(o Collection) Collection {
	out := EmptyCollection()
	for k, e := range c.freq {
		if o.Contains(e.itemset) {
			out.freq[k] = e
		}
	}
	return out
}

// MaxFrequency returns the largest frequency in the collection, or 0 for an
// empty collection.
func (c Collection) MaxFrequency() float64 {
	max := 0.0
	for _, e := range c.freq {
		if e.freq > max {
			max = e.freq
		}
	}
	return max
}

// SingleItems returns the set of items whose singleton itemset is present
// in the collection.
func (c Collection) SingleItems() map[int]struct{} {
	out := make(map[int]struct{})
	for _, e := range c.freq {
		if e.itemset.Len() == 1 {
			out[e.itemset.Items()[0]] = struct{}{}
		}
	}
	return out
}

// CollectionBuilder accumulates (Itemset, frequency) pairs incrementally,
// for code paths (parsers, engines) that discover itemsets one at a time
// rather than all at once. Build finalizes it into a Collection; a zero
// CollectionBuilder is ready to use.
type CollectionBuilder struct {
	itemsets []Itemset
	freqs    []float64
}

// Add appends one (itemset, frequency) pair.
func (b *CollectionBuilder) Add(is Itemset, freq float64) {
	b.itemsets = append(b.itemsets, is)
	b.freqs = append(b.freqs, freq)
}

// Build finalizes the builder into a Collection. See NewCollection for
// error conditions.
func (b *CollectionBuilder) Build() (Collection, error) {
	return NewCollection(b.itemsets, b.freqs)
}
