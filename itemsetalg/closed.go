package itemsetalg

import (
	"sort"

	"github.com/riondato/truefreq/core"
)

// Closed returns the sub-collection of c that is closed: X in c is closed
// iff no strict superset Y in c has the same frequency as X (spec.md §4.2).
//
// Itemsets are processed in non-decreasing cardinality order while
// maintaining a frontier of still-closed candidates; inserting X purges
// from the frontier (and from the output) every proper subset of X that
// shares X's frequency, then inserts X. This reproduces end-to-end
// scenario 3 of spec.md §8 exactly, and satisfies the closed-set law
// (closed(closed(c)) == closed(c)) because once an itemset is purged it can
// never be reintroduced.
func Closed(c core.Collection) core.Collection {
	itemsets := c.Itemsets()
	sort.SliceStable(itemsets, func(i, j int) bool { return itemsets[i].Len() < itemsets[j].Len() })

	frontier := make([]core.Itemset, 0, len(itemsets))
	out := map[string]struct{}{}

	for _, x := range itemsets {
		xFreq, _ := c.Frequency(x)

		kept := frontier[:0]
		for _, cand := range frontier {
			candFreq, _ := c.Frequency(cand)
			if cand.IsStrictSubsetOf(x) && candFreq == xFreq {
				delete(out, cand.Key())
				continue // purged: superseded by x at equal frequency
			}
			kept = append(kept, cand)
		}
		frontier = append(kept, x)
		out[x.Key()] = struct{}{}
	}

	var b core.CollectionBuilder
	for _, is := range itemsets {
		if _, ok := out[is.Key()]; ok {
			f, _ := c.Frequency(is)
			b.Add(is, f)
		}
	}
	result, _ := b.Build() // itemsets/frequencies are a subset of a valid Collection
	return result
}

// Maximal returns the sub-collection of c containing only itemsets with no
// proper superset also in c (spec.md §4.2). Processes itemsets in
// non-increasing cardinality order, accepting X iff no previously accepted
// itemset is a proper superset of X.
func Maximal(c core.Collection) core.Collection {
	itemsets := c.Itemsets()
	sort.SliceStable(itemsets, func(i, j int) bool { return itemsets[i].Len() > itemsets[j].Len() })

	var accepted []core.Itemset
	var b core.CollectionBuilder
	for _, x := range itemsets {
		supersededed := false
		for _, acc := range accepted {
			if x.IsStrictSubsetOf(acc) {
				supersededed = true
				break
			}
		}
		if !supersededed {
			accepted = append(accepted, x)
			f, _ := c.Frequency(x)
			b.Add(x, f)
		}
	}
	result, _ := b.Build()
	return result
}
