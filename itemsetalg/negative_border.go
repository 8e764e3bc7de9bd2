package itemsetalg

import "github.com/riondato/truefreq/core"

// Membership is a presence-only view of a frequent-itemset family: it
// answers "is X in F?" without carrying frequencies, which is all the
// negative-border construction needs (spec.md §4.2).
type Membership struct {
	set map[string]struct{}
}

// NewMembership builds a Membership from every itemset in c, ignoring
// frequencies.
func NewMembership(c core.Collection) Membership {
	m := Membership{set: make(map[string]struct{}, c.Len())}
	for _, is := range c.Itemsets() {
		m.set[is.Key()] = struct{}{}
	}
	return m
}

// Contains reports whether is belongs to the membership set.
func (m Membership) Contains(is core.Itemset) bool {
	_, ok := m.set[is.Key()]
	return ok
}

// NegativeBorder computes (a superset of) the negative border of a
// frequent-itemset family F, given F's maximal elements, the universe of
// frequent single items, and a Membership view of F itself (spec.md §4.2
// and §9: "the resulting family is a superset of the true negative
// border -- false positives are acceptable").
//
// Ported from the maximal-itemset loop in
// _examples/original_source/code/getTrueFIsVC.py (lines 157-197): for every
// maximal itemset M and every item m in M, remove m to get a "reduced"
// itemset, then for every frequent single item a not already in M try two
// candidates in order:
//
//  1. the "sibling" (reduced ∪ {a}): added to the border if it is not
//     itself already in F and every one of its immediate subsets is in F;
//  2. only if the sibling was rejected, the "child" (M ∪ {a}): added under
//     the same "not in F, every immediate subset in F" condition.
//
// membership must answer containment queries against the full frequent
// family (freq_itemsets_1_set in the reference implementation, i.e. every
// itemset of any size with frequency at least the lower base-set bound),
// not just its single-item members.
//
// The caller is expected to Merge the returned Collection-free itemset
// list with the base set before passing it on to chain-graph construction;
// NegativeBorder itself does not do that merge since it has no frequency
// values to attach to the border itemsets it discovers.
func NegativeBorder(maximalItemsets []core.Itemset, freqItems []int, membership Membership) []core.Itemset {
	border := map[string]core.Itemset{}

	isImmediateSubsetFrequent := func(candidate core.Itemset) bool {
		for _, sub := range candidate.ImmediateSubsets() {
			if !membership.Contains(sub) {
				return false
			}
		}
		return true
	}

	addIfNew := func(is core.Itemset) {
		if _, ok := border[is.Key()]; !ok {
			border[is.Key()] = is
		}
	}

	for _, maximal := range maximalItemsets {
		for _, itemToRemove := range maximal.Items() {
			// A singleton maximal has no (non-empty) reduced form, so only
			// its child candidates are tried.
			reduced, reducedErr := maximal.WithoutItem(itemToRemove)
			for _, item := range freqItems {
				if maximal.Contains(item) {
					continue
				}

				if reducedErr == nil {
					sibling := reduced.WithItem(item)
					if _, already := border[sibling.Key()]; already {
						continue // already settled as a border member
					}
					// A sibling already in F is rejected; the child is tried next.
					if !membership.Contains(sibling) && isImmediateSubsetFrequent(sibling) {
						addIfNew(sibling)
						continue // sibling accepted: its child is not also added
					}
				}

				child := maximal.WithItem(item)
				if _, already := border[child.Key()]; already {
					continue
				}
				if isImmediateSubsetFrequent(child) {
					addIfNew(child)
				}
			}
		}
	}

	out := make([]core.Itemset, 0, len(border))
	for _, is := range border {
		out = append(out, is)
	}
	return out
}
