package core_test

import (
	"testing"

	"github.com/riondato/truefreq/core"
)

func TestNewItemset_SortsDedupsValidates(t *testing.T) {
	t.Parallel()

	is, err := core.NewItemset([]int{3, 1, 2, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := is.Items(), []int{1, 2, 3}; !intsEqual(got, want) {
		t.Fatalf("Items() = %v, want %v", got, want)
	}
	if is.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", is.Len())
	}

	if _, err := core.NewItemset(nil); err != core.ErrEmptyItemset {
		t.Fatalf("empty itemset: got %v, want ErrEmptyItemset", err)
	}
	if _, err := core.NewItemset([]int{1, 0, 2}); err != core.ErrNonPositiveItem {
		t.Fatalf("non-positive item: got %v, want ErrNonPositiveItem", err)
	}
}

func TestItemset_SubsetRelations(t *testing.T) {
	t.Parallel()

	a := core.MustItemset(1, 2)
	b := core.MustItemset(1, 2, 3)
	c := core.MustItemset(4, 5)

	if !a.IsSubsetOf(b) {
		t.Fatalf("expected %v subset of %v", a, b)
	}
	if !a.IsStrictSubsetOf(b) {
		t.Fatalf("expected %v strict subset of %v", a, b)
	}
	if b.IsSubsetOf(a) {
		t.Fatalf("did not expect %v subset of %v", b, a)
	}
	if a.IsSubsetOf(c) {
		t.Fatalf("did not expect %v subset of %v", a, c)
	}
	if !a.IsSubsetOf(a) {
		t.Fatalf("an itemset must be a subset of itself")
	}
	if a.IsStrictSubsetOf(a) {
		t.Fatalf("an itemset must not be a strict subset of itself")
	}
}

func TestItemset_ImmediateSubsets(t *testing.T) {
	t.Parallel()

	is := core.MustItemset(1, 2, 3)
	subs := is.ImmediateSubsets()
	if len(subs) != 3 {
		t.Fatalf("got %d immediate subsets, want 3", len(subs))
	}
	for _, sub := range subs {
		if !sub.IsStrictSubsetOf(is) || sub.Len() != 2 {
			t.Fatalf("subset %v is not an immediate subset of %v", sub, is)
		}
	}

	single := core.MustItemset(7)
	if subs := single.ImmediateSubsets(); len(subs) != 0 {
		t.Fatalf("singleton has %d immediate subsets, want 0", len(subs))
	}
}

func TestItemset_EqualAndKey(t *testing.T) {
	t.Parallel()

	a := core.MustItemset(2, 1)
	b := core.MustItemset(1, 2)
	if !a.Equal(b) {
		t.Fatalf("expected %v == %v", a, b)
	}
	if a.Key() != b.Key() {
		t.Fatalf("expected equal keys, got %q and %q", a.Key(), b.Key())
	}
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
