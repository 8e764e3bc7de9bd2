package profiler

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/riondato/truefreq/core"
)

// ProfileFile opens path and delegates to Profile.
func ProfileFile(path string) (core.DatasetStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return core.DatasetStats{}, fmt.Errorf("profiler: opening %s: %w", path, err)
	}
	defer f.Close()
	return Profile(f)
}

// Profile computes core.DatasetStats from r, a FIMI-format transaction
// stream (one transaction per line, whitespace-separated positive item
// ids), in a single pass (spec.md §4.3).
func Profile(r io.Reader) (core.DatasetStats, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return core.DatasetStats{}, ErrEmptyDataset
	}

	first, err := parseTransaction(scanner.Text())
	if err != nil {
		return core.DatasetStats{}, err
	}

	itemSupp := map[int]int{}
	items := map[int]struct{}{}
	lengths := map[int]int{1: 0} // placeholder, overwritten below to first's length
	delete(lengths, 1)

	for _, it := range first.Items() {
		itemSupp[it]++
		items[it] = struct{}{}
	}
	lengths[first.Len()]++

	size := 1
	maxLen := first.Len()
	dIndex := 1
	// longest (by non-increasing length) currently-tracked pairwise
	// incomparable transactions; bounded to at most dIndex entries.
	tracked := []core.Itemset{first}

	for scanner.Scan() {
		t, err := parseTransaction(scanner.Text())
		if err != nil {
			return core.DatasetStats{}, err
		}
		size++
		lengths[t.Len()]++
		for _, it := range t.Items() {
			itemSupp[it]++
			items[it] = struct{}{}
		}

		if t.Len() > dIndex {
			subsetOfTracked := false
			for _, p := range tracked {
				if t.IsSubsetOf(p) {
					subsetOfTracked = true
					break
				}
			}
			if subsetOfTracked {
				if t.Len() > maxLen {
					maxLen = t.Len()
				}
				continue
			}

			tracked = append(tracked, t)
			sort.SliceStable(tracked, func(i, j int) bool { return tracked[i].Len() > tracked[j].Len() })

			newDIndex := 0
			for _, p := range tracked {
				if p.Len() <= newDIndex {
					break
				}
				newDIndex++
			}
			dIndex = newDIndex
			if len(tracked) > dIndex {
				tracked = tracked[:dIndex]
			}
		}

		if t.Len() > maxLen {
			maxLen = t.Len()
		}
	}
	if err := scanner.Err(); err != nil {
		return core.DatasetStats{}, fmt.Errorf("profiler: reading dataset: %w", err)
	}

	maxSupp := 0
	for _, c := range itemSupp {
		if c > maxSupp {
			maxSupp = c
		}
	}

	return core.NewDatasetStats(size, items, maxLen, maxSupp, lengths, dIndex)
}

func parseTransaction(line string) (core.Itemset, error) {
	fields := strings.Fields(line)
	items := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v <= 0 {
			return core.Itemset{}, ErrMalformedTransaction
		}
		items = append(items, v)
	}
	is, err := core.NewItemset(items)
	if err != nil {
		return core.Itemset{}, fmt.Errorf("%w: %v", ErrMalformedTransaction, err)
	}
	return is, nil
}
