package fimi

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/riondato/truefreq/core"
)

// ReadResults parses a FIMI-format itemset-support stream, stopping at the
// first itemset whose frequency falls below minFreq (the reference
// implementation's create_results treats the remainder of a non-increasing
// file as irrelevant once this happens). Returns the collection of itemsets
// with frequency >= minFreq and the dataset size parsed from the header.
//
// Returns ErrBadHeader if the first line is not "(SIZE)", ErrNotSorted if
// two consecutive frequencies increase, or ErrMalformedLine if an itemset
// line cannot be parsed.
func ReadResults(r io.Reader, minFreq float64) (core.Collection, int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return core.Collection{}, 0, ErrBadHeader
	}
	size, err := parseHeader(scanner.Text())
	if err != nil {
		return core.Collection{}, 0, err
	}

	var b core.CollectionBuilder
	prevFreq := 1.0
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, "(") {
			continue
		}
		items, support, err := parseItemsetLine(line)
		if err != nil {
			return core.Collection{}, 0, err
		}
		freq := float64(support) / float64(size)
		if freq > prevFreq {
			return core.Collection{}, 0, ErrNotSorted
		}
		if freq < minFreq {
			break
		}
		is, err := core.NewItemset(items)
		if err != nil {
			return core.Collection{}, 0, fmt.Errorf("%w: %v", ErrMalformedLine, err)
		}
		b.Add(is, freq)
		prevFreq = freq
	}
	if err := scanner.Err(); err != nil {
		return core.Collection{}, 0, fmt.Errorf("fimi: reading results: %w", err)
	}

	c, err := b.Build()
	if err != nil {
		return core.Collection{}, 0, fmt.Errorf("fimi: building collection: %w", err)
	}
	return c, size, nil
}

func parseHeader(line string) (int, error) {
	open := strings.Index(line, "(")
	closeIdx := strings.Index(line, ")")
	if open == -1 || closeIdx == -1 || closeIdx < open {
		return 0, ErrBadHeader
	}
	size, err := strconv.Atoi(strings.TrimSpace(line[open+1 : closeIdx]))
	if err != nil {
		return 0, ErrBadHeader
	}
	return size, nil
}

func parseItemsetLine(line string) ([]int, int, error) {
	open := strings.LastIndex(line, "(")
	closeIdx := strings.LastIndex(line, ")")
	if open == -1 || closeIdx == -1 || closeIdx < open {
		return nil, 0, ErrMalformedLine
	}
	fields := strings.Fields(line[:open])
	items := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, 0, ErrMalformedLine
		}
		items = append(items, v)
	}
	support, err := strconv.Atoi(strings.TrimSpace(line[open+1 : closeIdx]))
	if err != nil {
		return nil, 0, ErrMalformedLine
	}
	return items, support, nil
}
