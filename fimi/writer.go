package fimi

import (
	"bufio"
	"fmt"
	"io"

	"github.com/riondato/truefreq/core"
)

// WriteResults writes c in FIMI format: a header line " (dsSize)" followed
// by one "item1 item2 ... (support)" line per itemset, in non-increasing
// support order (core.Collection.Itemsets already returns that order).
// Ported from _examples/original_source/code/utils.py's print_itemsets.
func WriteResults(w io.Writer, c core.Collection, dsSize int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, " (%d)\n", dsSize); err != nil {
		return err
	}
	for _, is := range c.Itemsets() {
		freq, _ := c.Frequency(is)
		support := int(freq * float64(dsSize))
		if _, err := fmt.Fprintf(bw, "%s (%d)\n", is.String(), support); err != nil {
			return err
		}
	}
	return bw.Flush()
}
