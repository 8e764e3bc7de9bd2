// Command sample draws a uniform random sample of N transactions from a
// dataset without loading the whole file into memory (spec.md §1 plumbing,
// SPEC_FULL.md §C.2, standing in for the original's externalSort.py-backed
// sampling stage):
//
//	sample N dataset
//
// Transactions are read one line at a time and reservoir-sampled (Algorithm
// R), so memory use is bounded by N rather than by the dataset size.
package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/riondato/truefreq/internal/clilog"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s N dataset\n", filepath.Base(os.Args[0]))
	os.Exit(1)
}

func main() {
	logger := clilog.New(os.Getenv("TFI_VERBOSE") != "")

	if len(os.Args) != 3 {
		usage()
	}
	n, err := strconv.Atoi(os.Args[1])
	if err != nil || n <= 0 {
		logger.Error("N must be a positive integer", "value", os.Args[1])
		os.Exit(1)
	}
	dataset := os.Args[2]

	f, err := os.Open(dataset)
	if err != nil {
		logger.Error("dataset not found", "path", dataset, "err", err)
		os.Exit(1)
	}
	defer f.Close()

	reservoir := make([]string, 0, n)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	seen := 0
	for scanner.Scan() {
		line := scanner.Text()
		seen++
		if len(reservoir) < n {
			reservoir = append(reservoir, line)
			continue
		}
		j := rand.Intn(seen)
		if j < n {
			reservoir[j] = line
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Error("reading dataset failed", "err", err)
		os.Exit(1)
	}
	if seen < n {
		logger.Error("dataset has fewer transactions than N", "seen", seen, "n", n)
		os.Exit(1)
	}

	out := bufio.NewWriter(os.Stdout)
	for _, line := range reservoir {
		fmt.Fprintln(out, line)
	}
	out.Flush()

	logger.Info("sample done", "n", n, "dataset_size", seen)
}
