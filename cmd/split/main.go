// Command split partitions a dataset into an exploratory and an evaluation
// half without loading it into memory (spec.md §1 plumbing, SPEC_FULL.md
// §C.2, standing in for the original's externalSort.py-backed partition
// stage):
//
//	split N dataset exp_out eval_out
//
// N transactions, chosen uniformly at random without replacement, go to
// exp_out; the rest go to eval_out. The partition is computed in a single
// streaming pass using the dataset's known size (from the dataset-stats
// cache) so no transaction needs to be held beyond the line being written.
package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/riondato/truefreq/dscache"
	"github.com/riondato/truefreq/internal/cliboot"
	"github.com/riondato/truefreq/internal/clilog"
	"github.com/riondato/truefreq/profiler"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s N dataset exp_out eval_out\n", filepath.Base(os.Args[0]))
	os.Exit(1)
}

func main() {
	logger := clilog.New(os.Getenv("TFI_VERBOSE") != "")

	if len(os.Args) != 5 {
		usage()
	}
	n, err := strconv.Atoi(os.Args[1])
	if err != nil || n < 0 {
		logger.Error("N must be a non-negative integer", "value", os.Args[1])
		os.Exit(1)
	}
	dataset := os.Args[2]
	expPath := os.Args[3]
	evalPath := os.Args[4]

	cache := cliboot.NewCache()
	key, err := dscache.CanonicalKey(dataset)
	if err != nil {
		logger.Error("dataset not found", "path", dataset, "err", err)
		os.Exit(1)
	}
	stats, ok := cache.Get(context.Background(), key)
	if !ok {
		stats, err = profiler.ProfileFile(dataset)
		if err != nil {
			logger.Error("profiling dataset failed", "path", dataset, "err", err)
			os.Exit(1)
		}
		cache.Put(context.Background(), key, stats)
	}
	if n > stats.Size {
		logger.Error("N exceeds dataset size", "n", n, "size", stats.Size)
		os.Exit(1)
	}

	in, err := os.Open(dataset)
	if err != nil {
		logger.Error("dataset not found", "path", dataset, "err", err)
		os.Exit(1)
	}
	defer in.Close()

	expFile, err := os.Create(expPath)
	if err != nil {
		logger.Error("cannot create exp_out", "path", expPath, "err", err)
		os.Exit(1)
	}
	defer expFile.Close()
	evalFile, err := os.Create(evalPath)
	if err != nil {
		logger.Error("cannot create eval_out", "path", evalPath, "err", err)
		os.Exit(1)
	}
	defer evalFile.Close()

	expW := bufio.NewWriter(expFile)
	evalW := bufio.NewWriter(evalFile)

	remainingExp := n
	remainingTotal := stats.Size
	expCount, evalCount := 0, 0

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		toExp := remainingExp > 0 && (remainingTotal == remainingExp || rand.Intn(remainingTotal) < remainingExp)
		if toExp {
			fmt.Fprintln(expW, line)
			expCount++
			remainingExp--
		} else {
			fmt.Fprintln(evalW, line)
			evalCount++
		}
		remainingTotal--
	}
	if err := scanner.Err(); err != nil {
		logger.Error("reading dataset failed", "err", err)
		os.Exit(1)
	}
	if err := expW.Flush(); err != nil {
		logger.Error("writing exp_out failed", "err", err)
		os.Exit(1)
	}
	if err := evalW.Flush(); err != nil {
		logger.Error("writing eval_out failed", "err", err)
		os.Exit(1)
	}

	logger.Info("split done", "exp_count", expCount, "eval_count", evalCount, "total", stats.Size)
}
