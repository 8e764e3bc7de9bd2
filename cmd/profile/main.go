// Command profile reports descriptive statistics for a transaction dataset
// (spec.md §3, §4.3, §6):
//
//	profile dataset
//
// Output is diagnostics only: profile never produces a TFI collection, so
// nothing is written in FIMI format.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/riondato/truefreq/dscache"
	"github.com/riondato/truefreq/internal/cliboot"
	"github.com/riondato/truefreq/internal/clilog"
	"github.com/riondato/truefreq/profiler"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s dataset\n", filepath.Base(os.Args[0]))
	os.Exit(1)
}

func main() {
	logger := clilog.New(os.Getenv("TFI_VERBOSE") != "")

	if len(os.Args) != 2 {
		usage()
	}
	dataset := os.Args[1]

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

	fmt.Printf("size,%d\nnumitems,%d\nmaxlen,%d\nmaxsupp,%d\ndindex,%d\n",
		stats.Size, stats.NumItems(), stats.MaxLen, stats.MaxSupp, stats.DIndex)
	for _, l := range stats.SortedLengths() {
		fmt.Printf("length,%d,%d\n", l, stats.Lengths[l])
	}

	logger.Info("profile done", "size", stats.Size, "numitems", stats.NumItems(),
		"maxlen", stats.MaxLen, "maxsupp", stats.MaxSupp, "dindex", stats.DIndex)
}
