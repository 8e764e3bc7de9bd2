// Command tfi-binom runs the Binomial TFI engine (spec.md §4.5, §6):
//
//	tfi-binom use_additional delta theta mode dataset supports_file
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/riondato/truefreq/binomtfi"
	"github.com/riondato/truefreq/core"
	"github.com/riondato/truefreq/dscache"
	"github.com/riondato/truefreq/fimi"
	"github.com/riondato/truefreq/internal/cliboot"
	"github.com/riondato/truefreq/internal/clilog"
	"github.com/riondato/truefreq/logstat"
	"github.com/riondato/truefreq/profiler"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s use_additional delta theta mode dataset supports_file\n", filepath.Base(os.Args[0]))
	os.Exit(1)
}

func main() {
	logger := clilog.New(os.Getenv("TFI_VERBOSE") != "")
	cliboot.EnableTelemetry()

	if len(os.Args) != 7 {
		usage()
	}
	useAdditional, err := strconv.ParseBool(os.Args[1])
	if err != nil {
		logger.Error("use_additional must be a boolean", "value", os.Args[1])
		os.Exit(1)
	}
	delta, err := strconv.ParseFloat(os.Args[2], 64)
	if err != nil {
		logger.Error("delta is not a number", "value", os.Args[2])
		os.Exit(1)
	}
	theta, err := strconv.ParseFloat(os.Args[3], 64)
	if err != nil {
		logger.Error("theta is not a number", "value", os.Args[3])
		os.Exit(1)
	}
	mode, err := core.ParsePValueMode(os.Args[4])
	if err != nil {
		logger.Error("bad p-value mode", "value", os.Args[4])
		os.Exit(1)
	}
	dataset := os.Args[5]
	supportsPath := os.Args[6]

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

	f, err := os.Open(supportsPath)
	if err != nil {
		logger.Error("supports file not found", "path", supportsPath, "err", err)
		os.Exit(1)
	}
	defer f.Close()

	sampleSupports, n, err := fimi.ReadResults(f, 0)
	if err != nil {
		logger.Error("parsing supports file failed", "path", supportsPath, "err", err)
		os.Exit(1)
	}

	result := binomtfi.Run(sampleSupports, stats, n, binomtfi.Params{
		Delta:                  delta,
		Theta:                  theta,
		Mode:                   logstat.ModeFromCore(mode),
		UseAdditionalKnowledge: useAdditional,
	})

	if err := fimi.WriteResults(os.Stdout, result.TFIs, n); err != nil {
		logger.Error("writing results failed", "err", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "%s,%v,%g,%g,%s,%d,%d,%g\n",
		"tfi-binom", useAdditional, delta, theta, mode, sampleSupports.Len(), result.TFIs.Len(), result.Epsilon)
	logger.Info("tfi-binom done", "certified", result.TFIs.Len(), "epsilon", result.Epsilon, "candidates", sampleSupports.Len())
}
