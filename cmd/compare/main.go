// Command compare reports overlap and frequency-error statistics between a
// reference TFI collection and a candidate one (spec.md §4.8, §6):
//
//	compare min_freq epsilon orig_res sample_res
//
// Unlike the tfi-* engines, compare has no itemset collection of its own to
// emit: its entire output is a block of name,value diagnostics lines on
// stdout.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/riondato/truefreq/compare"
	"github.com/riondato/truefreq/fimi"
	"github.com/riondato/truefreq/internal/clilog"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s min_freq epsilon orig_res sample_res\n", filepath.Base(os.Args[0]))
	os.Exit(1)
}

func main() {
	logger := clilog.New(os.Getenv("TFI_VERBOSE") != "")

	if len(os.Args) != 5 {
		usage()
	}
	minFreq, err := strconv.ParseFloat(os.Args[1], 64)
	if err != nil {
		logger.Error("min_freq is not a number", "value", os.Args[1])
		os.Exit(1)
	}
	epsilon, err := strconv.ParseFloat(os.Args[2], 64)
	if err != nil {
		logger.Error("epsilon is not a number", "value", os.Args[2])
		os.Exit(1)
	}
	origPath := os.Args[3]
	samplePath := os.Args[4]

	origFile, err := os.Open(origPath)
	if err != nil {
		logger.Error("orig_res not found", "path", origPath, "err", err)
		os.Exit(1)
	}
	defer origFile.Close()
	orig, _, err := fimi.ReadResults(origFile, minFreq)
	if err != nil {
		logger.Error("parsing orig_res failed", "path", origPath, "err", err)
		os.Exit(1)
	}

	sampleFile, err := os.Open(samplePath)
	if err != nil {
		logger.Error("sample_res not found", "path", samplePath, "err", err)
		os.Exit(1)
	}
	defer sampleFile.Close()
	sample, _, err := fimi.ReadResults(sampleFile, minFreq)
	if err != nil {
		logger.Error("parsing sample_res failed", "path", samplePath, "err", err)
		os.Exit(1)
	}

	result := compare.Compare(orig, sample, epsilon, logger)

	fmt.Printf("intersection,%d\nfalse_negatives,%d\nfalse_positives,%d\njaccard,%g\n"+
		"max_absolute_error,%g\navg_absolute_error,%g\navg_relative_error,%g\nwrong_eps,%d\n",
		result.Intersection, result.FalseNegatives, result.FalsePositives, result.Jaccard,
		result.MaxAbsoluteError, result.AvgAbsoluteError, result.AvgRelativeError, result.WrongEps)

	logger.Info("compare done",
		"intersection", result.Intersection, "false_negatives", result.FalseNegatives,
		"false_positives", result.FalsePositives, "jaccard", result.Jaccard,
		"wrong_eps", result.WrongEps)
}
