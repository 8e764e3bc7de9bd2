// Command tfi-holdout runs the Holdout TFI engine (spec.md §4.6, §6):
//
//	tfi-holdout filter_param delta theta mode exp_supports eval_supports
//
// filter_param selects the exploratory pre-filter (spec.md §9's Open
// Question, resolved as a union type): "false"/"off"/"0" disables it; a
// positive number is used directly as the Bonferroni offset D; "true"
// enables it with D defaulted to the number of single items in the
// exploratory supports file.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/riondato/truefreq/core"
	"github.com/riondato/truefreq/fimi"
	"github.com/riondato/truefreq/holdouttfi"
	"github.com/riondato/truefreq/internal/cliboot"
	"github.com/riondato/truefreq/internal/clilog"
	"github.com/riondato/truefreq/logstat"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s filter_param delta theta mode exp_supports eval_supports\n", filepath.Base(os.Args[0]))
	os.Exit(1)
}

func main() {
	logger := clilog.New(os.Getenv("TFI_VERBOSE") != "")
	cliboot.EnableTelemetry()

	if len(os.Args) != 7 {
		usage()
	}
	filterParam := os.Args[1]
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
	expPath := os.Args[5]
	evalPath := os.Args[6]

	expFile, err := os.Open(expPath)
	if err != nil {
		logger.Error("exploratory supports file not found", "path", expPath, "err", err)
		os.Exit(1)
	}
	defer expFile.Close()
	exp, nE, err := fimi.ReadResults(expFile, 0)
	if err != nil {
		logger.Error("parsing exploratory supports failed", "path", expPath, "err", err)
		os.Exit(1)
	}

	evalFile, err := os.Open(evalPath)
	if err != nil {
		logger.Error("evaluation supports file not found", "path", evalPath, "err", err)
		os.Exit(1)
	}
	defer evalFile.Close()
	eval, nV, err := fimi.ReadResults(evalFile, 0)
	if err != nil {
		logger.Error("parsing evaluation supports failed", "path", evalPath, "err", err)
		os.Exit(1)
	}

	filter := resolveFilter(filterParam, exp, logger)

	result := holdouttfi.Run(exp, eval, nE, nV, holdouttfi.Params{
		Delta:  delta,
		Theta:  theta,
		Mode:   logstat.ModeFromCore(mode),
		Filter: filter,
	})

	if err := fimi.WriteResults(os.Stdout, result.TFIs, nE+nV); err != nil {
		logger.Error("writing results failed", "err", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "%s,%v,%g,%g,%g,%s,%d,%g\n",
		"tfi-holdout", filter.Enabled, filter.D, delta, theta, mode, result.TFIs.Len(), result.Epsilon)
	logger.Info("tfi-holdout done", "certified", result.TFIs.Len(), "epsilon", result.Epsilon)
}

func resolveFilter(param string, exp core.Collection, logger *slog.Logger) holdouttfi.Filter {
	switch param {
	case "false", "off", "0", "":
		return holdouttfi.Filter{Enabled: false}
	case "true", "on":
		return holdouttfi.Filter{Enabled: true, D: float64(len(exp.SingleItems()))}
	}
	if d, err := strconv.ParseFloat(param, 64); err == nil {
		if d <= 0 {
			return holdouttfi.Filter{Enabled: false}
		}
		return holdouttfi.Filter{Enabled: true, D: d}
	}
	logger.Error("bad filter_param, disabling filter", "value", param)
	return holdouttfi.Filter{Enabled: false}
}
