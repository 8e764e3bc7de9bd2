// Command tfi-vc runs the VC TFI engine (spec.md §4.7, §6):
//
//	tfi-vc use_additional delta theta gap dataset supports_file
//
// The external MILP solver binary is named by the TFI_SOLVER_CMD
// environment variable (default "cbc"); TFI_SOLVER_ARGS, if set, is a
// space-separated list of extra arguments inserted before the LP file path.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/riondato/truefreq/dscache"
	"github.com/riondato/truefreq/fimi"
	"github.com/riondato/truefreq/internal/cliboot"
	"github.com/riondato/truefreq/internal/clilog"
	"github.com/riondato/truefreq/milp"
	"github.com/riondato/truefreq/profiler"
	"github.com/riondato/truefreq/vctfi"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s use_additional delta theta gap dataset supports_file\n", filepath.Base(os.Args[0]))
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
	gap, err := strconv.ParseFloat(os.Args[4], 64)
	if err != nil {
		logger.Error("gap is not a number", "value", os.Args[4])
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

	solverCmd := os.Getenv("TFI_SOLVER_CMD")
	if solverCmd == "" {
		solverCmd = "cbc"
	}
	var solverArgs []string
	if raw := os.Getenv("TFI_SOLVER_ARGS"); raw != "" {
		solverArgs = strings.Fields(raw)
	}
	solver := milp.ExecSolver{Command: solverCmd, Args: solverArgs}

	result, err := vctfi.Run(solver, sampleSupports, stats, n, vctfi.Params{
		Delta:                  delta,
		Theta:                  theta,
		RelGapTarget:           gap,
		TimeLimitSec:           600,
		UseAdditionalKnowledge: useAdditional,
	})
	if err != nil {
		logger.Error("VC engine failed", "err", err)
		os.Exit(1)
	}

	if err := fimi.WriteResults(os.Stdout, result.TFIs, n); err != nil {
		logger.Error("writing results failed", "err", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "%s,%v,%g,%g,%g,%d,%d,%g,%g,%d,%d\n",
		"tfi-vc", useAdditional, delta, theta, gap,
		sampleSupports.Len(), result.TFIs.Len(), result.Epsilon1, result.Epsilon2,
		result.VCDimNotEmpirical, result.VCDimEmpirical)
	logger.Info("tfi-vc done",
		"certified", result.TFIs.Len(), "epsilon1", result.Epsilon1, "epsilon2", result.Epsilon2,
		"base_set", result.BaseSetSize, "negative_border", result.NegativeBorder,
		"vcdim_not_emp", result.VCDimNotEmpirical, "vcdim_emp", result.VCDimEmpirical)
}
