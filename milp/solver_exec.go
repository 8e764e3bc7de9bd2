package milp

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/riondato/truefreq/telemetry"
)

// ExecSolver shells out to an external MILP solver binary, the same
// "write a script, invoke it as a subprocess, parse its stdout" pattern the
// reference implementation uses for CPLEX
// (_examples/original_source/code/getTrueFIsVC.py lines ~268-493), but
// targeting a solver-agnostic line protocol instead of a generated Python
// script: the binary is invoked as
//
//	<Command> <lp-file>
//
// and must print exactly one line to stdout:
//
//	<status_code> <status_string> <best_objective> <relative_gap>
//
// ExecSolver writes the problem to a temp file in LP format and deletes it
// on every exit path (spec.md §6: "shared resources: the MILP script file
// is created exclusively per invocation... deleted on every exit path
// including error"), and enforces the 600-second default timeout of
// spec.md §4.4 unless Problem.TimeLimitSec overrides it.
type ExecSolver struct {
	// Command is the solver binary path, e.g. "cbc" or "scip".
	Command string
	// Args are extra arguments inserted before the LP file path.
	Args []string
}

func (s ExecSolver) Solve(p *Problem) (Solution, error) {
	if err := p.Validate(); err != nil {
		return Solution{}, err
	}

	f, err := os.CreateTemp("", "truefreq-milp-*.lp")
	if err != nil {
		return Solution{}, fmt.Errorf("milp: creating scratch file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if err := writeLP(f, p); err != nil {
		f.Close()
		return Solution{}, fmt.Errorf("milp: writing LP file: %w", err)
	}
	if err := f.Close(); err != nil {
		return Solution{}, fmt.Errorf("milp: closing LP file: %w", err)
	}

	timeout := 600 * time.Second
	if p.TimeLimitSec > 0 {
		timeout = time.Duration(p.TimeLimitSec * float64(time.Second))
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	args := append(append([]string{}, s.Args...), path)
	cmd := exec.CommandContext(ctx, s.Command, args...)
	start := time.Now()
	out, err := cmd.Output()
	elapsed := time.Since(start)
	if err != nil {
		telemetry.ObserveSolverInvocation("error", elapsed)
		return Solution{}, fmt.Errorf("milp: solver %s exited with error: %w", s.Command, err)
	}

	sol, err := parseSolverOutput(out)
	if err != nil {
		telemetry.ObserveSolverInvocation("error", elapsed)
		return Solution{}, err
	}
	telemetry.ObserveSolverInvocation(sol.StatusString, elapsed)
	return sol, nil
}

func parseSolverOutput(out []byte) (Solution, error) {
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	last := lines[len(lines)-1]
	fields := strings.Fields(last)
	if len(fields) != 4 {
		return Solution{}, fmt.Errorf("milp: malformed solver output line %q", last)
	}

	statusCode, err := strconv.Atoi(fields[0])
	if err != nil {
		return Solution{}, fmt.Errorf("milp: parsing status code: %w", err)
	}
	obj, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Solution{}, fmt.Errorf("milp: parsing objective: %w", err)
	}
	gap, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return Solution{}, fmt.Errorf("milp: parsing relative gap: %w", err)
	}

	status := StatusOptimal
	if statusCode != 0 {
		status = StatusTimeLimitFeasible
	}

	return Solution{
		Status:        status,
		StatusString:  fields[1],
		BestObjective: obj,
		RelativeGap:   gap,
	}, nil
}

// writeTerm writes one signed coefficient-variable term of an LP expression,
// rendering a negative coefficient as "- c x" rather than "+ -c x" (both
// parse fine in CBC/SCIP's LP reader, but only the former reads naturally).
func writeTerm(w *bufio.Writer, coeff float64, name string, first bool) {
	sign, mag := "+", coeff
	if mag < 0 {
		sign, mag = "-", -mag
	}
	if first {
		if sign == "-" {
			fmt.Fprintf(w, "- %g %s", mag, name)
		} else {
			fmt.Fprintf(w, "%g %s", mag, name)
		}
		return
	}
	fmt.Fprintf(w, " %s %g %s", sign, mag, name)
}

// writeLP renders p in a minimal CPLEX-LP-format subset: a maximize
// objective, the constraint block, and bounds/integrality declarations.
func writeLP(f *os.File, p *Problem) error {
	w := bufio.NewWriter(f)

	fmt.Fprintln(w, "Maximize")
	fmt.Fprint(w, " obj: ")
	for i, v := range p.Variables {
		writeTerm(w, v.ObjCoeff, v.Name, i == 0)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Subject To")
	for i, c := range p.Constraints {
		fmt.Fprintf(w, " c%d: ", i)
		for j, t := range c.Terms {
			writeTerm(w, t.Coeff, t.Var, j == 0)
		}
		op := ">="
		if c.Sense == SenseLE {
			op = "<="
		}
		fmt.Fprintf(w, " %s %g\n", op, c.RHS)
	}

	fmt.Fprintln(w, "Bounds")
	for _, v := range p.Variables {
		fmt.Fprintf(w, " %g <= %s <= %g\n", v.LowerBound, v.Name, v.UpperBound)
	}

	fmt.Fprintln(w, "Binaries")
	for _, v := range p.Variables {
		if v.Integer && v.LowerBound == 0 && v.UpperBound == 1 {
			fmt.Fprintf(w, " %s\n", v.Name)
		}
	}

	fmt.Fprintln(w, "End")
	return w.Flush()
}
