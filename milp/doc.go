// Package milp implements the abstract mixed-integer-linear-program
// interface of spec.md §4.4 and §6: a typed builder for variables (with
// bounds and integrality), linear constraints with G/L senses, and an
// objective, plus a Solver trait any concrete backend can implement.
//
// This replaces the reference implementation's approach of writing a
// Python/CPLEX script to a temp file and shelling out to it
// (_examples/original_source/code/getTrueFIsVC.py's cplex_script
// generation): here the same abstract problem is built as a typed value
// and handed to whichever Solver the caller wires up. BruteForceSolver
// (solver_bruteforce.go) enumerates assignments directly and is the one
// exercised by this package's own tests; ExecSolver (solver_exec.go), a
// plain struct naming the binary and its extra arguments, shells out to an
// external MILP solver binary for real workloads.
package milp
