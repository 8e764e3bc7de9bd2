package milp

// BruteForceSolver enumerates every assignment of the binary variables
// (spec.md §9: "the test suite uses a trivial brute-force solver for small
// instances") and returns the true optimum with RelativeGap 0. It panics if
// handed a non-binary variable, since the knapsack/chain formulation this
// package builds (builder.go) only ever declares binary x_T/y_a variables.
//
// Complexity: O(2^|Variables| * |Constraints| * avg-terms-per-constraint).
// Intended only for the small instances exercised by this package's tests
// and by callers that have already bounded |Variables| themselves; real
// workloads should use ExecSolver.
type BruteForceSolver struct{}

func (BruteForceSolver) Solve(p *Problem) (Solution, error) {
	if err := p.Validate(); err != nil {
		return Solution{}, err
	}
	for _, v := range p.Variables {
		if !v.Integer || v.LowerBound != 0 || v.UpperBound != 1 {
			panic("milp: BruteForceSolver only supports binary {0,1} variables")
		}
	}

	n := len(p.Variables)
	best := -1.0
	var bestAssignment []int

	assignment := make([]int, n)
	var recurse func(i int)
	recurse = func(i int) {
		if i == n {
			if !satisfies(p, assignment) {
				return
			}
			obj := objective(p, assignment)
			if obj > best {
				best = obj
				bestAssignment = append([]int(nil), assignment...)
			}
			return
		}
		assignment[i] = 0
		recurse(i + 1)
		assignment[i] = 1
		recurse(i + 1)
	}
	recurse(0)

	if bestAssignment == nil {
		return Solution{Status: StatusInfeasible, StatusString: "infeasible", Values: map[string]float64{}}, nil
	}

	values := make(map[string]float64, n)
	for i, v := range p.Variables {
		values[v.Name] = float64(bestAssignment[i])
	}
	return Solution{
		Status:        StatusOptimal,
		StatusString:  "optimal",
		BestObjective: best,
		RelativeGap:   0,
		Values:        values,
	}, nil
}

func objective(p *Problem, assignment []int) float64 {
	sum := 0.0
	for i, v := range p.Variables {
		sum += v.ObjCoeff * float64(assignment[i])
	}
	return sum
}

func satisfies(p *Problem, assignment []int) bool {
	val := make(map[string]float64, len(p.Variables))
	for i, v := range p.Variables {
		val[v.Name] = float64(assignment[i])
	}
	for _, c := range p.Constraints {
		lhs := 0.0
		for _, t := range c.Terms {
			lhs += t.Coeff * val[t.Var]
		}
		switch c.Sense {
		case SenseGE:
			if lhs < c.RHS-1e-9 {
				return false
			}
		case SenseLE:
			if lhs > c.RHS+1e-9 {
				return false
			}
		}
	}
	return true
}
