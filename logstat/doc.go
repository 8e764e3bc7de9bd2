// Package logstat implements the log-space statistics engine described in
// spec.md §4.1: log-binomial coefficients, the union-bound (Bonferroni)
// factor, exact and Chernoff binomial p-values, and the three VC-style
// uniform-deviation bounds (eps_vc, eps_shatter, eps_emp_vc).
//
// Every probability, p-value, critical value, and union-bound factor is
// kept as a natural logarithm throughout (spec.md §9, "Log-space
// discipline"); callers compare against log(delta), never against delta
// itself, and only exponentiate when formatting output for a human.
//
// The formulas are ported directly from the reference implementation
// (_examples/original_source/code/utils.py, epsilon.py): log_factorial,
// log_binomial, get_union_bound_factor, pvalue_exact/pvalue_chernoff,
// get_eps_vc_dim, get_eps_shattercoeff_bound, get_eps_emp_vc_dim.
package logstat
