package logstat

import "math"

// EpsVC returns the uniform-deviation bound derived from a VC-dimension
// bound v, using the universal constant c=0.5 suggested by Löffler and
// Phillips (spec.md §4.1):
//
//	eps_vc(delta, n, v) = sqrt((0.5/n) * (v + log(1/delta)))
func EpsVC(delta float64, n int, v int) float64 {
	return math.Sqrt((0.5 / float64(n)) * (float64(v) + math.Log(1/delta)))
}

// EpsShatter returns the uniform-deviation bound derived from a bound B on
// the log shatter coefficient (spec.md §4.1):
//
//	eps_shatter(delta, n, B, fmax) = 2*sqrt(fmax*2*B/n) + sqrt(2*log(2/delta)/n)
func EpsShatter(delta float64, n int, logShatterBound float64, fmax float64) float64 {
	return 2*math.Sqrt(fmax*2*logShatterBound/float64(n)) +
		math.Sqrt(2*math.Log(2/delta)/float64(n))
}

// EpsEmpVC returns the uniform-deviation bound derived from an empirical
// VC-dimension v, via EpsShatter with B = v*log(n+1) (spec.md §4.1).
func EpsEmpVC(delta float64, n int, empVCDim int, fmax float64) float64 {
	bound := float64(empVCDim) * math.Log(float64(n)+1)
	return EpsShatter(delta, n, bound, fmax)
}

// LogShatterBound combines a raw optimum-upper-bound U and an empirical (or
// non-empirical) VC-dimension estimate v into the tighter of two bounds on
// the log shatter coefficient (spec.md §4.4):
//
//	log_shatter_bound = min(log(U), v*log(e*n/v))
func LogShatterBound(n int, upperBoundU int, vcDim int) float64 {
	logU := math.Log(float64(upperBoundU))
	logGrowth := float64(vcDim) * math.Log(math.E*float64(n)/float64(vcDim))
	return math.Min(logU, logGrowth)
}
