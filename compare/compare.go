package compare

import (
	"log/slog"

	"github.com/riondato/truefreq/core"
)

// Result holds the statistics produced by Compare (spec.md §4.8).
type Result struct {
	Intersection      int
	FalseNegatives    int
	FalsePositives    int
	FalsePositivesSet []core.Itemset
	Jaccard           float64
	MaxAbsoluteError  float64
	AvgAbsoluteError  float64
	AvgRelativeError  float64
	WrongEps          int
}

// Compare reports overlap and frequency-error statistics between a
// reference collection orig and a candidate collection other, treating
// itemsets present in other but absent from orig as false positives (the
// reference implementation logs one warning per false positive via
// sys.stderr; here each is instead surfaced through logger at Warn level,
// so callers without a logger can pass nil and get silence).
//
// wrongEps counts itemsets in the intersection whose absolute frequency
// difference exceeds epsilon.
func Compare(orig, other core.Collection, epsilon float64, logger *slog.Logger) Result {
	var r Result

	origItemsets := orig.Itemsets()
	otherItemsets := other.Itemsets()

	unionSize := 0
	seen := map[string]struct{}{}
	for _, is := range origItemsets {
		seen[is.Key()] = struct{}{}
	}
	for _, is := range otherItemsets {
		if _, ok := seen[is.Key()]; !ok {
			seen[is.Key()] = struct{}{}
		}
	}
	unionSize = len(seen)

	for _, is := range origItemsets {
		if other.Contains(is) {
			r.Intersection++
		} else {
			r.FalseNegatives++
		}
	}
	for _, is := range otherItemsets {
		if !orig.Contains(is) {
			r.FalsePositives++
			r.FalsePositivesSet = append(r.FalsePositivesSet, is)
			if logger != nil {
				f, _ := other.Frequency(is)
				logger.Warn("false positive itemset", "itemset", is.String(), "freq", f)
			}
		}
	}

	if unionSize > 0 {
		r.Jaccard = float64(r.Intersection) / float64(unionSize)
	}

	absSum, relSum := 0.0, 0.0
	for _, is := range origItemsets {
		otherFreq, ok := other.Frequency(is)
		if !ok {
			continue
		}
		origFreq, _ := orig.Frequency(is)
		absErr := abs(otherFreq - origFreq)
		absSum += absErr
		if absErr > r.MaxAbsoluteError {
			r.MaxAbsoluteError = absErr
		}
		if absErr > epsilon {
			r.WrongEps++
		}
		relSum += absErr / origFreq
	}

	if r.Intersection > 0 {
		r.AvgAbsoluteError = absSum / float64(r.Intersection)
		r.AvgRelativeError = relSum / float64(r.Intersection)
	}

	return r
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
