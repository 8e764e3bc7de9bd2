package logstat

import "github.com/riondato/truefreq/core"

// ModeFromCore converts the CLI-facing core.PValueMode tag into the Mode
// PValue dispatches on internally, so command entry points never need to
// duplicate the {Exact,Chernoff,WeakChernoff} mapping themselves.
func ModeFromCore(m core.PValueMode) Mode {
	switch m {
	case core.Exact:
		return ModeExact
	case core.WeakChernoff:
		return ModeWeakChernoff
	default:
		return ModeChernoff
	}
}
