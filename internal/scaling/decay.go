package scaling

import (
	"math"

	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

// Decay calcula a queda percentual do ROAS atual em relação à linha de base
func Decay(baseline, current float64) float64 {
	if baseline <= 0 {
		return 0
	}
	return (baseline - current) / baseline * 100
}

// ClassifyDecayPattern classifica o padrão de decaimento a partir das janelas de gasto.
// L3K e L7K são obrigatórias; L5K cai para L3K e L10K cai para L7K quando ausentes.
func ClassifyDecayPattern(baseline float64, windows domain.SpendWindows) domain.DecayAssessment {
	result := domain.DecayAssessment{Pattern: domain.DecayPatternNone}
	if baseline <= 0 {
		return result
	}

	decayOf := func(w *float64) *float64 {
		if w == nil {
			return nil
		}
		d := Decay(baseline, *w)
		return &d
	}

	result.L3KDecay = decayOf(windows.L3K)
	result.L5KDecay = decayOf(windows.L5K)
	result.L7KDecay = decayOf(windows.L7K)
	result.L10KDecay = decayOf(windows.L10K)

	if result.L3KDecay == nil || result.L7KDecay == nil {
		result.Pattern = domain.DecayPatternInsufficientData
		return result
	}

	l3k := *result.L3KDecay
	l7k := *result.L7KDecay
	l5k := l3k
	if result.L5KDecay != nil {
		l5k = *result.L5KDecay
	}
	l10k := l7k
	if result.L10KDecay != nil {
		l10k = *result.L10KDecay
	}

	velocity := l3k - l7k
	result.Velocity = &velocity

	switch {
	case l3k < l5k && l5k < l7k:
		result.Pattern = domain.DecayPatternRecovering
	case l3k > l5k && l5k > l7k && l7k > l10k:
		result.Pattern = domain.DecayPatternAccelerating
	case math.Abs(l3k-l7k) < DecayStableBand:
		result.Pattern = domain.DecayPatternStable
	case l3k > l7k+DecaySuddenDropGap:
		result.Pattern = domain.DecayPatternSuddenDrop
	default:
		result.Pattern = domain.DecayPatternMixed
	}

	return result
}
