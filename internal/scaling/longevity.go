package scaling

import (
	"fmt"

	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

type LongevityInput struct {
	ROAS       float64
	Decay      domain.DecayAssessment
	StopLoss   float64
	Trend      domain.Trend
	TotalSpend float64
}

// LongevityDecision decide anúncios com gasto acumulado a partir de ₹15.000
func LongevityDecision(in LongevityInput) Decision {
	decay := percentOrNA(in.Decay.L3KDecay)
	velocity := signedPercentOrNA(in.Decay.Velocity)
	l3k := in.Decay.L3KDecay
	pattern := in.Decay.Pattern
	bufferSafe := in.StopLoss > ProfitBufferSafe

	if in.ROAS >= ROASSafeZone {
		if pattern == domain.DecayPatternAccelerating && l3k != nil && *l3k > DecayWarning {
			return Decision{domain.StatusMonitor, fmt.Sprintf("ROAS %.2f safe but decay %s is accelerating, velocity %s", in.ROAS, decay, velocity)}
		}
		return Decision{domain.StatusContinue, fmt.Sprintf("ROAS %.2f in safe zone", in.ROAS)}
	}

	if in.ROAS < ROASAcceptable {
		return Decision{domain.StatusKill, fmt.Sprintf("ROAS %.2f below break-even at %s spend", in.ROAS, rupees(in.TotalSpend))}
	}

	if in.ROAS < ROASGood {
		if pattern == domain.DecayPatternRecovering {
			return Decision{domain.StatusMonitor, fmt.Sprintf("ROAS %.2f in concern zone but recovering, decay %s", in.ROAS, decay)}
		}
		if l3k != nil && *l3k > DecayIgnore {
			return Decision{domain.StatusKill, fmt.Sprintf("ROAS %.2f in concern zone, decay %s above 20%%", in.ROAS, decay)}
		}
		if l3k != nil && *l3k > DecayMinor {
			if in.Trend == domain.TrendImproving && bufferSafe {
				return Decision{domain.StatusLastChance, fmt.Sprintf("ROAS %.2f, decay %s, Ad Score improving", in.ROAS, decay)}
			}
			return Decision{domain.StatusKill, fmt.Sprintf("ROAS %.2f, decay %s, Ad Score %s", in.ROAS, decay, lower(in.Trend))}
		}
		if (in.Trend == domain.TrendImproving || in.Trend == domain.TrendStable) && bufferSafe {
			return Decision{domain.StatusMonitor, fmt.Sprintf("ROAS %.2f, minor decay %s, buffer %s", in.ROAS, decay, signedRupees(in.StopLoss))}
		}
		return Decision{domain.StatusLastChance, fmt.Sprintf("ROAS %.2f, decay %s, low buffer %s", in.ROAS, decay, rupees(in.StopLoss))}
	}

	// zona de observação: 2.2 <= ROAS < 2.7
	if pattern == domain.DecayPatternRecovering {
		return Decision{domain.StatusContinue, fmt.Sprintf("ROAS %.2f, pattern recovering, decay %s", in.ROAS, decay)}
	}

	if l3k == nil || *l3k < DecayIgnore {
		return Decision{domain.StatusContinue, fmt.Sprintf("ROAS %.2f, decay %s within normal range", in.ROAS, decay)}
	}

	if *l3k < DecayWarning {
		if in.Decay.Velocity != nil && *in.Decay.Velocity > DecayVelocityAccelerating {
			return Decision{domain.StatusKill, fmt.Sprintf("ROAS %.2f, decay accelerating rapidly, velocity %s", in.ROAS, velocity)}
		}
		switch pattern {
		case domain.DecayPatternAccelerating:
			if bufferSafe {
				return Decision{domain.StatusMonitor, fmt.Sprintf("ROAS %.2f, accelerating decay but buffer %s", in.ROAS, signedRupees(in.StopLoss))}
			}
			return Decision{domain.StatusLastChance, fmt.Sprintf("ROAS %.2f, accelerating decay, low buffer %s", in.ROAS, rupees(in.StopLoss))}
		case domain.DecayPatternSuddenDrop:
			return Decision{domain.StatusMonitor, fmt.Sprintf("ROAS %.2f, sudden drop detected, investigate cause", in.ROAS)}
		}
		switch in.Trend {
		case domain.TrendImproving:
			return Decision{domain.StatusMonitor, fmt.Sprintf("ROAS %.2f, decay %s but Ad Score improving", in.ROAS, decay)}
		case domain.TrendStable:
			if bufferSafe {
				return Decision{domain.StatusMonitor, fmt.Sprintf("ROAS %.2f, decay %s, stable Ad Score, buffer safe", in.ROAS, decay)}
			}
			return Decision{domain.StatusLastChance, fmt.Sprintf("ROAS %.2f, decay %s, low buffer", in.ROAS, decay)}
		default:
			return Decision{domain.StatusLastChance, fmt.Sprintf("ROAS %.2f, decay %s, Ad Score %s", in.ROAS, decay, lower(in.Trend))}
		}
	}

	if in.Trend == domain.TrendImproving && bufferSafe {
		return Decision{domain.StatusLastChance, fmt.Sprintf("ROAS %.2f, high decay %s but Ad Score improving", in.ROAS, decay)}
	}
	return Decision{domain.StatusKill, fmt.Sprintf("ROAS %.2f, decay %s exceeds 30%% limit", in.ROAS, decay)}
}
