package scaling

import (
	"fmt"
	"strings"

	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

// Decision é o status de uma árvore de decisão e o motivo legível
type Decision struct {
	Status domain.ScalingStatus
	Reason string
}

type LaunchInput struct {
	StopLoss   float64
	AdScore    int
	Trend      domain.Trend
	TotalSpend float64
}

// LaunchDecision decide anúncios com gasto acumulado abaixo de ₹5.000
func LaunchDecision(in LaunchInput) Decision {
	sl := rupees(in.StopLoss)
	trend := lower(in.Trend)

	if in.TotalSpend < LearningMinSpend {
		return Decision{domain.StatusMonitor, fmt.Sprintf("Learning phase: %s spent, need %s minimum", rupees(in.TotalSpend), rupees(LearningMinSpend))}
	}

	if in.StopLoss < LaunchStopLossHardStop {
		return Decision{domain.StatusKill, fmt.Sprintf("Stop Loss %s beyond the %s hard limit", sl, rupees(LaunchStopLossHardStop))}
	}

	if in.StopLoss < LaunchStopLossCritical {
		if in.AdScore >= AdScoreStrong && in.Trend == domain.TrendImproving {
			return Decision{domain.StatusLastChance, fmt.Sprintf("Stop Loss %s critical, Ad Score %d strong and improving", sl, in.AdScore)}
		}
		return Decision{domain.StatusKill, fmt.Sprintf("Stop Loss %s critical, Ad Score %d cannot carry it", sl, in.AdScore)}
	}

	if in.StopLoss < LaunchStopLossWarning {
		switch {
		case in.AdScore >= AdScoreStrong:
			if in.Trend == domain.TrendImproving {
				return Decision{domain.StatusContinue, fmt.Sprintf("Stop Loss %s in warning zone, Ad Score %d strong and improving", sl, in.AdScore)}
			}
			return Decision{domain.StatusMonitor, fmt.Sprintf("Stop Loss %s in warning zone, Ad Score %d strong, trend %s", sl, in.AdScore, trend)}
		case in.AdScore >= AdScoreDecent:
			if in.Trend == domain.TrendImproving {
				return Decision{domain.StatusMonitor, fmt.Sprintf("Stop Loss %s in warning zone, Ad Score %d decent and improving", sl, in.AdScore)}
			}
			return Decision{domain.StatusLastChance, fmt.Sprintf("Stop Loss %s in warning zone, Ad Score %d decent, trend %s", sl, in.AdScore, trend)}
		case in.AdScore >= AdScoreWeak:
			return Decision{domain.StatusLastChance, fmt.Sprintf("Stop Loss %s in warning zone, Ad Score %d weak", sl, in.AdScore)}
		default:
			return Decision{domain.StatusKill, fmt.Sprintf("Stop Loss %s in warning zone, Ad Score %d poor", sl, in.AdScore)}
		}
	}

	switch {
	case in.AdScore >= AdScoreStrong:
		return Decision{domain.StatusContinue, fmt.Sprintf("Ad Score %d strong, Stop Loss %s safe", in.AdScore, sl)}
	case in.AdScore >= AdScoreDecent:
		if in.Trend == domain.TrendDeclining {
			return Decision{domain.StatusMonitor, fmt.Sprintf("Ad Score %d decent but declining", in.AdScore)}
		}
		return Decision{domain.StatusContinue, fmt.Sprintf("Ad Score %d decent, trend %s", in.AdScore, trend)}
	case in.AdScore >= AdScoreWeak:
		switch in.Trend {
		case domain.TrendImproving, domain.TrendStable:
			return Decision{domain.StatusMonitor, fmt.Sprintf("Ad Score %d weak, trend %s", in.AdScore, trend)}
		case domain.TrendDeclining:
			return Decision{domain.StatusLastChance, fmt.Sprintf("Ad Score %d weak and declining", in.AdScore)}
		default:
			// sem dias suficientes para tendência
			return Decision{domain.StatusLastChance, fmt.Sprintf("Ad Score %d weak, trend %s", in.AdScore, trend)}
		}
	default:
		switch in.Trend {
		case domain.TrendImproving:
			return Decision{domain.StatusMonitor, fmt.Sprintf("Ad Score %d poor but improving", in.AdScore)}
		case domain.TrendStable:
			return Decision{domain.StatusLastChance, fmt.Sprintf("Ad Score %d poor, not improving", in.AdScore)}
		default:
			return Decision{domain.StatusKill, fmt.Sprintf("Ad Score %d poor, trend %s", in.AdScore, trend)}
		}
	}
}

func lower[T ~string](v T) string {
	return strings.ToLower(string(v))
}
