package scaling

import (
	"fmt"

	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

type ValidationInput struct {
	StopLoss   float64
	ROAS       float64
	Trajectory domain.Trajectory
	Trend      domain.Trend
	TotalSpend float64
}

// ValidationDecision decide anúncios com gasto acumulado entre ₹5.000 e ₹15.000
func ValidationDecision(in ValidationInput) Decision {
	sl := rupees(in.StopLoss)
	trend := lower(in.Trend)
	trajectory := lower(in.Trajectory)

	if in.StopLoss < ValidationStopLossHardStop {
		return Decision{domain.StatusKill, fmt.Sprintf("Stop Loss %s beyond the %s limit at %s spend", sl, rupees(ValidationStopLossHardStop), rupees(in.TotalSpend))}
	}

	if in.StopLoss > 0 {
		switch {
		case in.ROAS >= ROASAcceptable:
			return Decision{domain.StatusContinue, fmt.Sprintf("Profitable: Stop Loss %s, ROAS %.2f", signedRupees(in.StopLoss), in.ROAS)}
		case in.ROAS >= ROASWarning:
			if in.Trend == domain.TrendDeclining && in.Trajectory == domain.TrajectoryWorsening {
				return Decision{domain.StatusLastChance, fmt.Sprintf("ROAS %.2f below 2.0, trend declining and trajectory worsening", in.ROAS)}
			}
			return Decision{domain.StatusMonitor, fmt.Sprintf("ROAS %.2f below 2.0 but profitable, trend %s", in.ROAS, trend)}
		default:
			return Decision{domain.StatusLastChance, fmt.Sprintf("ROAS %.2f critical despite positive Stop Loss", in.ROAS)}
		}
	}

	if in.StopLoss < ValidationStopLossWarning {
		switch {
		case in.Trajectory == domain.TrajectoryImproving && in.Trend == domain.TrendImproving:
			switch {
			case in.ROAS >= ROASAcceptable:
				return Decision{domain.StatusMonitor, fmt.Sprintf("Stop Loss %s but improving, ROAS %.2f", sl, in.ROAS)}
			case in.ROAS >= ROASWarning:
				return Decision{domain.StatusLastChance, fmt.Sprintf("Stop Loss %s, ROAS %.2f in warning zone, trajectory and trend improving", sl, in.ROAS)}
			default:
				return Decision{domain.StatusKill, fmt.Sprintf("Stop Loss %s, ROAS %.2f critical", sl, in.ROAS)}
			}
		case in.Trajectory == domain.TrajectoryImproving && in.Trend == domain.TrendStable:
			return Decision{domain.StatusLastChance, fmt.Sprintf("Stop Loss %s, trajectory improving but trend stable", sl)}
		default:
			return Decision{domain.StatusKill, fmt.Sprintf("Stop Loss %s, trajectory %s, trend %s", sl, trajectory, trend)}
		}
	}

	// perto do break-even: entre -₹1.000 e ₹0
	switch in.Trajectory {
	case domain.TrajectoryImproving:
		switch {
		case in.Trend == domain.TrendImproving && in.ROAS >= ROASAcceptable:
			return Decision{domain.StatusContinue, fmt.Sprintf("Trajectory improving, ROAS %.2f, trend improving", in.ROAS)}
		case (in.Trend == domain.TrendImproving || in.Trend == domain.TrendStable) && in.ROAS >= ROASWarning:
			return Decision{domain.StatusContinue, fmt.Sprintf("Trajectory improving, ROAS %.2f, trend %s", in.ROAS, trend)}
		case in.ROAS < ROASWarning:
			return Decision{domain.StatusMonitor, fmt.Sprintf("Trajectory improving but ROAS %.2f below 1.8", in.ROAS)}
		default:
			return Decision{domain.StatusMonitor, fmt.Sprintf("Trajectory improving, ROAS %.2f, trend %s", in.ROAS, trend)}
		}
	case domain.TrajectoryStable:
		switch {
		case in.ROAS >= ROASAcceptable && in.Trend == domain.TrendStable:
			return Decision{domain.StatusMonitor, fmt.Sprintf("ROAS %.2f acceptable, trajectory and trend stable", in.ROAS)}
		case in.ROAS >= ROASWarning && in.Trend == domain.TrendStable:
			return Decision{domain.StatusLastChance, fmt.Sprintf("ROAS %.2f in warning zone, trajectory and trend stable", in.ROAS)}
		case in.Trend == domain.TrendDeclining:
			return Decision{domain.StatusLastChance, "Trend declining despite stable trajectory"}
		default:
			return Decision{domain.StatusKill, fmt.Sprintf("ROAS %.2f, trajectory stable, not improving", in.ROAS)}
		}
	default:
		return Decision{domain.StatusKill, fmt.Sprintf("Trajectory %s, Stop Loss moving negative at %s spend", trajectory, rupees(in.TotalSpend))}
	}
}
