package scaling

import (
	"math"

	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

const trendMinDays = 3

// CalculateTrend compara o primeiro dia com a média dos últimos 3 dias em
// nota, CTR, hook rate e CPM. Cada métrica soma ou subtrai um ponto quando
// varia mais de 10%. CPM tem o sinal invertido.
func CalculateTrend(history []domain.AdDailyRecord) domain.Trend {
	if len(history) < trendMinDays {
		return domain.TrendInsufficient
	}

	sorted := SortByDate(history)
	first := sorted[0]
	last := sorted[len(sorted)-trendMinDays:]

	scores := make([]float64, 0, len(last))
	ctrs := make([]float64, 0, len(last))
	hooks := make([]float64, 0, len(last))
	cpms := make([]float64, 0, len(last))
	for _, r := range last {
		scores = append(scores, float64(RecordScore(r)))
		ctrs = append(ctrs, r.CTR)
		hooks = append(hooks, r.HookRate)
		cpms = append(cpms, r.CPM)
	}

	points := 0
	points += trendPoint(float64(RecordScore(first)), mean(scores), false)
	points += trendPoint(first.CTR, mean(ctrs), false)
	points += trendPoint(first.HookRate, mean(hooks), false)
	points += trendPoint(first.CPM, mean(cpms), true)

	switch {
	case points >= 2:
		return domain.TrendImproving
	case points <= -2:
		return domain.TrendDeclining
	default:
		return domain.TrendStable
	}
}

// trendPoint devolve +1, -1 ou 0. Métricas sem valor no primeiro dia são ignoradas.
func trendPoint(day1, avg float64, lowerIsBetter bool) int {
	if math.IsNaN(day1) || day1 <= 0 {
		return 0
	}

	change := (avg - day1) / day1 * 100
	if lowerIsBetter {
		change = -change
	}

	switch {
	case change > TrendChangePercent:
		return 1
	case change < -TrendChangePercent:
		return -1
	default:
		return 0
	}
}

// mean ignora valores NaN
func mean(values []float64) float64 {
	var sum float64
	n := 0
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// CalculateTrajectory compara o stop loss atual com o stop loss no fim do lançamento
func CalculateTrajectory(current float64, baseline *float64) domain.Trajectory {
	if baseline == nil {
		return domain.TrajectoryInsufficient
	}

	diff := current - *baseline
	switch {
	case diff > TrajectoryBand:
		return domain.TrajectoryImproving
	case diff < -TrajectoryBand:
		return domain.TrajectoryWorsening
	default:
		return domain.TrajectoryStable
	}
}
