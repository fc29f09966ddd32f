package scaling

import "github.com/vfg2006/scaling-engine-api/internal/domain"

// BuildReport monta o relatório detalhado de um anúncio: série diária com nota,
// ROAS móvel de rollingDays dias e ROAS dos últimos spendThreshold gastos.
func (e *Evaluator) BuildReport(adName string, history []domain.AdDailyRecord, rollingDays int, spendThreshold float64) domain.AdReport {
	sorted := SortByDate(history)
	totals := Totals(sorted)
	lifetime := ROAS(totals.ConversionValue, totals.Spend)
	windows := CalculateSpendWindows(sorted)

	rolling := RollingROAS(sorted, rollingDays)
	lastSpend := LastSpendROASSeries(sorted, spendThreshold)

	days := make([]domain.AdReportDay, 0, len(sorted))
	for i, r := range sorted {
		score := RecordScore(r)
		days = append(days, domain.AdReportDay{
			Date:            r.Date,
			Spend:           r.Spend,
			Purchases:       r.Purchases,
			ConversionValue: r.ConversionValue,
			ROAS:            ROAS(r.ConversionValue, r.Spend),
			AdScore:         score,
			Recommendation:  ScoreRecommendation(score),
			RollingROAS:     rolling[i],
			LastSpendROAS:   lastSpend[i],
		})
	}

	return domain.AdReport{
		AdName:         adName,
		RollingDays:    rollingDays,
		SpendThreshold: spendThreshold,
		Totals:         totals,
		LifetimeROAS:   lifetime,
		Windows:        windows,
		Decay:          ClassifyDecayPattern(lifetime, windows),
		Assessment:     e.Evaluate(adName, sorted),
		Days:           days,
	}
}
