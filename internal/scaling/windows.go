package scaling

import (
	"sort"

	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

// Janelas de gasto usadas na fase de longevidade
const (
	Window3K  = 3000.0
	Window5K  = 5000.0
	Window7K  = 7000.0
	Window10K = 10000.0
)

// SortByDate devolve uma cópia do histórico ordenada por data crescente
func SortByDate(history []domain.AdDailyRecord) []domain.AdDailyRecord {
	sorted := make([]domain.AdDailyRecord, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// LastSpendROAS percorre do dia mais recente para trás até o gasto acumulado
// atingir o limite. Retorna false quando o histórico não alcança o limite.
func LastSpendROAS(history []domain.AdDailyRecord, threshold float64) (float64, bool) {
	if len(history) == 0 {
		return 0, false
	}
	sorted := SortByDate(history)
	return lastSpendROASUntil(sorted, len(sorted)-1, threshold)
}

// lastSpendROASUntil calcula o ROAS dos últimos gastos terminando no índice end
func lastSpendROASUntil(sorted []domain.AdDailyRecord, end int, threshold float64) (float64, bool) {
	var spend, value float64
	for i := end; i >= 0; i-- {
		spend += finite(sorted[i].Spend)
		value += finite(sorted[i].ConversionValue)
		if spend >= threshold {
			return ROAS(value, spend), true
		}
	}
	return 0, false
}

// CalculateSpendWindows calcula o ROAS dos últimos ₹3k, ₹5k, ₹7k e ₹10k
func CalculateSpendWindows(history []domain.AdDailyRecord) domain.SpendWindows {
	sorted := SortByDate(history)
	window := func(threshold float64) *float64 {
		if len(sorted) == 0 {
			return nil
		}
		v, ok := lastSpendROASUntil(sorted, len(sorted)-1, threshold)
		if !ok {
			return nil
		}
		return &v
	}

	return domain.SpendWindows{
		L3K:  window(Window3K),
		L5K:  window(Window5K),
		L7K:  window(Window7K),
		L10K: window(Window10K),
	}
}

// RollingROAS gera a série de ROAS dos últimos n dias para cada dia do histórico.
// Os primeiros n-1 dias ficam nil.
func RollingROAS(history []domain.AdDailyRecord, days int) []*float64 {
	sorted := SortByDate(history)
	series := make([]*float64, len(sorted))
	if days <= 0 {
		return series
	}

	for i := range sorted {
		if i < days-1 {
			continue
		}
		var spend, value float64
		for j := i - days + 1; j <= i; j++ {
			spend += finite(sorted[j].Spend)
			value += finite(sorted[j].ConversionValue)
		}
		roas := ROAS(value, spend)
		series[i] = &roas
	}
	return series
}

// LastSpendROASSeries gera, para cada dia, o ROAS dos últimos gastos até o limite.
// Fica nil enquanto o gasto acumulado até o dia não atingir o limite.
func LastSpendROASSeries(history []domain.AdDailyRecord, threshold float64) []*float64 {
	sorted := SortByDate(history)
	series := make([]*float64, len(sorted))
	for i := range sorted {
		if v, ok := lastSpendROASUntil(sorted, i, threshold); ok {
			series[i] = &v
		}
	}
	return series
}

// StopLossAtSpend calcula o stop loss no primeiro dia em que o gasto acumulado
// atinge spendMark, percorrendo o histórico em ordem crescente.
func StopLossAtSpend(history []domain.AdDailyRecord, spendMark, profitPerPurchase float64) (float64, bool) {
	sorted := SortByDate(history)
	var spend float64
	var purchases int
	for _, r := range sorted {
		spend += finite(r.Spend)
		purchases += r.Purchases
		if spend >= spendMark {
			return StopLoss(purchases, spend, profitPerPurchase), true
		}
	}
	return 0, false
}
