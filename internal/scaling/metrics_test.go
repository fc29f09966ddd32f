package scaling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

func TestAdQualityScore(t *testing.T) {
	tests := []struct {
		name     string
		ctr      float64
		hookRate float64
		cpm      float64
		expected int
	}{
		{name: "Todas as métricas na melhor faixa", ctr: 1.2, hookRate: 0.25, cpm: 90, expected: 12},
		{name: "CTR 0.8 fica na faixa de 2 pontos", ctr: 0.8, hookRate: 0.22, cpm: 130, expected: 8},
		{name: "Todas as métricas na pior faixa", ctr: 0.5, hookRate: 0.12, cpm: 220, expected: 3},
		{name: "Hook rate já em percentual", ctr: 0.9, hookRate: 31, cpm: 150, expected: 10},
		{name: "Hook rate 0.5 em percentual é lido como fração", ctr: 1, hookRate: 0.5, cpm: 100, expected: 12},
		{name: "Valores NaN caem na pior faixa", ctr: math.NaN(), hookRate: math.NaN(), cpm: math.NaN(), expected: 3},
		{name: "Limites exatos das faixas", ctr: 0.85, hookRate: 0.20, cpm: 200, expected: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AdQualityScore(tt.ctr, tt.hookRate, tt.cpm))
		})
	}
}

func TestAdQualityScore_Faixa(t *testing.T) {
	for _, ctr := range []float64{0, 0.7, 0.85, 1, 5} {
		for _, hook := range []float64{0, 0.15, 0.2, 0.3, 15, 40} {
			for _, cpm := range []float64{0, 100, 150, 200, 1000} {
				score := AdQualityScore(ctr, hook, cpm)
				assert.GreaterOrEqual(t, score, 3)
				assert.LessOrEqual(t, score, 12)
			}
		}
	}
}

func TestStopLoss(t *testing.T) {
	assert.Equal(t, 2000.0, StopLoss(5, 3000, DefaultProfitPerPurchase))
	assert.Equal(t, -2000.0, StopLoss(2, 4000, DefaultProfitPerPurchase))
	assert.Equal(t, -500.0, StopLoss(0, 500, DefaultProfitPerPurchase))
	assert.Equal(t, 500.0, StopLoss(1, 1000, 1500))
}

func TestROAS(t *testing.T) {
	assert.Equal(t, 0.0, ROAS(1000, 0))
	assert.Equal(t, 0.0, ROAS(0, 0))
	assert.Equal(t, 0.0, ROAS(1000, -10))
	assert.InDelta(t, 2.5, ROAS(2500, 1000), 0.0001)
}

func TestDetectPhase(t *testing.T) {
	tests := []struct {
		name     string
		spend    float64
		expected domain.Phase
	}{
		{name: "Gasto baixo fica em lançamento", spend: 3000, expected: domain.PhaseLaunch},
		{name: "Gasto médio fica em validação", spend: 8000, expected: domain.PhaseValidation},
		{name: "Gasto alto fica em longevidade", spend: 20000, expected: domain.PhaseLongevity},
		{name: "Exatamente 5000 já é validação", spend: 5000, expected: domain.PhaseValidation},
		{name: "Exatamente 15000 já é longevidade", spend: 15000, expected: domain.PhaseLongevity},
		{name: "Zero é lançamento", spend: 0, expected: domain.PhaseLaunch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPhase(tt.spend))
		})
	}
}

func TestDetectPhase_Monotonica(t *testing.T) {
	order := map[domain.Phase]int{
		domain.PhaseLaunch:     0,
		domain.PhaseValidation: 1,
		domain.PhaseLongevity:  2,
	}

	previous := -1
	for spend := 0.0; spend <= 30000; spend += 250 {
		current := order[DetectPhase(spend)]
		assert.GreaterOrEqual(t, current, previous)
		previous = current
	}
}

func TestScoreRecommendation(t *testing.T) {
	assert.Equal(t, domain.RecommendationScale, ScoreRecommendation(10))
	assert.Equal(t, domain.RecommendationTest, ScoreRecommendation(8))
	assert.Equal(t, domain.RecommendationRework, ScoreRecommendation(6))
	assert.Equal(t, domain.RecommendationKill, ScoreRecommendation(5))
}

func TestTotals_IgnoraValoresInvalidos(t *testing.T) {
	history := []domain.AdDailyRecord{
		{Spend: 1000, Purchases: 2, ConversionValue: 2500},
		{Spend: math.NaN(), Purchases: 1, ConversionValue: math.Inf(1)},
	}

	totals := Totals(history)
	assert.Equal(t, 1000.0, totals.Spend)
	assert.Equal(t, 3, totals.Purchases)
	assert.Equal(t, 2500.0, totals.ConversionValue)
}
