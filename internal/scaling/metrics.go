package scaling

import (
	"math"

	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

// Limites de fase por gasto acumulado
const (
	LaunchMaxSpend     = 5000.0
	ValidationMaxSpend = 15000.0
	LearningMinSpend   = 2500.0
)

// Limites de stop loss
const (
	LaunchStopLossWarning      = -1000.0
	LaunchStopLossCritical     = -2000.0
	LaunchStopLossHardStop     = -3000.0
	ValidationStopLossHardStop = -2000.0
	ValidationStopLossWarning  = -1000.0
)

// Limites de ROAS (break-even em 2.0)
const (
	ROASGood       = 2.2
	ROASAcceptable = 2.0
	ROASWarning    = 1.8
	ROASSafeZone   = 2.7
)

// Faixas da nota de qualidade
const (
	AdScoreStrong = 9
	AdScoreDecent = 7
	AdScoreWeak   = 5
)

// Limites de decaimento na fase de longevidade
const (
	DecayIgnore               = 20.0
	DecayWarning              = 30.0
	DecayMinor                = 10.0
	DecayVelocityAccelerating = 15.0
	DecayStableBand           = 5.0
	DecaySuddenDropGap        = 15.0
	ProfitBufferSafe          = 5000.0
	TrajectoryBand            = 300.0
	TrendChangePercent        = 10.0
)

// DefaultProfitPerPurchase é o lucro estimado por compra usado no stop loss
const DefaultProfitPerPurchase = 1000.0

// CPM assumido quando o valor não existe, cai na pior faixa
const missingCPM = 999.0

// StopLoss calcula (compras × lucro por compra) − gasto
func StopLoss(purchases int, spend, profitPerPurchase float64) float64 {
	return float64(purchases)*profitPerPurchase - spend
}

// ROAS calcula valor de conversão / gasto, zero quando não há gasto
func ROAS(conversionValue, spend float64) float64 {
	if spend <= 0 {
		return 0
	}
	return conversionValue / spend
}

// AdQualityScore soma as notas de CTR, hook rate e CPM (3 a 12 pontos).
// Hook rate abaixo de 1 é tratado como fração e convertido em percentual.
func AdQualityScore(ctr, hookRate, cpm float64) int {
	if math.IsNaN(ctr) {
		ctr = 0
	}
	if math.IsNaN(hookRate) {
		hookRate = 0
	}
	if math.IsNaN(cpm) {
		cpm = missingCPM
	}

	var ctrScore int
	switch {
	case ctr >= 1.0:
		ctrScore = 4
	case ctr >= 0.85:
		ctrScore = 3
	case ctr >= 0.70:
		ctrScore = 2
	default:
		ctrScore = 1
	}

	hookPct := hookRate
	if hookRate < 1 {
		hookPct = hookRate * 100
	}

	var hookScore int
	switch {
	case hookPct >= 30:
		hookScore = 4
	case hookPct >= 20:
		hookScore = 3
	case hookPct >= 15:
		hookScore = 2
	default:
		hookScore = 1
	}

	var cpmScore int
	switch {
	case cpm <= 100:
		cpmScore = 4
	case cpm <= 150:
		cpmScore = 3
	case cpm <= 200:
		cpmScore = 2
	default:
		cpmScore = 1
	}

	return ctrScore + hookScore + cpmScore
}

// RecordScore calcula a nota de qualidade de um dia
func RecordScore(record domain.AdDailyRecord) int {
	return AdQualityScore(record.CTR, record.HookRate, record.CPM)
}

// ScoreRecommendation traduz a nota diária em recomendação
func ScoreRecommendation(score int) domain.AdScoreRecommendation {
	switch {
	case score >= 10:
		return domain.RecommendationScale
	case score >= 8:
		return domain.RecommendationTest
	case score >= 6:
		return domain.RecommendationRework
	default:
		return domain.RecommendationKill
	}
}

// DetectPhase classifica o anúncio pela faixa de gasto acumulado
func DetectPhase(totalSpend float64) domain.Phase {
	switch {
	case totalSpend < LaunchMaxSpend:
		return domain.PhaseLaunch
	case totalSpend < ValidationMaxSpend:
		return domain.PhaseValidation
	default:
		return domain.PhaseLongevity
	}
}

// Totals soma gasto, compras e valor de conversão do histórico
func Totals(history []domain.AdDailyRecord) domain.AdTotals {
	var totals domain.AdTotals
	for _, r := range history {
		totals.Spend += finite(r.Spend)
		totals.Purchases += r.Purchases
		totals.ConversionValue += finite(r.ConversionValue)
	}
	return totals
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
