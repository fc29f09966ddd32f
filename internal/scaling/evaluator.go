package scaling

import "github.com/vfg2006/scaling-engine-api/internal/domain"

// Evaluator avalia o histórico de um anúncio e decide o próximo passo
type Evaluator struct {
	profitPerPurchase float64
}

type Option func(*Evaluator)

// WithProfitPerPurchase troca o lucro por compra usado no stop loss
func WithProfitPerPurchase(v float64) Option {
	return func(e *Evaluator) {
		if v > 0 {
			e.profitPerPurchase = v
		}
	}
}

func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		profitPerPurchase: DefaultProfitPerPurchase,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEvaluator = NewEvaluator()

// EvaluateAdStatus avalia um histórico com a configuração padrão
func EvaluateAdStatus(history []domain.AdDailyRecord) domain.ScalingAssessment {
	name := ""
	if len(history) > 0 {
		name = history[0].AdName
	}
	return defaultEvaluator.Evaluate(name, history)
}

// ProfitPerPurchase devolve o lucro por compra configurado
func (e *Evaluator) ProfitPerPurchase() float64 {
	return e.profitPerPurchase
}

// Evaluate calcula fase, status e motivo de um anúncio. O histórico recebido
// não é alterado. EvaluatedAt fica zerado; quem grava a avaliação marca o horário.
func (e *Evaluator) Evaluate(adName string, history []domain.AdDailyRecord) domain.ScalingAssessment {
	assessment := domain.ScalingAssessment{AdName: adName}

	if len(history) == 0 {
		assessment.Phase = domain.PhaseNone
		assessment.Status = domain.StatusMonitor
		assessment.Reason = "No data"
		assessment.Trend = domain.TrendInsufficient
		return assessment
	}

	sorted := SortByDate(history)
	totals := Totals(sorted)
	latest := sorted[len(sorted)-1]
	lastDate := latest.Date

	assessment.Days = len(sorted)
	assessment.LastDate = &lastDate
	assessment.TotalSpend = totals.Spend
	assessment.StopLoss = StopLoss(totals.Purchases, totals.Spend, e.profitPerPurchase)
	assessment.ROAS = ROAS(totals.ConversionValue, totals.Spend)
	assessment.AdScore = RecordScore(latest)
	assessment.Trend = CalculateTrend(sorted)
	assessment.Phase = DetectPhase(totals.Spend)

	var decision Decision
	switch assessment.Phase {
	case domain.PhaseLaunch:
		decision = LaunchDecision(LaunchInput{
			StopLoss:   assessment.StopLoss,
			AdScore:    assessment.AdScore,
			Trend:      assessment.Trend,
			TotalSpend: totals.Spend,
		})

	case domain.PhaseValidation:
		var baseline *float64
		if sl, ok := StopLossAtSpend(sorted, LaunchMaxSpend, e.profitPerPurchase); ok {
			baseline = &sl
		}
		assessment.Trajectory = CalculateTrajectory(assessment.StopLoss, baseline)
		decision = ValidationDecision(ValidationInput{
			StopLoss:   assessment.StopLoss,
			ROAS:       assessment.ROAS,
			Trajectory: assessment.Trajectory,
			Trend:      assessment.Trend,
			TotalSpend: totals.Spend,
		})

	default:
		// linha de base é o ROAS de todo o histórico
		decay := ClassifyDecayPattern(assessment.ROAS, CalculateSpendWindows(sorted))
		assessment.Decay = &decay
		decision = LongevityDecision(LongevityInput{
			ROAS:       assessment.ROAS,
			Decay:      decay,
			StopLoss:   assessment.StopLoss,
			Trend:      assessment.Trend,
			TotalSpend: totals.Spend,
		})
	}

	assessment.Status = decision.Status
	assessment.Reason = decision.Reason
	return assessment
}
