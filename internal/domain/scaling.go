package domain

import "time"

type Phase string

const (
	PhaseLaunch     Phase = "LAUNCH"
	PhaseValidation Phase = "VALIDATION"
	PhaseLongevity  Phase = "LONGEVITY"
	PhaseNone       Phase = "N/A"
	PhaseError      Phase = "ERROR"
)

type ScalingStatus string

const (
	StatusContinue   ScalingStatus = "CONTINUE"
	StatusMonitor    ScalingStatus = "MONITOR"
	StatusLastChance ScalingStatus = "LAST_CHANCE"
	StatusKill       ScalingStatus = "KILL"
	StatusError      ScalingStatus = "ERROR"
)

// Severity ordena os status do mais tranquilo ao mais grave
func (s ScalingStatus) Severity() int {
	switch s {
	case StatusContinue:
		return 0
	case StatusMonitor:
		return 1
	case StatusLastChance:
		return 2
	case StatusKill:
		return 3
	default:
		return -1
	}
}

type Trend string

const (
	TrendImproving    Trend = "IMPROVING"
	TrendStable       Trend = "STABLE"
	TrendDeclining    Trend = "DECLINING"
	TrendInsufficient Trend = "N/A"
)

type Trajectory string

const (
	TrajectoryImproving    Trajectory = "IMPROVING"
	TrajectoryStable       Trajectory = "STABLE"
	TrajectoryWorsening    Trajectory = "WORSENING"
	TrajectoryInsufficient Trajectory = "N/A"
)

type DecayPattern string

const (
	DecayPatternRecovering       DecayPattern = "RECOVERING"
	DecayPatternAccelerating     DecayPattern = "ACCELERATING"
	DecayPatternStable           DecayPattern = "STABLE"
	DecayPatternSuddenDrop       DecayPattern = "SUDDEN_DROP"
	DecayPatternMixed            DecayPattern = "MIXED"
	DecayPatternInsufficientData DecayPattern = "INSUFFICIENT_DATA"
	DecayPatternNone             DecayPattern = "N/A"
)

// SpendWindows guarda o ROAS dos últimos ₹3k/5k/7k/10k gastos; nil quando o gasto não alcança a janela
type SpendWindows struct {
	L3K  *float64 `json:"l3k"`
	L5K  *float64 `json:"l5k"`
	L7K  *float64 `json:"l7k"`
	L10K *float64 `json:"l10k"`
}

// DecayAssessment descreve a queda de ROAS de cada janela em relação à linha de base
type DecayAssessment struct {
	Pattern   DecayPattern `json:"pattern"`
	L3KDecay  *float64     `json:"l3k_decay"`
	L5KDecay  *float64     `json:"l5k_decay"`
	L7KDecay  *float64     `json:"l7k_decay"`
	L10KDecay *float64     `json:"l10k_decay"`
	Velocity  *float64     `json:"decay_velocity"`
}

// ScalingAssessment é o resultado da avaliação de um anúncio
type ScalingAssessment struct {
	AdName       string           `json:"ad_name"`
	Phase        Phase            `json:"phase"`
	Status       ScalingStatus    `json:"status"`
	Reason       string           `json:"reason"`
	TotalSpend   float64          `json:"total_spend"`
	StopLoss     float64          `json:"stop_loss"`
	ROAS         float64          `json:"roas"`
	AdScore      int              `json:"ad_score"`
	Trend        Trend            `json:"trend"`
	Trajectory   Trajectory       `json:"trajectory,omitempty"`
	Decay        *DecayAssessment `json:"decay,omitempty"`
	Days         int              `json:"days"`
	LastDate     *time.Time       `json:"last_date,omitempty"`
	EvaluatedAt  time.Time        `json:"evaluated_at"`
	ErrorMessage string           `json:"error,omitempty"`
}

// AdScoreRecommendation é a recomendação derivada da nota diária de qualidade
type AdScoreRecommendation string

const (
	RecommendationScale  AdScoreRecommendation = "SCALE"
	RecommendationTest   AdScoreRecommendation = "TEST"
	RecommendationRework AdScoreRecommendation = "REWORK"
	RecommendationKill   AdScoreRecommendation = "KILL"
)

// AdReportDay é uma linha do relatório detalhado de um anúncio
type AdReportDay struct {
	Date            time.Time             `json:"date"`
	Spend           float64               `json:"spend"`
	Purchases       int                   `json:"purchases"`
	ConversionValue float64               `json:"conversion_value"`
	ROAS            float64               `json:"roas"`
	AdScore         int                   `json:"ad_score"`
	Recommendation  AdScoreRecommendation `json:"recommendation"`
	RollingROAS     *float64              `json:"rolling_roas"`
	LastSpendROAS   *float64              `json:"last_spend_roas"`
}

// AdReport é o relatório detalhado de um anúncio
type AdReport struct {
	AdName         string            `json:"ad_name"`
	RollingDays    int               `json:"rolling_days"`
	SpendThreshold float64           `json:"spend_threshold"`
	Totals         AdTotals          `json:"totals"`
	LifetimeROAS   float64           `json:"lifetime_roas"`
	Windows        SpendWindows      `json:"windows"`
	Decay          DecayAssessment   `json:"decay"`
	Assessment     ScalingAssessment `json:"assessment"`
	Days           []AdReportDay     `json:"days"`
}

// AssessmentFilters filtra a listagem das últimas avaliações
type AssessmentFilters struct {
	Phase  *Phase
	Status *ScalingStatus
}

// EvaluationRun resume uma avaliação de todos os anúncios
type EvaluationRun struct {
	Total             int                   `json:"total"`
	Succeeded         int                   `json:"succeeded"`
	Failed            int                   `json:"failed"`
	PersistFailed     int                   `json:"persist_failed"`
	ByStatus          map[ScalingStatus]int `json:"by_status"`
	FailedAds         []string              `json:"failed_ads,omitempty"`
	ProfitPerPurchase float64               `json:"profit_per_purchase"`
	StartedAt         time.Time             `json:"started_at"`
	FinishedAt        time.Time             `json:"finished_at"`
}
