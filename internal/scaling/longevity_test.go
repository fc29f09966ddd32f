package scaling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

func decayOf(pattern domain.DecayPattern, l3k, velocity *float64) domain.DecayAssessment {
	return domain.DecayAssessment{Pattern: pattern, L3KDecay: l3k, Velocity: velocity}
}

func TestLongevityDecision(t *testing.T) {
	tests := []struct {
		name     string
		input    LongevityInput
		expected domain.ScalingStatus
	}{
		{name: "ROAS na zona segura continua", input: LongevityInput{ROAS: 3.0, Decay: decayOf(domain.DecayPatternMixed, floatPtr(25), nil)}, expected: domain.StatusContinue},
		{name: "ROAS seguro com decaimento acelerado acima de 30% monitora", input: LongevityInput{ROAS: 3.0, Decay: decayOf(domain.DecayPatternAccelerating, floatPtr(35), floatPtr(20))}, expected: domain.StatusMonitor},
		{name: "ROAS abaixo do break-even mata", input: LongevityInput{ROAS: 1.9, Decay: decayOf(domain.DecayPatternRecovering, floatPtr(0), nil), StopLoss: 9000}, expected: domain.StatusKill},
		{name: "Zona de atenção em recuperação monitora", input: LongevityInput{ROAS: 2.1, Decay: decayOf(domain.DecayPatternRecovering, floatPtr(25), nil)}, expected: domain.StatusMonitor},
		{name: "Zona de atenção com decaimento acima de 20% mata", input: LongevityInput{ROAS: 2.1, Decay: decayOf(domain.DecayPatternMixed, floatPtr(25), nil), StopLoss: 9000, Trend: domain.TrendImproving}, expected: domain.StatusKill},
		{name: "Zona de atenção com decaimento moderado melhorando e folga é última chance", input: LongevityInput{ROAS: 2.1, Decay: decayOf(domain.DecayPatternMixed, floatPtr(15), nil), StopLoss: 6000, Trend: domain.TrendImproving}, expected: domain.StatusLastChance},
		{name: "Zona de atenção com decaimento moderado estável mata", input: LongevityInput{ROAS: 2.1, Decay: decayOf(domain.DecayPatternMixed, floatPtr(15), nil), StopLoss: 6000, Trend: domain.TrendStable}, expected: domain.StatusKill},
		{name: "Zona de atenção com decaimento pequeno e folga monitora", input: LongevityInput{ROAS: 2.1, Decay: decayOf(domain.DecayPatternStable, floatPtr(5), nil), StopLoss: 6000, Trend: domain.TrendStable}, expected: domain.StatusMonitor},
		{name: "Zona de atenção com decaimento pequeno caindo é última chance", input: LongevityInput{ROAS: 2.1, Decay: decayOf(domain.DecayPatternStable, floatPtr(5), nil), StopLoss: 6000, Trend: domain.TrendDeclining}, expected: domain.StatusLastChance},
		{name: "Zona de atenção sem folga é última chance", input: LongevityInput{ROAS: 2.1, Decay: decayOf(domain.DecayPatternStable, floatPtr(5), nil), StopLoss: 1000, Trend: domain.TrendStable}, expected: domain.StatusLastChance},
		{name: "Observação em recuperação continua", input: LongevityInput{ROAS: 2.5, Decay: decayOf(domain.DecayPatternRecovering, floatPtr(40), nil)}, expected: domain.StatusContinue},
		{name: "Observação sem decaimento calculado continua", input: LongevityInput{ROAS: 2.5, Decay: decayOf(domain.DecayPatternInsufficientData, nil, nil)}, expected: domain.StatusContinue},
		{name: "Observação com decaimento abaixo de 20% continua", input: LongevityInput{ROAS: 2.5, Decay: decayOf(domain.DecayPatternMixed, floatPtr(15), nil)}, expected: domain.StatusContinue},
		{name: "Observação com velocidade alta mata", input: LongevityInput{ROAS: 2.5, Decay: decayOf(domain.DecayPatternMixed, floatPtr(25), floatPtr(20))}, expected: domain.StatusKill},
		{name: "Observação acelerando com folga monitora", input: LongevityInput{ROAS: 2.5, Decay: decayOf(domain.DecayPatternAccelerating, floatPtr(25), floatPtr(10)), StopLoss: 6000}, expected: domain.StatusMonitor},
		{name: "Observação acelerando sem folga é última chance", input: LongevityInput{ROAS: 2.5, Decay: decayOf(domain.DecayPatternAccelerating, floatPtr(25), floatPtr(10)), StopLoss: 1000}, expected: domain.StatusLastChance},
		{name: "Observação com queda brusca monitora", input: LongevityInput{ROAS: 2.5, Decay: decayOf(domain.DecayPatternSuddenDrop, floatPtr(25), floatPtr(10))}, expected: domain.StatusMonitor},
		{name: "Observação com nota melhorando monitora", input: LongevityInput{ROAS: 2.5, Decay: decayOf(domain.DecayPatternMixed, floatPtr(25), floatPtr(5)), Trend: domain.TrendImproving}, expected: domain.StatusMonitor},
		{name: "Observação com nota estável e folga monitora", input: LongevityInput{ROAS: 2.5, Decay: decayOf(domain.DecayPatternMixed, floatPtr(25), floatPtr(5)), Trend: domain.TrendStable, StopLoss: 6000}, expected: domain.StatusMonitor},
		{name: "Observação com nota estável sem folga é última chance", input: LongevityInput{ROAS: 2.5, Decay: decayOf(domain.DecayPatternMixed, floatPtr(25), floatPtr(5)), Trend: domain.TrendStable, StopLoss: 5000}, expected: domain.StatusLastChance},
		{name: "Observação com nota caindo é última chance", input: LongevityInput{ROAS: 2.5, Decay: decayOf(domain.DecayPatternMixed, floatPtr(25), floatPtr(5)), Trend: domain.TrendDeclining, StopLoss: 9000}, expected: domain.StatusLastChance},
		{name: "Decaimento acima de 30% com nota melhorando e folga é última chance", input: LongevityInput{ROAS: 2.5, Decay: decayOf(domain.DecayPatternMixed, floatPtr(35), floatPtr(5)), Trend: domain.TrendImproving, StopLoss: 6000}, expected: domain.StatusLastChance},
		{name: "Decaimento acima de 30% sem melhora mata", input: LongevityInput{ROAS: 2.5, Decay: decayOf(domain.DecayPatternMixed, floatPtr(35), floatPtr(5)), Trend: domain.TrendStable, StopLoss: 6000}, expected: domain.StatusKill},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.TotalSpend = 20000
			decision := LongevityDecision(tt.input)
			assert.Equal(t, tt.expected, decision.Status)
			assert.NotEmpty(t, decision.Reason)
		})
	}
}
