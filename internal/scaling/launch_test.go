package scaling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

func TestLaunchDecision(t *testing.T) {
	tests := []struct {
		name     string
		input    LaunchInput
		expected domain.ScalingStatus
	}{
		{name: "Gasto abaixo de 2500 sempre monitora", input: LaunchInput{StopLoss: -1400, AdScore: 3, Trend: domain.TrendDeclining, TotalSpend: 1500}, expected: domain.StatusMonitor},
		{name: "Stop loss além do limite máximo mata", input: LaunchInput{StopLoss: -3500, AdScore: 12, Trend: domain.TrendImproving, TotalSpend: 3500}, expected: domain.StatusKill},
		{name: "Stop loss crítico com nota forte melhorando é última chance", input: LaunchInput{StopLoss: -2500, AdScore: 10, Trend: domain.TrendImproving, TotalSpend: 4500}, expected: domain.StatusLastChance},
		{name: "Stop loss crítico com nota forte estável mata", input: LaunchInput{StopLoss: -2500, AdScore: 10, Trend: domain.TrendStable, TotalSpend: 4500}, expected: domain.StatusKill},
		{name: "Alerta com nota forte melhorando continua", input: LaunchInput{StopLoss: -1500, AdScore: 9, Trend: domain.TrendImproving, TotalSpend: 3500}, expected: domain.StatusContinue},
		{name: "Alerta com nota forte estável monitora", input: LaunchInput{StopLoss: -1500, AdScore: 9, Trend: domain.TrendStable, TotalSpend: 3500}, expected: domain.StatusMonitor},
		{name: "Alerta com nota boa melhorando monitora", input: LaunchInput{StopLoss: -1500, AdScore: 7, Trend: domain.TrendImproving, TotalSpend: 3500}, expected: domain.StatusMonitor},
		{name: "Alerta com nota boa caindo é última chance", input: LaunchInput{StopLoss: -1500, AdScore: 7, Trend: domain.TrendDeclining, TotalSpend: 3500}, expected: domain.StatusLastChance},
		{name: "Alerta com nota fraca é última chance", input: LaunchInput{StopLoss: -1500, AdScore: 5, Trend: domain.TrendImproving, TotalSpend: 3500}, expected: domain.StatusLastChance},
		{name: "Alerta com nota ruim mata", input: LaunchInput{StopLoss: -1500, AdScore: 4, Trend: domain.TrendImproving, TotalSpend: 3500}, expected: domain.StatusKill},
		{name: "Stop loss seguro com nota forte continua", input: LaunchInput{StopLoss: 500, AdScore: 9, Trend: domain.TrendDeclining, TotalSpend: 3500}, expected: domain.StatusContinue},
		{name: "Stop loss seguro com nota boa caindo monitora", input: LaunchInput{StopLoss: 500, AdScore: 7, Trend: domain.TrendDeclining, TotalSpend: 3500}, expected: domain.StatusMonitor},
		{name: "Stop loss seguro com nota boa estável continua", input: LaunchInput{StopLoss: 500, AdScore: 8, Trend: domain.TrendStable, TotalSpend: 3500}, expected: domain.StatusContinue},
		{name: "Stop loss seguro com nota fraca estável monitora", input: LaunchInput{StopLoss: -1000, AdScore: 6, Trend: domain.TrendStable, TotalSpend: 3500}, expected: domain.StatusMonitor},
		{name: "Stop loss seguro com nota fraca caindo é última chance", input: LaunchInput{StopLoss: 0, AdScore: 5, Trend: domain.TrendDeclining, TotalSpend: 3500}, expected: domain.StatusLastChance},
		{name: "Nota fraca sem tendência é última chance", input: LaunchInput{StopLoss: 0, AdScore: 5, Trend: domain.TrendInsufficient, TotalSpend: 3500}, expected: domain.StatusLastChance},
		{name: "Nota ruim melhorando monitora", input: LaunchInput{StopLoss: 0, AdScore: 4, Trend: domain.TrendImproving, TotalSpend: 3500}, expected: domain.StatusMonitor},
		{name: "Nota ruim estável é última chance", input: LaunchInput{StopLoss: 0, AdScore: 4, Trend: domain.TrendStable, TotalSpend: 3500}, expected: domain.StatusLastChance},
		{name: "Nota ruim caindo mata", input: LaunchInput{StopLoss: 0, AdScore: 3, Trend: domain.TrendDeclining, TotalSpend: 3500}, expected: domain.StatusKill},
		{name: "Nota ruim sem tendência mata", input: LaunchInput{StopLoss: 0, AdScore: 3, Trend: domain.TrendInsufficient, TotalSpend: 3500}, expected: domain.StatusKill},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := LaunchDecision(tt.input)
			assert.Equal(t, tt.expected, decision.Status)
			assert.NotEmpty(t, decision.Reason)
		})
	}
}

func TestLaunchDecision_MotivoAprendizado(t *testing.T) {
	decision := LaunchDecision(LaunchInput{StopLoss: -1500, AdScore: 3, TotalSpend: 1500})
	assert.Contains(t, decision.Reason, "Learning phase")
}
