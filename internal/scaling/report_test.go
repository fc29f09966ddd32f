package scaling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

func TestEvaluator_BuildReport(t *testing.T) {
	history := []domain.AdDailyRecord{
		day(1, 2000, 2, 6000),
		withQuality(day(0, 2000, 1, 2000), 0.5, 0.10, 250),
		day(2, 2000, 2, 5000),
	}

	report := newTestEvaluator().BuildReport("AD_TESTE", history, 2, 3000)

	assert.Equal(t, "AD_TESTE", report.AdName)
	assert.Equal(t, 2, report.RollingDays)
	assert.Equal(t, 6000.0, report.Totals.Spend)
	assert.Equal(t, 5, report.Totals.Purchases)
	assert.InDelta(t, 13000.0/6000.0, report.LifetimeROAS, 0.0001)
	assert.Equal(t, domain.PhaseValidation, report.Assessment.Phase)

	require.Len(t, report.Days, 3)

	first := report.Days[0]
	assert.Equal(t, baseDate, first.Date)
	assert.Equal(t, 3, first.AdScore)
	assert.Equal(t, domain.RecommendationKill, first.Recommendation)
	assert.Nil(t, first.RollingROAS)
	assert.Nil(t, first.LastSpendROAS)

	last := report.Days[2]
	assert.Equal(t, 12, last.AdScore)
	assert.Equal(t, domain.RecommendationScale, last.Recommendation)
	require.NotNil(t, last.RollingROAS)
	assert.InDelta(t, 11000.0/4000.0, *last.RollingROAS, 0.0001)
	require.NotNil(t, last.LastSpendROAS)
	assert.InDelta(t, 11000.0/4000.0, *last.LastSpendROAS, 0.0001)
}
