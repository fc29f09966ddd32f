package scaling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

func TestLastSpendROAS(t *testing.T) {
	history := []domain.AdDailyRecord{
		day(0, 2000, 1, 2000),
		day(1, 2000, 2, 6000),
		day(2, 2000, 2, 5000),
	}

	t.Run("Percorre do dia mais recente até atingir o limite", func(t *testing.T) {
		roas, ok := LastSpendROAS(history, 3000)
		require.True(t, ok)
		assert.InDelta(t, 11000.0/4000.0, roas, 0.0001)
	})

	t.Run("Limite maior que o gasto total fica indisponível", func(t *testing.T) {
		roas, ok := LastSpendROAS(history, 10000)
		assert.False(t, ok)
		assert.Equal(t, 0.0, roas)
	})

	t.Run("Histórico vazio fica indisponível", func(t *testing.T) {
		_, ok := LastSpendROAS(nil, 3000)
		assert.False(t, ok)
	})

	t.Run("Ordem de entrada não importa", func(t *testing.T) {
		shuffled := []domain.AdDailyRecord{history[2], history[0], history[1]}
		roas, ok := LastSpendROAS(shuffled, 3000)
		require.True(t, ok)
		assert.InDelta(t, 11000.0/4000.0, roas, 0.0001)
	})
}

func TestCalculateSpendWindows(t *testing.T) {
	history := []domain.AdDailyRecord{
		day(0, 4000, 4, 10000),
		day(1, 3000, 3, 9000),
		day(2, 3000, 2, 6000),
	}

	windows := CalculateSpendWindows(history)

	require.NotNil(t, windows.L3K)
	require.NotNil(t, windows.L5K)
	require.NotNil(t, windows.L7K)
	require.NotNil(t, windows.L10K)
	assert.InDelta(t, 2.0, *windows.L3K, 0.0001)
	assert.InDelta(t, 15000.0/6000.0, *windows.L5K, 0.0001)
	assert.InDelta(t, 2.5, *windows.L7K, 0.0001)
	assert.InDelta(t, 2.5, *windows.L10K, 0.0001)

	short := CalculateSpendWindows(history[:1])
	assert.NotNil(t, short.L3K)
	assert.Nil(t, short.L5K)
	assert.Nil(t, short.L7K)
	assert.Nil(t, short.L10K)
}

func TestRollingROAS(t *testing.T) {
	history := []domain.AdDailyRecord{
		day(0, 1000, 1, 1000),
		day(1, 1000, 1, 2000),
		day(2, 1000, 1, 3000),
	}

	series := RollingROAS(history, 2)
	require.Len(t, series, 3)
	assert.Nil(t, series[0])
	assert.InDelta(t, 1.5, *series[1], 0.0001)
	assert.InDelta(t, 2.5, *series[2], 0.0001)
}

func TestLastSpendROASSeries(t *testing.T) {
	history := []domain.AdDailyRecord{
		day(0, 1000, 1, 1000),
		day(1, 1000, 1, 3000),
		day(2, 1000, 1, 2000),
	}

	series := LastSpendROASSeries(history, 2000)
	require.Len(t, series, 3)
	assert.Nil(t, series[0])
	assert.InDelta(t, 2.0, *series[1], 0.0001)
	assert.InDelta(t, 2.5, *series[2], 0.0001)
}

func TestStopLossAtSpend(t *testing.T) {
	history := []domain.AdDailyRecord{
		day(0, 3000, 1, 3000),
		day(1, 2500, 3, 9000),
		day(2, 4000, 2, 8000),
	}

	sl, ok := StopLossAtSpend(history, 5000, DefaultProfitPerPurchase)
	require.True(t, ok)
	assert.Equal(t, 4000.0-5500.0, sl)

	_, ok = StopLossAtSpend(history, 50000, DefaultProfitPerPurchase)
	assert.False(t, ok)
}

func TestSortByDate_NaoAlteraEntrada(t *testing.T) {
	history := []domain.AdDailyRecord{day(2, 1, 0, 0), day(0, 1, 0, 0), day(1, 1, 0, 0)}
	sorted := SortByDate(history)

	assert.Equal(t, baseDate.AddDate(0, 0, 2), history[0].Date)
	assert.Equal(t, baseDate, sorted[0].Date)
	assert.Equal(t, baseDate.AddDate(0, 0, 2), sorted[2].Date)
}
