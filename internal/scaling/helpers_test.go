package scaling

import (
	"time"

	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

var baseDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func day(i int, spend float64, purchases int, value float64) domain.AdDailyRecord {
	return domain.AdDailyRecord{
		AdName:          "AD_TESTE",
		Date:            baseDate.AddDate(0, 0, i),
		Spend:           spend,
		Purchases:       purchases,
		ConversionValue: value,
		CTR:             1.0,
		HookRate:        0.30,
		CPM:             90,
	}
}

func withQuality(r domain.AdDailyRecord, ctr, hook, cpm float64) domain.AdDailyRecord {
	r.CTR = ctr
	r.HookRate = hook
	r.CPM = cpm
	return r
}

func floatPtr(v float64) *float64 {
	return &v
}
