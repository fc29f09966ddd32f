package domain

import "time"

// AdDailyRecord representa uma linha diária do export de anúncios do Meta
type AdDailyRecord struct {
	AdName          string    `json:"ad_name" validate:"required"`
	CampaignName    string    `json:"campaign_name,omitempty"`
	AdSetName       string    `json:"ad_set_name,omitempty"`
	Date            time.Time `json:"date" validate:"required"`
	Spend           float64   `json:"spend" validate:"gte=0"`
	Purchases       int       `json:"purchases" validate:"gte=0"`
	ConversionValue float64   `json:"conversion_value" validate:"gte=0"`
	CTR             float64   `json:"ctr"`       // percentual (0.85 = 0.85%)
	HookRate        float64   `json:"hook_rate"` // fração (0.25) ou percentual (25)
	CPM             float64   `json:"cpm"`
	ImportBatchID   string    `json:"import_batch_id,omitempty"`
}

// AdHistory agrupa os registros diários de um mesmo anúncio
type AdHistory struct {
	AdName  string          `json:"ad_name"`
	Records []AdDailyRecord `json:"records"`
}

// AdTotals são os acumulados de todo o histórico de um anúncio
type AdTotals struct {
	Spend           float64 `json:"spend"`
	Purchases       int     `json:"purchases"`
	ConversionValue float64 `json:"conversion_value"`
}
