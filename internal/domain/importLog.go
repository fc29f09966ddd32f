package domain

import "time"

type ImportSource string

const (
	ImportSourceMetaAds ImportSource = "meta_ads"
	ImportSourceShopify ImportSource = "shopify"
	ImportSourceProzo   ImportSource = "prozo"
)

// ImportResult registra o resultado de uma carga de arquivo
type ImportResult struct {
	BatchID        string       `json:"batch_id"`
	Source         ImportSource `json:"source"`
	FileName       string       `json:"file_name"`
	RecordsTotal   int          `json:"records_total"`
	RecordsNew     int          `json:"records_new"`
	RecordsUpdated int          `json:"records_updated"`
	RecordsFailed  int          `json:"records_failed"`
	LineItemsCount int          `json:"line_items_count,omitempty"`
	ImportedAt     time.Time    `json:"imported_at"`
}
