package metaads

import (
	"io"

	"github.com/pkg/errors"
	"github.com/vfg2006/scaling-engine-api/infrastructure/integrator/tabular"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

// Cabeçalhos do export diário do Gerenciador de Anúncios, com as variações conhecidas
var (
	colAdName          = []string{"Ad name", "Ad Name"}
	colCampaignName    = []string{"Campaign name", "Campaign Name"}
	colAdSetName       = []string{"Ad set name", "Ad Set Name"}
	colReportingStarts = []string{"Reporting starts", "Reporting Starts", "Day"}
	colSpend           = []string{"Amount spent (INR)", "Amount spent"}
	colPurchases       = []string{"Purchases"}
	colConversionValue = []string{"Purchases conversion value", "Purchase conversion value"}
	colCTR             = []string{"CTR (link click-through rate)", "CTR"}
	colHookRate        = []string{"Hook rate", "Hook Rate"}
	colCPM             = []string{"CPM (cost per 1,000 impressions) (INR)", "CPM (cost per 1,000 impressions)", "CPM"}
)

// ParseResult traz os registros válidos e a contagem de linhas descartadas
type ParseResult struct {
	Records []domain.AdDailyRecord
	Total   int
	Failed  int
}

// Parse lê o export (CSV ou XLSX) e devolve os registros no formato canônico.
// Linhas sem nome de anúncio ou com data ilegível são contadas como falha.
func Parse(r io.Reader, fileName string) (*ParseResult, error) {
	table, err := tabular.Read(r, fileName)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler export do Meta Ads")
	}

	return FromTable(table)
}

func FromTable(table *tabular.Table) (*ParseResult, error) {
	missing := make([]string, 0)
	for _, synonyms := range [][]string{colAdName, colReportingStarts, colSpend} {
		if _, ok := table.FirstPresent(synonyms...); !ok {
			missing = append(missing, synonyms[0])
		}
	}
	if len(missing) > 0 {
		return nil, &tabular.MissingColumnsError{Columns: missing, Available: table.Header}
	}

	result := &ParseResult{
		Records: make([]domain.AdDailyRecord, 0, len(table.Rows)),
		Total:   len(table.Rows),
	}

	for _, row := range table.Rows {
		adName := row.String(colAdName...)
		date := row.Date(colReportingStarts...)
		if adName == "" || date == nil {
			result.Failed++
			continue
		}

		purchases, _ := row.Int(colPurchases...)

		result.Records = append(result.Records, domain.AdDailyRecord{
			AdName:          adName,
			CampaignName:    row.String(colCampaignName...),
			AdSetName:       row.String(colAdSetName...),
			Date:            *date,
			Spend:           row.FloatOrZero(colSpend...),
			Purchases:       purchases,
			ConversionValue: row.FloatOrZero(colConversionValue...),
			CTR:             row.FloatOrZero(colCTR...),
			HookRate:        row.FloatOrZero(colHookRate...),
			CPM:             row.FloatOrZero(colCPM...),
		})
	}

	return result, nil
}

// GroupByAd agrupa os registros por anúncio, preservando a ordem de leitura
func GroupByAd(records []domain.AdDailyRecord) map[string][]domain.AdDailyRecord {
	histories := make(map[string][]domain.AdDailyRecord)
	for _, rec := range records {
		histories[rec.AdName] = append(histories[rec.AdName], rec)
	}
	return histories
}
