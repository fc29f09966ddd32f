package reconciliation

import (
	"sort"
	"strings"

	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

const (
	DefaultJourneyLimit = 500
	filterAll           = "all"
)

// NormalizeJourneyFilters aplica o limite padrão e descarta valores "all"
func NormalizeJourneyFilters(f domain.JourneyFilters) domain.JourneyFilters {
	f.Search = strings.TrimSpace(f.Search)
	if f.Limit <= 0 {
		f.Limit = DefaultJourneyLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	if strings.EqualFold(f.PaymentMode, filterAll) {
		f.PaymentMode = ""
	}
	if strings.EqualFold(f.DeliveryStatus, filterAll) {
		f.DeliveryStatus = ""
	}
	return f
}

// SearchJourney busca pedidos conciliados por order_id, telefone ou email e
// devolve a página pedida, do pedido mais recente para o mais antigo.
func SearchJourney(orders []domain.UnifiedOrder, filters domain.JourneyFilters) domain.JourneyPage {
	f := NormalizeJourneyFilters(filters)
	search := strings.ToLower(f.Search)

	matched := make([]domain.UnifiedOrder, 0)
	for _, o := range orders {
		if search != "" && !matchesSearch(o, search) {
			continue
		}
		if f.PaymentMode != "" && string(o.PaymentMode) != f.PaymentMode {
			continue
		}
		if f.DeliveryStatus != "" && string(o.DeliveryStatus) != f.DeliveryStatus {
			continue
		}
		if !InDateRange(o.OrderDate, f.StartDate, f.EndDate) {
			continue
		}
		matched = append(matched, o)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i].OrderDate, matched[j].OrderDate
		if a == nil || b == nil {
			return a != nil
		}
		return a.After(*b)
	})

	page := domain.JourneyPage{
		Orders: []domain.UnifiedOrder{},
		Total:  len(matched),
		Limit:  f.Limit,
		Offset: f.Offset,
	}
	if f.Offset >= len(matched) {
		return page
	}

	end := f.Offset + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	page.Orders = matched[f.Offset:end]
	return page
}

func matchesSearch(o domain.UnifiedOrder, search string) bool {
	for _, field := range []string{o.OrderID, o.CustomerPhone, o.CustomerEmail} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}
