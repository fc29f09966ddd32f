package reconciliation

import (
	"time"

	"github.com/vfg2006/scaling-engine-api/internal/domain"
	"github.com/vfg2006/scaling-engine-api/pkg/utils"
)

// Limites em horas das categorias de despacho
const (
	DispatchFastHours   = 24.0
	DispatchNormalHours = 48.0
)

// DispatchHours calcula as horas entre a criação do pedido e a coleta, com
// duas casas. Retorna nil quando falta uma das datas ou a coleta é anterior ao pedido.
func DispatchHours(orderDate, pickupDate *time.Time) *float64 {
	if orderDate == nil || pickupDate == nil || orderDate.IsZero() || pickupDate.IsZero() {
		return nil
	}

	hours := pickupDate.Sub(*orderDate).Hours()
	if hours < 0 {
		return nil
	}

	hours = utils.Round(hours, 2)
	return &hours
}

func CategorizeDispatch(hours *float64) domain.DispatchCategory {
	switch {
	case hours == nil:
		return domain.DispatchNotDispatched
	case *hours <= DispatchFastHours:
		return domain.DispatchFast
	case *hours <= DispatchNormalHours:
		return domain.DispatchNormal
	default:
		return domain.DispatchDelayed
	}
}
