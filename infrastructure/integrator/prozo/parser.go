package prozo

import (
	"io"

	"github.com/pkg/errors"
	"github.com/vfg2006/scaling-engine-api/infrastructure/integrator/tabular"
	"github.com/vfg2006/scaling-engine-api/internal/domain"
	"github.com/vfg2006/scaling-engine-api/internal/reconciliation"
)

const (
	colAWB              = "AWB"
	colStatus           = "Status"
	colDropName         = "Drop Name"
	colDropPhone        = "Drop Phone"
	colDropEmail        = "Drop Email"
	colDropCity         = "Drop City"
	colDropState        = "Drop State"
	colDropPincode      = "Drop Pincode"
	colCourierPartner   = "Courier Partner"
	colPaymentMode      = "Payment Mode"
	colCreatedAt        = "Created at"
	colPickupDate       = "Pickup Date"
	colDeliveryDate     = "Delivery Date"
	colRTODeliveryDate  = "RTO Delivery Date"
	colMinTAT           = "Min Tat"
	colMaxTAT           = "Max Tat"
	colNDRStatus        = "NDR Status"
	colTotalAttempts    = "Total Attempts"
	colLatestRemark     = "Latest Remark"
	colMerchantPrice    = "Merchant Price"
	colMerchantPriceRTO = "Merchant Price RTO"
)

// colunas que podem trazer o número do pedido da loja, em ordem de preferência
var orderIDColumns = []string{"channelOrderName", "Channel Order Name", "Reference Number", "Order ID"}

// ParseResult traz os envios válidos; linhas sem AWB contam como falha
type ParseResult struct {
	Shipments []domain.ShipmentRecord
	Total     int
	Failed    int
}

// Parse lê o relatório MIS da transportadora
func Parse(r io.Reader, fileName string) (*ParseResult, error) {
	table, err := tabular.Read(r, fileName)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler relatório de envios")
	}

	return FromTable(table)
}

func FromTable(table *tabular.Table) (*ParseResult, error) {
	missing := table.Missing(colAWB, colStatus)

	orderIDColumn, ok := table.FirstPresent(orderIDColumns...)
	if !ok {
		missing = append(missing, "channelOrderName (ou Reference Number)")
	}

	if len(missing) > 0 {
		return nil, &tabular.MissingColumnsError{Columns: missing, Available: table.Header}
	}

	result := &ParseResult{
		Shipments: make([]domain.ShipmentRecord, 0, len(table.Rows)),
		Total:     len(table.Rows),
	}

	for _, row := range table.Rows {
		awb := row.String(colAWB)
		if awb == "" {
			result.Failed++
			continue
		}

		orderID, _ := reconciliation.NormalizeOrderID(row.String(orderIDColumn))
		statusRaw := row.String(colStatus)
		phone, _ := reconciliation.NormalizePhone(row.String(colDropPhone))
		email, _ := reconciliation.NormalizeEmail(row.String(colDropEmail))

		result.Shipments = append(result.Shipments, domain.ShipmentRecord{
			AWB:              awb,
			OrderID:          orderID,
			StatusRaw:        statusRaw,
			Status:           reconciliation.MapCarrierStatus(statusRaw),
			DropName:         row.String(colDropName),
			DropPhone:        phone,
			DropEmail:        email,
			DropCity:         row.String(colDropCity),
			DropState:        row.String(colDropState),
			DropPincode:      row.String(colDropPincode),
			CourierPartner:   row.String(colCourierPartner),
			PaymentMode:      row.String(colPaymentMode),
			CreatedAt:        row.Date(colCreatedAt),
			PickupAt:         row.Date(colPickupDate),
			DeliveredAt:      row.Date(colDeliveryDate),
			RTODeliveredAt:   row.Date(colRTODeliveryDate),
			MinTAT:           optionalInt(row, colMinTAT),
			MaxTAT:           optionalInt(row, colMaxTAT),
			NDRStatus:        row.String(colNDRStatus),
			TotalAttempts:    optionalInt(row, colTotalAttempts),
			LatestRemark:     row.String(colLatestRemark),
			MerchantPrice:    optionalFloat(row, colMerchantPrice),
			MerchantPriceRTO: optionalFloat(row, colMerchantPriceRTO),
		})
	}

	return result, nil
}

func optionalInt(row tabular.Row, column string) *int {
	v, ok := row.Int(column)
	if !ok {
		return nil
	}
	return &v
}

func optionalFloat(row tabular.Row, column string) *float64 {
	v, ok := row.Float(column)
	if !ok {
		return nil
	}
	return &v
}
