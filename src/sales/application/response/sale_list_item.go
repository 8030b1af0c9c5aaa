package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleListItem representa un encabezado de venta en los listados
// (historial por cajero, ventas del día).
type SaleListItem struct {
	SaleID          uuid.UUID       `json:"sale_id"`
	TransactionCode string          `json:"transaction_code"`
	CashierID       uuid.UUID       `json:"cashier_id"`
	CashierName     string          `json:"cashier_name,omitempty"`
	CustomerName    string          `json:"customer_name"`
	SaleDate        time.Time       `json:"sale_date"`
	GrandTotal      decimal.Decimal `json:"grand_total"`
	TotalItems      int             `json:"total_items"`
}
