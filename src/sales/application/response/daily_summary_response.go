package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySummaryResponse representa el resumen diario de ventas.
type DailySummaryResponse struct {
	Date           string          `json:"date"`            // YYYY-MM-DD
	SalesCount     int             `json:"sales_count"`     // Cantidad de ventas
	GrossTotal     decimal.Decimal `json:"gross_total"`     // Suma subtotal
	TotalDiscounts decimal.Decimal `json:"total_discounts"` // Suma discount_amount
	NetTotal       decimal.Decimal `json:"net_total"`       // Suma grand_total
	FirstSaleAt    *time.Time      `json:"first_sale_at,omitempty"`
	LastSaleAt     *time.Time      `json:"last_sale_at,omitempty"`
}
