package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product es una entrada del catálogo: identidad, precio vigente y stock.
// El stock nunca es negativo; solo el flujo de venta lo descuenta.
type Product struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// InStock indica si el producto tiene stock disponible para vender.
func (p *Product) InStock() bool {
	return p.StockQuantity > 0
}
