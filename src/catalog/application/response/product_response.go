package response

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductResponse representa un producto disponible para la pantalla de venta.
type ProductResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
}
