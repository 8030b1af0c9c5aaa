package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLineRequest representa un renglón del carrito enviado por la pantalla
// de venta. El precio NO viaja en el request: se toma siempre del catálogo.
type CartLineRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
}

// ProcessSaleRequest request para registrar una venta de mostrador.
type ProcessSaleRequest struct {
	CashierID          uuid.UUID         `json:"cashier_id" binding:"required"`
	CustomerName       string            `json:"customer_name,omitempty"` // Opcional (default: Walk-in Customer)
	Items              []CartLineRequest `json:"items" binding:"required,min=1,dive"`
	DiscountPercentage decimal.Decimal   `json:"discount_percentage,omitempty"` // 0-100 (default: 0)
	AmountPaid         decimal.Decimal   `json:"amount_paid"`
}
