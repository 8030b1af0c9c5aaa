package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItem representa una línea dentro de una venta (Entity dentro del Aggregate).
// UnitPrice es un snapshot del precio del catálogo al momento de la venta;
// cambios posteriores de precio no afectan ventas ya registradas.
type SaleItem struct {
	ItemID      uuid.UUID       `json:"item_id"`
	SaleID      uuid.UUID       `json:"sale_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	LineNo      int             `json:"line_no"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// NewSaleItem crea una línea de venta con el precio snapshoteado.
// Validaciones mínimas, cálculo de line_total.
func NewSaleItem(
	productID uuid.UUID,
	productName string,
	lineNo int,
	quantity int,
	unitPrice decimal.Decimal,
) (*SaleItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unitPrice.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}

	lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	return &SaleItem{
		ItemID:      uuid.New(),
		ProductID:   productID,
		ProductName: productName,
		LineNo:      lineNo,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		LineTotal:   lineTotal,
	}, nil
}
