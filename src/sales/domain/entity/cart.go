package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCustomerName se usa cuando el cajero no registra un nombre de cliente.
const DefaultCustomerName = "Walk-in Customer"

// DefaultPaymentMethod es el único método de pago del mostrador por ahora.
const DefaultPaymentMethod = "Cash"

// CartLine es un renglón del carrito tal como lo envía la pantalla de venta:
// producto y cantidad, sin precio (el precio se toma del catálogo, nunca del cliente).
type CartLine struct {
	ProductID uuid.UUID
	Quantity  int
}

// SaleDraft es el carrito ya validado, listo para procesarse como una venta.
// Solo valida lo que no requiere tocar el catálogo; la disponibilidad de stock
// se verifica dentro de la transacción de persistencia.
type SaleDraft struct {
	CashierID          uuid.UUID
	CustomerName       string
	Lines              []CartLine
	DiscountPercentage decimal.Decimal
	AmountPaid         decimal.Decimal
	PaymentMethod      string
}

// NewSaleDraft valida los datos de entrada de una venta.
// Orden de validación: carrito vacío primero (antes de cualquier lookup),
// después cantidades, pago y descuento.
func NewSaleDraft(
	cashierID uuid.UUID,
	customerName string,
	lines []CartLine,
	discountPercentage decimal.Decimal,
	amountPaid decimal.Decimal,
) (*SaleDraft, error) {
	if cashierID == uuid.Nil {
		return nil, ErrCashierIDRequired
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}
	if amountPaid.LessThan(decimal.Zero) {
		return nil, ErrInvalidPayment
	}
	if discountPercentage.LessThan(decimal.Zero) || discountPercentage.GreaterThan(decimal.NewFromInt(100)) {
		return nil, ErrInvalidDiscount
	}

	if customerName == "" {
		customerName = DefaultCustomerName
	}

	return &SaleDraft{
		CashierID:          cashierID,
		CustomerName:       customerName,
		Lines:              lines,
		DiscountPercentage: discountPercentage,
		AmountPaid:         amountPaid,
		PaymentMethod:      DefaultPaymentMethod,
	}, nil
}
