package entity

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrCashierIDRequired = errors.New("cashier_id is required")
	ErrEmptyCart         = errors.New("cart must have at least one item")
	ErrInvalidQuantity   = errors.New("quantity must be greater than 0")
	ErrInvalidPayment    = errors.New("amount_paid must be greater than or equal to 0")
	ErrInvalidDiscount   = errors.New("discount_percentage must be between 0 and 100")
	ErrInvalidPrice      = errors.New("price must be greater than or equal to 0")
	ErrSaleNotFound      = errors.New("sale not found")
)

// ProductNotFoundError indica que un producto del carrito no existe en el catálogo.
type ProductNotFoundError struct {
	ProductID uuid.UUID
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

// InsufficientStockError indica que el stock disponible no alcanza para la
// cantidad pedida. Lleva el detalle necesario para que el cajero ajuste la venta.
type InsufficientStockError struct {
	ProductID   uuid.UUID
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: available %d, requested %d",
		e.ProductName, e.Available, e.Requested)
}
