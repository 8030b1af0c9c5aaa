package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptItemResponse representa una línea del ticket.
type ReceiptItemResponse struct {
	ItemID      uuid.UUID       `json:"item_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// ReceiptResponse es el ticket listo para imprimir que devuelve el
// registro de una venta, y también la vista de detalle de una venta histórica.
type ReceiptResponse struct {
	SaleID             uuid.UUID             `json:"sale_id"`
	TransactionCode    string                `json:"transaction_code"`
	CashierID          uuid.UUID             `json:"cashier_id"`
	CashierName        string                `json:"cashier_name,omitempty"`
	CustomerName       string                `json:"customer_name"`
	SaleDate           time.Time             `json:"sale_date"`
	Items              []ReceiptItemResponse `json:"items"`
	TotalItems         int                   `json:"total_items"`
	Subtotal           decimal.Decimal       `json:"subtotal"`
	DiscountPercentage decimal.Decimal       `json:"discount_percentage"`
	DiscountAmount     decimal.Decimal       `json:"discount_amount"`
	GrandTotal         decimal.Decimal       `json:"grand_total"`
	AmountPaid         decimal.Decimal       `json:"amount_paid"`
	ChangeAmount       decimal.Decimal       `json:"change_amount"`
	PaymentMethod      string                `json:"payment_method"`
	Status             string                `json:"status"`
}
