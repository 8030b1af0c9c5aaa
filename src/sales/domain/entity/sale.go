package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatusCompleted es el único estado de una venta registrada: las ventas son
// inmutables, no hay edición ni anulación posterior.
const StatusCompleted = "Completed"

// Sale representa una venta de mostrador ya cobrada (Aggregate Root).
type Sale struct {
	SaleID             uuid.UUID       `json:"sale_id"`
	TransactionCode    string          `json:"transaction_code"`
	CashierID          uuid.UUID       `json:"cashier_id"`
	CustomerName       string          `json:"customer_name"`
	SaleDate           time.Time       `json:"sale_date"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	GrandTotal         decimal.Decimal `json:"grand_total"`
	AmountPaid         decimal.Decimal `json:"amount_paid"`
	ChangeAmount       decimal.Decimal `json:"change_amount"`
	PaymentMethod      string          `json:"payment_method"`
	Status             string          `json:"status"`
	Items              []SaleItem      `json:"items"`
}

// ProductSnapshot son los datos del producto leídos bajo lock dentro de la
// transacción de venta: identidad, precio vigente y stock disponible.
type ProductSnapshot struct {
	ID            uuid.UUID
	Name          string
	UnitPrice     decimal.Decimal
	StockQuantity int
}

// BuildSale arma el aggregate completo a partir del carrito validado y los
// snapshots del catálogo, en el mismo orden del carrito:
//  1. Verifica stock por línea (falla con InsufficientStockError nombrando
//     producto, disponible y pedido).
//  2. Calcula line_total = unit_price * quantity con el precio snapshoteado.
//  3. Calcula subtotal, discount_amount = subtotal * pct / 100,
//     grand_total = subtotal - discount_amount y change = amount_paid - grand_total.
//  4. Genera el transaction_code único.
//
// El vuelto puede ser negativo: el pago insuficiente no es un error acá,
// igual que en el mostrador real (el cajero decide si cobra la diferencia).
func BuildSale(draft *SaleDraft, snapshots []ProductSnapshot) (*Sale, error) {
	if draft == nil || len(draft.Lines) == 0 {
		return nil, ErrEmptyCart
	}
	if len(snapshots) != len(draft.Lines) {
		return nil, fmt.Errorf("expected %d product snapshots, got %d", len(draft.Lines), len(snapshots))
	}

	saleID := uuid.New()
	now := time.Now()

	items := make([]SaleItem, 0, len(draft.Lines))
	subtotal := decimal.Zero

	for i, line := range draft.Lines {
		snap := snapshots[i]

		if line.Quantity > snap.StockQuantity {
			return nil, &InsufficientStockError{
				ProductID:   snap.ID,
				ProductName: snap.Name,
				Available:   snap.StockQuantity,
				Requested:   line.Quantity,
			}
		}

		item, err := NewSaleItem(snap.ID, snap.Name, i+1, line.Quantity, snap.UnitPrice)
		if err != nil {
			return nil, err
		}
		item.SaleID = saleID

		subtotal = subtotal.Add(item.LineTotal)
		items = append(items, *item)
	}

	discountAmount := subtotal.Mul(draft.DiscountPercentage).Div(decimal.NewFromInt(100))
	grandTotal := subtotal.Sub(discountAmount)
	change := draft.AmountPaid.Sub(grandTotal)

	return &Sale{
		SaleID:             saleID,
		TransactionCode:    NewTransactionCode(now),
		CashierID:          draft.CashierID,
		CustomerName:       draft.CustomerName,
		SaleDate:           now,
		Subtotal:           subtotal,
		DiscountPercentage: draft.DiscountPercentage,
		DiscountAmount:     discountAmount,
		GrandTotal:         grandTotal,
		AmountPaid:         draft.AmountPaid,
		ChangeAmount:       change,
		PaymentMethod:      draft.PaymentMethod,
		Status:             StatusCompleted,
		Items:              items,
	}, nil
}

// NewTransactionCode genera el código público de la venta:
// SALE-YYYYMMDD-HHMMSS-XXXXX con sufijo aleatorio de 5 caracteres hex.
// La constraint UNIQUE de la columna respalda cualquier colisión improbable.
func NewTransactionCode(at time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:5]
	return fmt.Sprintf("SALE-%s-%s", at.Format("20060102-150405"), strings.ToUpper(suffix))
}

// TotalItems retorna el número de líneas de la venta.
func (s *Sale) TotalItems() int {
	return len(s.Items)
}
