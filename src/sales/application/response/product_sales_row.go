package response

import "github.com/shopspring/decimal"

// ProductSalesRow representa una fila del resumen de ventas por producto.
type ProductSalesRow struct {
	ProductName string          `json:"product_name"`
	TotalQty    int             `json:"total_qty"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}
