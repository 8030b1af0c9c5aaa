package usecase

import (
	"context"
	"fmt"
	"time"

	"pos/src/sales/application/response"
	"pos/src/sales/domain/port"
)

// ProductSalesSummaryUseCase caso de uso para el resumen de ventas por producto.
type ProductSalesSummaryUseCase struct {
	saleRepo port.SaleRepository
}

// NewProductSalesSummaryUseCase crea una nueva instancia del caso de uso.
func NewProductSalesSummaryUseCase(saleRepo port.SaleRepository) *ProductSalesSummaryUseCase {
	return &ProductSalesSummaryUseCase{saleRepo: saleRepo}
}

// Execute agrega cantidad y monto vendidos por producto para la fecha indicada
// (YYYY-MM-DD), ordenado por nombre de producto.
func (uc *ProductSalesSummaryUseCase) Execute(ctx context.Context, date string) ([]response.ProductSalesRow, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date format, expected YYYY-MM-DD: %w", err)
	}

	rows, err := uc.saleRepo.ProductSalesSummary(ctx, day)
	if err != nil {
		return nil, err
	}

	result := make([]response.ProductSalesRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, response.ProductSalesRow{
			ProductName: row.ProductName,
			TotalQty:    row.TotalQty,
			TotalAmount: row.TotalAmount,
		})
	}
	return result, nil
}
