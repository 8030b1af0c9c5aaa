package usecase

import (
	"context"

	"pos/src/sales/application/response"
	"pos/src/sales/domain/port"

	"github.com/google/uuid"
)

// SalesByCashierUseCase caso de uso para el historial de ventas de un cajero.
type SalesByCashierUseCase struct {
	saleRepo port.SaleRepository
}

// NewSalesByCashierUseCase crea una nueva instancia del caso de uso.
func NewSalesByCashierUseCase(saleRepo port.SaleRepository) *SalesByCashierUseCase {
	return &SalesByCashierUseCase{saleRepo: saleRepo}
}

// Execute retorna los encabezados de venta del cajero, más recientes primero.
func (uc *SalesByCashierUseCase) Execute(ctx context.Context, cashierID uuid.UUID) ([]*response.SaleListItem, error) {
	sales, err := uc.saleRepo.ListByCashier(ctx, cashierID)
	if err != nil {
		return nil, err
	}

	items := make([]*response.SaleListItem, 0, len(sales))
	for _, s := range sales {
		items = append(items, &response.SaleListItem{
			SaleID:          s.SaleID,
			TransactionCode: s.TransactionCode,
			CashierID:       s.CashierID,
			CustomerName:    s.CustomerName,
			SaleDate:        s.SaleDate,
			GrandTotal:      s.GrandTotal,
			TotalItems:      s.TotalItems(),
		})
	}
	return items, nil
}
