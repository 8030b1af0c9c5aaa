package usecase

import (
	"context"
	"fmt"
	"time"

	"pos/src/sales/application/response"
	"pos/src/sales/domain/entity"
	"pos/src/sales/domain/port"
	"pos/src/sales/infrastructure/cache"
)

// SalesByDateUseCase caso de uso para listar las ventas de un día con sus items.
type SalesByDateUseCase struct {
	saleRepo     port.SaleRepository
	cashierCache *cache.CashierCache
}

// NewSalesByDateUseCase crea una nueva instancia del caso de uso.
func NewSalesByDateUseCase(saleRepo port.SaleRepository, cashierCache *cache.CashierCache) *SalesByDateUseCase {
	return &SalesByDateUseCase{
		saleRepo:     saleRepo,
		cashierCache: cashierCache,
	}
}

// Execute lista las ventas del día indicado (formato YYYY-MM-DD),
// agrupadas por venta con sus items en orden de inserción.
func (uc *SalesByDateUseCase) Execute(ctx context.Context, date string) ([]*response.ReceiptResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date format, expected YYYY-MM-DD: %w", err)
	}

	sales, err := uc.saleRepo.ListByDate(ctx, day)
	if err != nil {
		return nil, err
	}

	items := make([]*response.ReceiptResponse, 0, len(sales))
	for _, sale := range sales {
		items = append(items, toReceipt(sale, uc.cashierName(sale)))
	}
	return items, nil
}

func (uc *SalesByDateUseCase) cashierName(sale *entity.Sale) string {
	if uc.cashierCache == nil {
		return ""
	}
	return uc.cashierCache.GetName(sale.CashierID)
}
