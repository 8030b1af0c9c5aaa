package usecase

import (
	"context"

	"pos/src/sales/application/response"
	"pos/src/sales/domain/port"
	"pos/src/sales/infrastructure/cache"

	"github.com/google/uuid"
)

// GetReceiptUseCase caso de uso para recuperar el ticket de una venta histórica.
type GetReceiptUseCase struct {
	saleRepo     port.SaleRepository
	cashierCache *cache.CashierCache
}

// NewGetReceiptUseCase crea una nueva instancia del caso de uso.
func NewGetReceiptUseCase(saleRepo port.SaleRepository, cashierCache *cache.CashierCache) *GetReceiptUseCase {
	return &GetReceiptUseCase{
		saleRepo:     saleRepo,
		cashierCache: cashierCache,
	}
}

// Execute retorna el ticket de la venta, con el nombre del cajero resuelto
// desde el cache (o "Unknown" si no está cargado).
func (uc *GetReceiptUseCase) Execute(ctx context.Context, saleID uuid.UUID) (*response.ReceiptResponse, error) {
	sale, err := uc.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	cashierName := ""
	if uc.cashierCache != nil {
		cashierName = uc.cashierCache.GetName(sale.CashierID)
	}

	return toReceipt(sale, cashierName), nil
}
