package usecase

import (
	"context"
	"fmt"
	"time"

	"pos/src/sales/application/response"
	"pos/src/sales/domain/port"

	"github.com/google/uuid"
)

// DailySummaryUseCase caso de uso para el resumen diario de ventas,
// con filtro opcional por cajero.
type DailySummaryUseCase struct {
	saleRepo port.SaleRepository
}

// NewDailySummaryUseCase crea una nueva instancia del caso de uso.
func NewDailySummaryUseCase(saleRepo port.SaleRepository) *DailySummaryUseCase {
	return &DailySummaryUseCase{saleRepo: saleRepo}
}

// Execute genera el resumen para una fecha (YYYY-MM-DD).
// cashierID en uuid.Nil resume todos los cajeros.
func (uc *DailySummaryUseCase) Execute(ctx context.Context, date string, cashierID uuid.UUID) (*response.DailySummaryResponse, error) {
	// Validar formato de fecha antes de tocar la base
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date format, expected YYYY-MM-DD: %w", err)
	}

	summary, err := uc.saleRepo.DailySummary(ctx, day, cashierID)
	if err != nil {
		return nil, err
	}

	resp := &response.DailySummaryResponse{
		Date:           date,
		SalesCount:     summary.SalesCount,
		GrossTotal:     summary.GrossTotal,
		TotalDiscounts: summary.TotalDiscounts,
		NetTotal:       summary.NetTotal,
	}

	// Timestamps solo si hubo ventas ese día
	if summary.FirstSaleAt != nil {
		resp.FirstSaleAt = summary.FirstSaleAt
	}
	if summary.LastSaleAt != nil {
		resp.LastSaleAt = summary.LastSaleAt
	}

	return resp, nil
}
