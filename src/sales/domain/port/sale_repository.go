package port

import (
	"context"
	"time"

	"pos/src/sales/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductSales es una fila del resumen de ventas por producto.
type ProductSales struct {
	ProductName string
	TotalQty    int
	TotalAmount decimal.Decimal
}

// DailySummary son los agregados de un día de ventas.
type DailySummary struct {
	SalesCount     int
	GrossTotal     decimal.Decimal
	TotalDiscounts decimal.Decimal
	NetTotal       decimal.Decimal
	FirstSaleAt    *time.Time
	LastSaleAt     *time.Time
}

// SaleRepository define el contrato de persistencia y lectura del libro de ventas.
type SaleRepository interface {
	// ProcessSale ejecuta la venta completa como una sola unidad atómica:
	// lockea cada producto del carrito, snapshotea precios, inserta la venta
	// con sus items y descuenta stock. Si cualquier paso falla no queda
	// ningún efecto visible (ni venta, ni items, ni descuento de stock).
	ProcessSale(ctx context.Context, draft *entity.SaleDraft) (*entity.Sale, error)

	// FindByID retorna una venta con sus items, o ErrSaleNotFound.
	FindByID(ctx context.Context, saleID uuid.UUID) (*entity.Sale, error)

	// ListByDate retorna las ventas del día [day 00:00, day+1 00:00) con sus
	// items, ordenadas por fecha; los items en orden de inserción.
	ListByDate(ctx context.Context, day time.Time) ([]*entity.Sale, error)

	// ListByCashier retorna los encabezados de venta de un cajero,
	// más recientes primero. Sin items.
	ListByCashier(ctx context.Context, cashierID uuid.UUID) ([]*entity.Sale, error)

	// ProductSalesSummary agrega cantidad y monto vendidos por producto para
	// un día, ordenado por nombre de producto.
	ProductSalesSummary(ctx context.Context, day time.Time) ([]ProductSales, error)

	// DailySummary retorna los agregados del día; cashierID opcional
	// (uuid.Nil = todos los cajeros).
	DailySummary(ctx context.Context, day time.Time, cashierID uuid.UUID) (*DailySummary, error)
}
