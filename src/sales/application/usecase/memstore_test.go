package usecase_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"pos/src/sales/domain/entity"
	"pos/src/sales/domain/port"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// memStore es un SaleRepository en memoria para los tests: catálogo y libro
// de ventas protegidos por un mutex, con la misma semántica atómica que el
// repositorio de PostgreSQL (el lock juega el rol del SELECT FOR UPDATE).
type memStore struct {
	mu       sync.Mutex
	products map[uuid.UUID]*entity.ProductSnapshot
	sales    []*entity.Sale
	failWith error // fuerza una falla de persistencia en ProcessSale
}

func newMemStore() *memStore {
	return &memStore{
		products: make(map[uuid.UUID]*entity.ProductSnapshot),
	}
}

func (m *memStore) addProduct(name string, price int64, stock int) uuid.UUID {
	id := uuid.New()
	m.products[id] = &entity.ProductSnapshot{
		ID:            id,
		Name:          name,
		UnitPrice:     decimal.NewFromInt(price),
		StockQuantity: stock,
	}
	return id
}

func (m *memStore) stock(id uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products[id].StockQuantity
}

func (m *memStore) salesCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sales)
}

func (m *memStore) ProcessSale(_ context.Context, draft *entity.SaleDraft) (*entity.Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return nil, m.failWith
	}

	snapshots := make([]entity.ProductSnapshot, 0, len(draft.Lines))
	for _, line := range draft.Lines {
		snap, ok := m.products[line.ProductID]
		if !ok {
			return nil, &entity.ProductNotFoundError{ProductID: line.ProductID}
		}
		snapshots = append(snapshots, *snap)
	}

	sale, err := entity.BuildSale(draft, snapshots)
	if err != nil {
		return nil, err
	}

	for _, line := range draft.Lines {
		m.products[line.ProductID].StockQuantity -= line.Quantity
	}
	m.sales = append(m.sales, sale)

	return sale, nil
}

func (m *memStore) FindByID(_ context.Context, saleID uuid.UUID) (*entity.Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.sales {
		if s.SaleID == saleID {
			return s, nil
		}
	}
	return nil, entity.ErrSaleNotFound
}

func (m *memStore) ListByDate(_ context.Context, day time.Time) ([]*entity.Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1)

	var result []*entity.Sale
	for _, s := range m.sales {
		if !s.SaleDate.Before(from) && s.SaleDate.Before(to) {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].SaleDate.Before(result[j].SaleDate)
	})
	return result, nil
}

func (m *memStore) ListByCashier(_ context.Context, cashierID uuid.UUID) ([]*entity.Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []*entity.Sale
	for _, s := range m.sales {
		if s.CashierID == cashierID {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].SaleDate.After(result[j].SaleDate)
	})
	return result, nil
}

func (m *memStore) ProductSalesSummary(ctx context.Context, day time.Time) ([]port.ProductSales, error) {
	sales, err := m.ListByDate(ctx, day)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*port.ProductSales)
	for _, s := range sales {
		for _, item := range s.Items {
			row, ok := byName[item.ProductName]
			if !ok {
				row = &port.ProductSales{ProductName: item.ProductName, TotalAmount: decimal.Zero}
				byName[item.ProductName] = row
			}
			row.TotalQty += item.Quantity
			row.TotalAmount = row.TotalAmount.Add(item.LineTotal)
		}
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]port.ProductSales, 0, len(names))
	for _, name := range names {
		result = append(result, *byName[name])
	}
	return result, nil
}

func (m *memStore) DailySummary(ctx context.Context, day time.Time, cashierID uuid.UUID) (*port.DailySummary, error) {
	sales, err := m.ListByDate(ctx, day)
	if err != nil {
		return nil, err
	}

	summary := &port.DailySummary{
		GrossTotal:     decimal.Zero,
		TotalDiscounts: decimal.Zero,
		NetTotal:       decimal.Zero,
	}

	for _, s := range sales {
		if cashierID != uuid.Nil && s.CashierID != cashierID {
			continue
		}
		summary.SalesCount++
		summary.GrossTotal = summary.GrossTotal.Add(s.Subtotal)
		summary.TotalDiscounts = summary.TotalDiscounts.Add(s.DiscountAmount)
		summary.NetTotal = summary.NetTotal.Add(s.GrandTotal)

		saleDate := s.SaleDate
		if summary.FirstSaleAt == nil || saleDate.Before(*summary.FirstSaleAt) {
			first := saleDate
			summary.FirstSaleAt = &first
		}
		if summary.LastSaleAt == nil || saleDate.After(*summary.LastSaleAt) {
			last := saleDate
			summary.LastSaleAt = &last
		}
	}

	return summary, nil
}
