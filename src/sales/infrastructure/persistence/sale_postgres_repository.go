package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pos/src/sales/domain/entity"
	"pos/src/sales/domain/port"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// uniqueViolation es el código de error de PostgreSQL para violación de
// constraint UNIQUE (lo usamos para detectar colisiones de transaction_code).
const uniqueViolation = "23505"

// SalePostgresRepository implementa SaleRepository usando PostgreSQL.
type SalePostgresRepository struct {
	db *sql.DB
}

// NewSalePostgresRepository crea una nueva instancia del repositorio.
func NewSalePostgresRepository(db *sql.DB) port.SaleRepository {
	return &SalePostgresRepository{
		db: db,
	}
}

// ProcessSale ejecuta la venta completa dentro de UNA transacción:
//
//  1. SELECT ... FOR UPDATE de cada producto del carrito, en orden de entrada.
//     El lock de fila garantiza que dos ventas concurrentes del mismo producto
//     se serialicen: la segunda ve el stock ya descontado por la primera.
//  2. BuildSale valida stock y calcula los totales con los precios lockeados.
//  3. INSERT del encabezado, INSERT de cada item, UPDATE de stock por producto.
//  4. COMMIT. Cualquier error hace rollback de todo: ni venta, ni items,
//     ni descuento de stock quedan visibles.
func (r *SalePostgresRepository) ProcessSale(ctx context.Context, draft *entity.SaleDraft) (*entity.Sale, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Lockear y snapshotear cada producto del carrito
	queryProduct := `
		SELECT id, name, price, stock_quantity
		FROM products
		WHERE id = $1
		FOR UPDATE
	`

	snapshots := make([]entity.ProductSnapshot, 0, len(draft.Lines))
	for _, line := range draft.Lines {
		var snap entity.ProductSnapshot
		err := tx.QueryRowContext(ctx, queryProduct, line.ProductID).Scan(
			&snap.ID,
			&snap.Name,
			&snap.UnitPrice,
			&snap.StockQuantity,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &entity.ProductNotFoundError{ProductID: line.ProductID}
		}
		if err != nil {
			return nil, fmt.Errorf("error locking product %s: %w", line.ProductID, err)
		}
		snapshots = append(snapshots, snap)
	}

	// 2. Armar el aggregate (valida stock y calcula totales)
	sale, err := entity.BuildSale(draft, snapshots)
	if err != nil {
		return nil, err
	}

	// 3. Insertar encabezado de venta
	querySale := `
		INSERT INTO sales (
			sale_id, transaction_code, cashier_id, customer_name, sale_date,
			subtotal, discount_percentage, discount_amount, grand_total,
			amount_paid, change_amount, payment_method, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)
	`

	_, err = tx.ExecContext(ctx, querySale,
		sale.SaleID,
		sale.TransactionCode,
		sale.CashierID,
		sale.CustomerName,
		sale.SaleDate,
		sale.Subtotal,
		sale.DiscountPercentage,
		sale.DiscountAmount,
		sale.GrandTotal,
		sale.AmountPaid,
		sale.ChangeAmount,
		sale.PaymentMethod,
		sale.Status,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("transaction code collision for %s: %w", sale.TransactionCode, err)
		}
		return nil, fmt.Errorf("error creating sale: %w", err)
	}

	// 4. Insertar items
	queryItem := `
		INSERT INTO sale_items (
			item_id, sale_id, product_id, product_name,
			line_no, quantity, unit_price, line_total
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	for _, item := range sale.Items {
		_, err = tx.ExecContext(ctx, queryItem,
			item.ItemID,
			item.SaleID,
			item.ProductID,
			item.ProductName,
			item.LineNo,
			item.Quantity,
			item.UnitPrice,
			item.LineTotal,
		)
		if err != nil {
			return nil, fmt.Errorf("error creating sale item for product %s: %w", item.ProductID, err)
		}
	}

	// 5. Descontar stock. La condición stock_quantity >= $2 no debería fallar
	// nunca acá (el stock ya se validó bajo lock), pero la dejamos como
	// última línea de defensa del invariante stock >= 0.
	queryStock := `
		UPDATE products
		SET stock_quantity = stock_quantity - $2, updated_at = NOW()
		WHERE id = $1 AND stock_quantity >= $2
	`

	for i, line := range draft.Lines {
		result, err := tx.ExecContext(ctx, queryStock, line.ProductID, line.Quantity)
		if err != nil {
			return nil, fmt.Errorf("error updating stock for product %s: %w", line.ProductID, err)
		}
		rowsAffected, _ := result.RowsAffected()
		if rowsAffected == 0 {
			snap := snapshots[i]
			return nil, &entity.InsufficientStockError{
				ProductID:   snap.ID,
				ProductName: snap.Name,
				Available:   snap.StockQuantity,
				Requested:   line.Quantity,
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return sale, nil
}

// FindByID retorna una venta con sus items.
func (r *SalePostgresRepository) FindByID(ctx context.Context, saleID uuid.UUID) (*entity.Sale, error) {
	querySale := `
		SELECT sale_id, transaction_code, cashier_id, customer_name, sale_date,
			subtotal, discount_percentage, discount_amount, grand_total,
			amount_paid, change_amount, payment_method, status
		FROM sales
		WHERE sale_id = $1
	`

	sale := &entity.Sale{}
	err := r.db.QueryRowContext(ctx, querySale, saleID).Scan(
		&sale.SaleID,
		&sale.TransactionCode,
		&sale.CashierID,
		&sale.CustomerName,
		&sale.SaleDate,
		&sale.Subtotal,
		&sale.DiscountPercentage,
		&sale.DiscountAmount,
		&sale.GrandTotal,
		&sale.AmountPaid,
		&sale.ChangeAmount,
		&sale.PaymentMethod,
		&sale.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrSaleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding sale: %w", err)
	}

	items, err := r.loadItems(ctx, sale.SaleID)
	if err != nil {
		return nil, err
	}
	sale.Items = items

	return sale, nil
}

// ListByDate retorna las ventas del día [day, day+1) con sus items.
// Importante: rango >= from AND < to para aprovechar el índice por fecha,
// nunca DATE(sale_date).
func (r *SalePostgresRepository) ListByDate(ctx context.Context, day time.Time) ([]*entity.Sale, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1)

	querySales := `
		SELECT sale_id, transaction_code, cashier_id, customer_name, sale_date,
			subtotal, discount_percentage, discount_amount, grand_total,
			amount_paid, change_amount, payment_method, status
		FROM sales
		WHERE sale_date >= $1 AND sale_date < $2
		ORDER BY sale_date ASC
	`

	rows, err := r.db.QueryContext(ctx, querySales, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying sales: %w", err)
	}
	defer rows.Close()

	sales, err := scanSales(rows)
	if err != nil {
		return nil, err
	}

	// Cargar items de cada venta (N+1 query, suficiente para volúmenes de mostrador)
	for _, sale := range sales {
		items, err := r.loadItems(ctx, sale.SaleID)
		if err != nil {
			return nil, err
		}
		sale.Items = items
	}

	return sales, nil
}

// ListByCashier retorna los encabezados de venta de un cajero, más recientes primero.
func (r *SalePostgresRepository) ListByCashier(ctx context.Context, cashierID uuid.UUID) ([]*entity.Sale, error) {
	query := `
		SELECT sale_id, transaction_code, cashier_id, customer_name, sale_date,
			subtotal, discount_percentage, discount_amount, grand_total,
			amount_paid, change_amount, payment_method, status
		FROM sales
		WHERE cashier_id = $1
		ORDER BY sale_date DESC
	`

	rows, err := r.db.QueryContext(ctx, query, cashierID)
	if err != nil {
		return nil, fmt.Errorf("error querying sales by cashier: %w", err)
	}
	defer rows.Close()

	return scanSales(rows)
}

// ProductSalesSummary agrega cantidad y monto por producto para un día.
// Agrupa por el nombre snapshoteado en sale_items: el resumen refleja lo que
// decía el ticket, no el nombre actual del catálogo.
func (r *SalePostgresRepository) ProductSalesSummary(ctx context.Context, day time.Time) ([]port.ProductSales, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1)

	query := `
		SELECT
			si.product_name,
			SUM(si.quantity) AS total_qty,
			SUM(si.line_total) AS total_amount
		FROM sales s
		JOIN sale_items si ON s.sale_id = si.sale_id
		WHERE s.sale_date >= $1 AND s.sale_date < $2
		GROUP BY si.product_name
		ORDER BY si.product_name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying product sales summary: %w", err)
	}
	defer rows.Close()

	var result []port.ProductSales
	for rows.Next() {
		var row port.ProductSales
		if err := rows.Scan(&row.ProductName, &row.TotalQty, &row.TotalAmount); err != nil {
			return nil, fmt.Errorf("error scanning product sales row: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product sales summary: %w", err)
	}

	return result, nil
}

// DailySummary retorna los agregados del día. Dos formas fijas de query
// (con y sin filtro de cajero), siempre parametrizadas.
func (r *SalePostgresRepository) DailySummary(ctx context.Context, day time.Time, cashierID uuid.UUID) (*port.DailySummary, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1)

	baseQuery := `
		SELECT
			COUNT(*) AS sales_count,
			COALESCE(SUM(subtotal), 0) AS gross_total,
			COALESCE(SUM(discount_amount), 0) AS total_discounts,
			COALESCE(SUM(grand_total), 0) AS net_total,
			MIN(sale_date) AS first_sale,
			MAX(sale_date) AS last_sale
		FROM sales
		WHERE sale_date >= $1 AND sale_date < $2
	`

	var row *sql.Row
	if cashierID == uuid.Nil {
		row = r.db.QueryRowContext(ctx, baseQuery, from, to)
	} else {
		row = r.db.QueryRowContext(ctx, baseQuery+" AND cashier_id = $3", from, to, cashierID)
	}

	summary := &port.DailySummary{}
	var firstSale, lastSale sql.NullTime

	err := row.Scan(
		&summary.SalesCount,
		&summary.GrossTotal,
		&summary.TotalDiscounts,
		&summary.NetTotal,
		&firstSale,
		&lastSale,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying daily summary: %w", err)
	}

	if firstSale.Valid {
		summary.FirstSaleAt = &firstSale.Time
	}
	if lastSale.Valid {
		summary.LastSaleAt = &lastSale.Time
	}

	return summary, nil
}

// loadItems carga los items de una venta en orden de inserción.
func (r *SalePostgresRepository) loadItems(ctx context.Context, saleID uuid.UUID) ([]entity.SaleItem, error) {
	query := `
		SELECT item_id, sale_id, product_id, product_name,
			line_no, quantity, unit_price, line_total
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY line_no ASC
	`

	rows, err := r.db.QueryContext(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("error querying sale items: %w", err)
	}
	defer rows.Close()

	var items []entity.SaleItem
	for rows.Next() {
		var item entity.SaleItem
		err := rows.Scan(
			&item.ItemID,
			&item.SaleID,
			&item.ProductID,
			&item.ProductName,
			&item.LineNo,
			&item.Quantity,
			&item.UnitPrice,
			&item.LineTotal,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale items: %w", err)
	}

	return items, nil
}

// scanSales lee encabezados de venta desde un result set.
func scanSales(rows *sql.Rows) ([]*entity.Sale, error) {
	var sales []*entity.Sale
	for rows.Next() {
		sale := &entity.Sale{}
		err := rows.Scan(
			&sale.SaleID,
			&sale.TransactionCode,
			&sale.CashierID,
			&sale.CustomerName,
			&sale.SaleDate,
			&sale.Subtotal,
			&sale.DiscountPercentage,
			&sale.DiscountAmount,
			&sale.GrandTotal,
			&sale.AmountPaid,
			&sale.ChangeAmount,
			&sale.PaymentMethod,
			&sale.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale: %w", err)
		}
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}

	return sales, nil
}
