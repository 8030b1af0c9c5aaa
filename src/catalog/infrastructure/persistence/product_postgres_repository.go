package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pos/src/catalog/domain/entity"
	"pos/src/catalog/domain/port"

	"github.com/google/uuid"
)

// ProductPostgresRepository implementa ProductRepository usando PostgreSQL.
type ProductPostgresRepository struct {
	db *sql.DB
}

// NewProductPostgresRepository crea una nueva instancia del repositorio.
func NewProductPostgresRepository(db *sql.DB) port.ProductRepository {
	return &ProductPostgresRepository{
		db: db,
	}
}

// FindByID busca un producto por su ID.
func (r *ProductPostgresRepository) FindByID(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	query := `
		SELECT id, name, description, price, stock_quantity, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	product := &entity.Product{}
	err := r.db.QueryRowContext(ctx, query, productID).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.StockQuantity,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding product: %w", err)
	}

	return product, nil
}

// ListAvailable retorna los productos con stock disponible, ordenados por nombre.
func (r *ProductPostgresRepository) ListAvailable(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, name, description, price, stock_quantity, created_at, updated_at
		FROM products
		WHERE stock_quantity > 0
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product

	for rows.Next() {
		product := &entity.Product{}
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.StockQuantity,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// DecrementStock descuenta stock con un UPDATE condicionado (compare-and-swap).
// Dos ventas concurrentes del mismo producto no pueden descontar más que el
// stock disponible: la condición stock_quantity >= $2 se evalúa bajo el lock
// de fila del UPDATE.
func (r *ProductPostgresRepository) DecrementStock(ctx context.Context, productID uuid.UUID, quantity int) error {
	query := `
		UPDATE products
		SET stock_quantity = stock_quantity - $2, updated_at = NOW()
		WHERE id = $1 AND stock_quantity >= $2
	`

	result, err := r.db.ExecContext(ctx, query, productID, quantity)
	if err != nil {
		return fmt.Errorf("error decrementing stock: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		// Distinguir producto inexistente de stock insuficiente
		var exists bool
		err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, productID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking product existence: %w", err)
		}
		if !exists {
			return entity.ErrProductNotFound
		}
		return entity.ErrInsufficientStock
	}

	return nil
}
