package port

import (
	"context"

	"pos/src/catalog/domain/entity"

	"github.com/google/uuid"
)

// ProductRepository define el contrato de lectura y descuento de stock del catálogo.
// El alta/edición de productos es administración y queda fuera de este servicio.
type ProductRepository interface {
	// FindByID retorna un producto por su ID, o ErrProductNotFound.
	FindByID(ctx context.Context, productID uuid.UUID) (*entity.Product, error)

	// ListAvailable retorna los productos con stock > 0 ordenados por nombre,
	// para el formulario de venta.
	ListAvailable(ctx context.Context) ([]*entity.Product, error)

	// DecrementStock descuenta stock de forma atómica: un solo UPDATE
	// condicionado a stock_quantity >= quantity. Retorna ErrInsufficientStock
	// si no alcanza (el stock queda intacto) o ErrProductNotFound.
	DecrementStock(ctx context.Context, productID uuid.UUID, quantity int) error
}
