package usecase

import (
	"context"

	"pos/src/catalog/application/response"
	"pos/src/catalog/domain/port"
)

// ListAvailableProductsUseCase lista los productos vendibles para el
// formulario de nueva venta (solo stock > 0, ordenados por nombre).
type ListAvailableProductsUseCase struct {
	productRepo port.ProductRepository
}

// NewListAvailableProductsUseCase crea una nueva instancia del caso de uso.
func NewListAvailableProductsUseCase(productRepo port.ProductRepository) *ListAvailableProductsUseCase {
	return &ListAvailableProductsUseCase{productRepo: productRepo}
}

// Execute retorna los productos disponibles.
func (uc *ListAvailableProductsUseCase) Execute(ctx context.Context) ([]*response.ProductResponse, error) {
	products, err := uc.productRepo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*response.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, &response.ProductResponse{
			ID:            p.ID,
			Name:          p.Name,
			Price:         p.Price,
			StockQuantity: p.StockQuantity,
		})
	}
	return items, nil
}
