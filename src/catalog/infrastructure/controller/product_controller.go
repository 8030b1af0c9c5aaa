package controller

import (
	"log"
	"net/http"

	"pos/src/catalog/application/usecase"

	"github.com/gin-gonic/gin"
)

// ProductController maneja las peticiones HTTP del catálogo.
type ProductController struct {
	listAvailableUC *usecase.ListAvailableProductsUseCase
}

// NewProductController crea una nueva instancia del controlador.
func NewProductController(listAvailableUC *usecase.ListAvailableProductsUseCase) *ProductController {
	return &ProductController{
		listAvailableUC: listAvailableUC,
	}
}

// RegisterRoutes registra las rutas del controlador.
func (c *ProductController) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", c.ListAvailable)
	}

	log.Println("Rutas Catalog disponibles:")
	log.Println("  GET    /api/v1/products")
}

// ListAvailable lista los productos vendibles para la pantalla de venta.
func (c *ProductController) ListAvailable(ctx *gin.Context) {
	if c.listAvailableUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Product listing not available (database not configured)",
		})
		return
	}

	items, err := c.listAvailableUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing available products: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error listing products",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_count": len(items),
	})
}
