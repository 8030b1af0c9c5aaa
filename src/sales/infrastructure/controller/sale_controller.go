package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"pos/src/sales/application/request"
	"pos/src/sales/application/usecase"
	"pos/src/sales/domain/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// salesProcessed cuenta las ventas procesadas por resultado
// (committed, rejected, failed).
var salesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pos_sales_processed_total",
	Help: "Total de ventas procesadas por resultado",
}, []string{"result"})

// SaleController maneja las peticiones HTTP de ventas.
type SaleController struct {
	processSaleUC    *usecase.ProcessSaleUseCase
	getReceiptUC     *usecase.GetReceiptUseCase
	salesByDateUC    *usecase.SalesByDateUseCase
	salesByCashierUC *usecase.SalesByCashierUseCase
}

// NewSaleController crea una nueva instancia del controlador.
func NewSaleController(
	processSaleUC *usecase.ProcessSaleUseCase,
	getReceiptUC *usecase.GetReceiptUseCase,
	salesByDateUC *usecase.SalesByDateUseCase,
	salesByCashierUC *usecase.SalesByCashierUseCase,
) *SaleController {
	return &SaleController{
		processSaleUC:    processSaleUC,
		getReceiptUC:     getReceiptUC,
		salesByDateUC:    salesByDateUC,
		salesByCashierUC: salesByCashierUC,
	}
}

// RegisterRoutes registra las rutas del controlador.
func (c *SaleController) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/sales")
	{
		sales.POST("", c.ProcessSale)
		sales.GET("", c.ListSales)
		sales.GET("/:sale_id", c.GetReceipt)
	}

	log.Println("Rutas Sales disponibles:")
	log.Println("  POST   /api/v1/sales  ⭐ (Registrar venta)")
	log.Println("  GET    /api/v1/sales?date=YYYY-MM-DD")
	log.Println("  GET    /api/v1/sales?cashier_id=<uuid>")
	log.Println("  GET    /api/v1/sales/:sale_id  (Ticket)")
}

// ProcessSale registra una venta de mostrador.
func (c *SaleController) ProcessSale(ctx *gin.Context) {
	if c.processSaleUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Sale processing not available (database not configured)",
		})
		return
	}

	// 1. Validar body
	var req request.ProcessSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	// 2. Ejecutar use case
	receipt, err := c.processSaleUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		c.renderSaleError(ctx, err)
		return
	}

	// 3. Responder con el ticket
	salesProcessed.WithLabelValues("committed").Inc()
	ctx.JSON(http.StatusCreated, receipt)
}

// renderSaleError traduce la taxonomía de errores del flujo de venta a HTTP.
// Los errores de entrada y de negocio llevan detalle; los de persistencia
// se loguean para operación y salen como mensaje genérico.
func (c *SaleController) renderSaleError(ctx *gin.Context, err error) {
	var stockErr *entity.InsufficientStockError
	var notFoundErr *entity.ProductNotFoundError

	switch {
	case errors.Is(err, entity.ErrEmptyCart),
		errors.Is(err, entity.ErrInvalidQuantity),
		errors.Is(err, entity.ErrInvalidPayment),
		errors.Is(err, entity.ErrInvalidDiscount),
		errors.Is(err, entity.ErrCashierIDRequired):
		salesProcessed.WithLabelValues("rejected").Inc()
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})

	case errors.As(err, &notFoundErr):
		salesProcessed.WithLabelValues("rejected").Inc()
		ctx.JSON(http.StatusNotFound, gin.H{
			"error":      "Product not found",
			"product_id": notFoundErr.ProductID,
		})

	case errors.As(err, &stockErr):
		salesProcessed.WithLabelValues("rejected").Inc()
		ctx.JSON(http.StatusConflict, gin.H{
			"error":     "Insufficient stock available",
			"product":   stockErr.ProductName,
			"available": stockErr.Available,
			"requested": stockErr.Requested,
		})

	default:
		salesProcessed.WithLabelValues("failed").Inc()
		log.Printf("Error processing sale: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error processing sale",
		})
	}
}

// ListSales lista ventas por fecha (?date=) o por cajero (?cashier_id=).
func (c *SaleController) ListSales(ctx *gin.Context) {
	if date := ctx.Query("date"); date != "" {
		c.listByDate(ctx, date)
		return
	}

	if cashierID := ctx.Query("cashier_id"); cashierID != "" {
		c.listByCashier(ctx, cashierID)
		return
	}

	ctx.JSON(http.StatusBadRequest, gin.H{
		"error": "date or cashier_id query parameter is required",
	})
}

func (c *SaleController) listByDate(ctx *gin.Context, date string) {
	if c.salesByDateUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Sales listing not available (database not configured)",
		})
		return
	}

	items, err := c.salesByDateUC.Execute(ctx.Request.Context(), date)
	if err != nil {
		if containsInvalidDate(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		log.Printf("Error listing sales by date: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error listing sales",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_count": len(items),
	})
}

func (c *SaleController) listByCashier(ctx *gin.Context, cashierID string) {
	if c.salesByCashierUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Sales listing not available (database not configured)",
		})
		return
	}

	cashierUUID, err := uuid.Parse(cashierID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cashier_id format",
		})
		return
	}

	items, err := c.salesByCashierUC.Execute(ctx.Request.Context(), cashierUUID)
	if err != nil {
		log.Printf("Error listing sales by cashier: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error listing sales",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_count": len(items),
	})
}

// GetReceipt retorna el ticket de una venta histórica.
func (c *SaleController) GetReceipt(ctx *gin.Context) {
	if c.getReceiptUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Receipt retrieval not available (database not configured)",
		})
		return
	}

	saleID, err := uuid.Parse(ctx.Param("sale_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid sale_id format",
		})
		return
	}

	receipt, err := c.getReceiptUC.Execute(ctx.Request.Context(), saleID)
	if err != nil {
		if errors.Is(err, entity.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{
				"error": "Sale not found",
			})
			return
		}
		log.Printf("Error getting receipt: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error getting receipt",
		})
		return
	}

	ctx.JSON(http.StatusOK, receipt)
}

// containsInvalidDate detecta el error de formato de fecha del use case.
func containsInvalidDate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "invalid date format")
}
