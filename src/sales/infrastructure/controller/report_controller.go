package controller

import (
	"log"
	"net/http"

	"pos/src/sales/application/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportController maneja las peticiones HTTP de reportes.
type ReportController struct {
	dailySummaryUC        *usecase.DailySummaryUseCase
	productSalesSummaryUC *usecase.ProductSalesSummaryUseCase
}

// NewReportController crea una nueva instancia del controlador.
func NewReportController(
	dailySummaryUC *usecase.DailySummaryUseCase,
	productSalesSummaryUC *usecase.ProductSalesSummaryUseCase,
) *ReportController {
	return &ReportController{
		dailySummaryUC:        dailySummaryUC,
		productSalesSummaryUC: productSalesSummaryUC,
	}
}

// RegisterRoutes registra las rutas del controlador.
func (c *ReportController) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("/daily", c.DailySummary)
		reports.GET("/products", c.ProductSalesSummary)
	}

	log.Println("Rutas Report disponibles:")
	log.Println("  GET    /api/v1/reports/daily?date=YYYY-MM-DD[&cashier_id=<uuid>]")
	log.Println("  GET    /api/v1/reports/products?date=YYYY-MM-DD")
}

// DailySummary genera el resumen diario de ventas, con filtro opcional por cajero.
func (c *ReportController) DailySummary(ctx *gin.Context) {
	if c.dailySummaryUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Reports not available (database not configured)",
		})
		return
	}

	date := ctx.Query("date")
	if date == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "date query parameter is required (format: YYYY-MM-DD)",
		})
		return
	}

	// Filtro opcional por cajero
	cashierID := uuid.Nil
	if raw := ctx.Query("cashier_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid cashier_id format",
			})
			return
		}
		cashierID = parsed
	}

	resp, err := c.dailySummaryUC.Execute(ctx.Request.Context(), date, cashierID)
	if err != nil {
		if containsInvalidDate(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		log.Printf("Error generating daily summary: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error generating daily summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ProductSalesSummary genera el resumen de ventas por producto para un día.
func (c *ReportController) ProductSalesSummary(ctx *gin.Context) {
	if c.productSalesSummaryUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Reports not available (database not configured)",
		})
		return
	}

	date := ctx.Query("date")
	if date == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "date query parameter is required (format: YYYY-MM-DD)",
		})
		return
	}

	rows, err := c.productSalesSummaryUC.Execute(ctx.Request.Context(), date)
	if err != nil {
		if containsInvalidDate(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		log.Printf("Error generating product sales summary: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error generating product sales summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"date":        date,
		"items":       rows,
		"total_count": len(rows),
	})
}
