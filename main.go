package main

import (
	"database/sql"
	"log"

	catalogUseCase "pos/src/catalog/application/usecase"
	catalogController "pos/src/catalog/infrastructure/controller"
	catalogPersistence "pos/src/catalog/infrastructure/persistence"
	salesUseCase "pos/src/sales/application/usecase"
	salesCache "pos/src/sales/infrastructure/cache"
	salesController "pos/src/sales/infrastructure/controller"
	salesPersistence "pos/src/sales/infrastructure/persistence"
	sharedConfig "pos/src/shared/infrastructure/config"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log.Println("🚀 POS Service - Iniciando...")

	// Configurar el router con Gin
	router := gin.New()

	// Middlewares básicos
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Prometheus metrics si está habilitado
	if sharedConfig.PrometheusEnabled() {
		log.Println("Registering /metrics endpoint")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled")
	}

	// Conectar a la base de datos
	dbCfg := sharedConfig.LoadDBConfig()
	log.Printf("Intentando conectar a %s", dbCfg.Name)

	db, err := sql.Open("postgres", dbCfg.ConnString())
	if err != nil {
		log.Printf("⚠️  Advertencia: Error al conectar a la base de datos: %v", err)
		log.Println("⚠️  Continuando sin DB (solo health check)")
		db = nil
	} else {
		defer db.Close()
		// Comprobar la conexión
		if err = db.Ping(); err != nil {
			log.Printf("⚠️  Advertencia: Error al verificar la conexión a la base de datos: %v", err)
			log.Println("⚠️  Continuando sin DB (solo health check)")
			db = nil
		} else {
			log.Printf("✅ Conexión a %s establecida con éxito", dbCfg.Name)
		}
	}

	// Health check
	router.GET("/health", func(ctx *gin.Context) {
		status := gin.H{"status": "ok"}
		if db == nil {
			status["database"] = "unavailable"
		}
		ctx.JSON(200, status)
	})

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	setupCatalogModule(v1, db)
	setupSalesModule(v1, db)

	// Iniciar el servidor
	port := sharedConfig.ServerPort()
	log.Printf("✅ Servidor POS iniciado en http://localhost:%s", port)
	router.Run(":" + port)
}

// setupCatalogModule configura el módulo Catalog.
func setupCatalogModule(router *gin.RouterGroup, db *sql.DB) {
	log.Println("Configurando módulo Catalog...")

	var listAvailableUC *catalogUseCase.ListAvailableProductsUseCase
	if db != nil {
		productRepo := catalogPersistence.NewProductPostgresRepository(db)
		listAvailableUC = catalogUseCase.NewListAvailableProductsUseCase(productRepo)
	}

	productCtrl := catalogController.NewProductController(listAvailableUC)
	productCtrl.RegisterRoutes(router)

	log.Println("Módulo Catalog configurado exitosamente")
}

// setupSalesModule configura el módulo Sales.
func setupSalesModule(router *gin.RouterGroup, db *sql.DB) {
	log.Println("Configurando módulo Sales...")

	// Cache de cajeros para resolver nombres en tickets y reportes
	var cashierCache *salesCache.CashierCache
	if db != nil {
		cashierCache = salesCache.NewCashierCache()
		if err := cashierCache.LoadFromDB(db); err != nil {
			log.Printf("⚠️  Warning: Could not load cashier cache: %v", err)
			cashierCache = nil
		}
	} else {
		log.Println("⚠️  Cashier cache disabled (no DB connection)")
	}

	var processSaleUC *salesUseCase.ProcessSaleUseCase
	var getReceiptUC *salesUseCase.GetReceiptUseCase
	var salesByDateUC *salesUseCase.SalesByDateUseCase
	var salesByCashierUC *salesUseCase.SalesByCashierUseCase
	var dailySummaryUC *salesUseCase.DailySummaryUseCase
	var productSummaryUC *salesUseCase.ProductSalesSummaryUseCase

	if db != nil {
		saleRepo := salesPersistence.NewSalePostgresRepository(db)
		processSaleUC = salesUseCase.NewProcessSaleUseCase(saleRepo)
		getReceiptUC = salesUseCase.NewGetReceiptUseCase(saleRepo, cashierCache)
		salesByDateUC = salesUseCase.NewSalesByDateUseCase(saleRepo, cashierCache)
		salesByCashierUC = salesUseCase.NewSalesByCashierUseCase(saleRepo)
		dailySummaryUC = salesUseCase.NewDailySummaryUseCase(saleRepo)
		productSummaryUC = salesUseCase.NewProductSalesSummaryUseCase(saleRepo)
	}

	saleCtrl := salesController.NewSaleController(processSaleUC, getReceiptUC, salesByDateUC, salesByCashierUC)
	reportCtrl := salesController.NewReportController(dailySummaryUC, productSummaryUC)

	saleCtrl.RegisterRoutes(router)
	reportCtrl.RegisterRoutes(router)

	log.Println("Módulo Sales configurado exitosamente")
}
