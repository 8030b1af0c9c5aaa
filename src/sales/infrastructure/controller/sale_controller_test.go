package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pos/src/sales/application/usecase"
	"pos/src/sales/domain/entity"
	"pos/src/sales/domain/port"
	"pos/src/sales/infrastructure/cache"
	"pos/src/sales/infrastructure/controller"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSaleRepo es un SaleRepository con respuestas enlatadas para probar
// la traducción de errores a códigos HTTP.
type stubSaleRepo struct {
	processSale func(*entity.SaleDraft) (*entity.Sale, error)
	findByID    func(uuid.UUID) (*entity.Sale, error)
}

func (s *stubSaleRepo) ProcessSale(_ context.Context, draft *entity.SaleDraft) (*entity.Sale, error) {
	return s.processSale(draft)
}

func (s *stubSaleRepo) FindByID(_ context.Context, saleID uuid.UUID) (*entity.Sale, error) {
	return s.findByID(saleID)
}

func (s *stubSaleRepo) ListByDate(context.Context, time.Time) ([]*entity.Sale, error) {
	return nil, nil
}

func (s *stubSaleRepo) ListByCashier(context.Context, uuid.UUID) ([]*entity.Sale, error) {
	return nil, nil
}

func (s *stubSaleRepo) ProductSalesSummary(context.Context, time.Time) ([]port.ProductSales, error) {
	return nil, nil
}

func (s *stubSaleRepo) DailySummary(context.Context, time.Time, uuid.UUID) (*port.DailySummary, error) {
	return &port.DailySummary{}, nil
}

func newTestRouter(repo port.SaleRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	cashiers := cache.NewCashierCache()
	ctrl := controller.NewSaleController(
		usecase.NewProcessSaleUseCase(repo),
		usecase.NewGetReceiptUseCase(repo, cashiers),
		usecase.NewSalesByDateUseCase(repo, cashiers),
		usecase.NewSalesByCashierUseCase(repo),
	)

	v1 := router.Group("/api/v1")
	ctrl.RegisterRoutes(v1)
	return router
}

func completedSale(draft *entity.SaleDraft) (*entity.Sale, error) {
	snapshots := make([]entity.ProductSnapshot, 0, len(draft.Lines))
	for _, line := range draft.Lines {
		snapshots = append(snapshots, entity.ProductSnapshot{
			ID:            line.ProductID,
			Name:          "Product A",
			UnitPrice:     decimal.NewFromInt(100),
			StockQuantity: 99,
		})
	}
	return entity.BuildSale(draft, snapshots)
}

func postSale(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validBody() map[string]any {
	return map[string]any{
		"cashier_id": uuid.NewString(),
		"items": []map[string]any{
			{"product_id": uuid.NewString(), "quantity": 2},
		},
		"amount_paid": "500",
	}
}

func TestProcessSaleEndpointCreated(t *testing.T) {
	router := newTestRouter(&stubSaleRepo{processSale: completedSale})

	w := postSale(t, router, validBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var receipt map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &receipt))
	assert.Equal(t, "Completed", receipt["status"])
	assert.Equal(t, "Cash", receipt["payment_method"])
	assert.NotEmpty(t, receipt["transaction_code"])
}

func TestProcessSaleEndpointBadBody(t *testing.T) {
	router := newTestRouter(&stubSaleRepo{processSale: completedSale})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing items", func(t *testing.T) {
		body := validBody()
		delete(body, "items")
		w := postSale(t, router, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProcessSaleEndpointInsufficientStock(t *testing.T) {
	router := newTestRouter(&stubSaleRepo{
		processSale: func(*entity.SaleDraft) (*entity.Sale, error) {
			return nil, &entity.InsufficientStockError{
				ProductID:   uuid.New(),
				ProductName: "Product A",
				Available:   2,
				Requested:   5,
			}
		},
	})

	w := postSale(t, router, validBody())
	require.Equal(t, http.StatusConflict, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Product A", body["product"])
	assert.Equal(t, float64(2), body["available"])
	assert.Equal(t, float64(5), body["requested"])
}

func TestProcessSaleEndpointProductNotFound(t *testing.T) {
	missing := uuid.New()
	router := newTestRouter(&stubSaleRepo{
		processSale: func(*entity.SaleDraft) (*entity.Sale, error) {
			return nil, &entity.ProductNotFoundError{ProductID: missing}
		},
	})

	w := postSale(t, router, validBody())
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, missing.String(), body["product_id"])
}

func TestProcessSaleEndpointPersistenceError(t *testing.T) {
	router := newTestRouter(&stubSaleRepo{
		processSale: func(*entity.SaleDraft) (*entity.Sale, error) {
			return nil, fmt.Errorf("insert sale: %w", errors.New("pq: deadlock detected"))
		},
	})

	w := postSale(t, router, validBody())
	require.Equal(t, http.StatusInternalServerError, w.Code)

	// El detalle interno no se filtra al cliente
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Error processing sale", body["error"])
}

func TestProcessSaleEndpointInvalidDiscount(t *testing.T) {
	router := newTestRouter(&stubSaleRepo{processSale: completedSale})

	body := validBody()
	body["discount_percentage"] = "150"
	w := postSale(t, router, body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, entity.ErrInvalidDiscount.Error(), resp["error"])
}

func TestGetReceiptEndpoint(t *testing.T) {
	cashierID := uuid.New()
	draft, err := entity.NewSaleDraft(cashierID, "",
		[]entity.CartLine{{ProductID: uuid.New(), Quantity: 1}},
		decimal.Zero, decimal.NewFromInt(100))
	require.NoError(t, err)
	sale, err := completedSale(draft)
	require.NoError(t, err)

	router := newTestRouter(&stubSaleRepo{
		findByID: func(id uuid.UUID) (*entity.Sale, error) {
			if id == sale.SaleID {
				return sale, nil
			}
			return nil, entity.ErrSaleNotFound
		},
	})

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sales/"+sale.SaleID.String(), nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sales/"+uuid.NewString(), nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad uuid", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sales/not-a-uuid", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListSalesEndpointRequiresFilter(t *testing.T) {
	router := newTestRouter(&stubSaleRepo{})

	t.Run("no filter", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sales", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sales?date=28-08-2026", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad cashier id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sales?cashier_id=abc", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("by cashier ok", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sales?cashier_id="+uuid.NewString(), nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestEndpointsUnavailableWithoutDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	ctrl := controller.NewSaleController(nil, nil, nil, nil)
	v1 := router.Group("/api/v1")
	ctrl.RegisterRoutes(v1)

	w := postSale(t, router, validBody())
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/api/v1/sales/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusServiceUnavailable, w2.Code)
}
