package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"pos/src/sales/application/request"
	"pos/src/sales/application/response"
	"pos/src/sales/domain/entity"
	"pos/src/sales/domain/port"
)

// ProcessSaleUseCase caso de uso para registrar una venta de mostrador.
// Es el único flujo con lógica de negocio real del servicio: valida el
// carrito, y delega en el repositorio la unidad atómica completa
// (lock de productos + snapshot de precios + inserts + descuento de stock).
type ProcessSaleUseCase struct {
	saleRepo port.SaleRepository
}

// NewProcessSaleUseCase crea una nueva instancia del caso de uso.
func NewProcessSaleUseCase(saleRepo port.SaleRepository) *ProcessSaleUseCase {
	return &ProcessSaleUseCase{
		saleRepo: saleRepo,
	}
}

// Execute registra una venta completa:
//  1. Valida la entrada (carrito no vacío, cantidades > 0, pago >= 0,
//     descuento en [0,100]) sin tocar el catálogo.
//  2. Ejecuta la venta como una sola transacción: todo se confirma o nada.
//  3. Arma el ticket de respuesta.
//
// En caso de falla el estado queda exactamente como antes: sin venta,
// sin items y sin descuentos de stock.
func (uc *ProcessSaleUseCase) Execute(ctx context.Context, req *request.ProcessSaleRequest) (*response.ReceiptResponse, error) {
	log.Printf("🛒 Nueva venta - Items: %d, Cajero: %s", len(req.Items), req.CashierID)

	// ========================================================================
	// PASO 1: VALIDAR ENTRADA Y ARMAR EL BORRADOR
	// ========================================================================
	lines := make([]entity.CartLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, entity.CartLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	draft, err := entity.NewSaleDraft(
		req.CashierID,
		req.CustomerName,
		lines,
		req.DiscountPercentage,
		req.AmountPaid,
	)
	if err != nil {
		log.Printf("❌ Venta rechazada por validación: %v", err)
		return nil, err
	}

	// ========================================================================
	// PASO 2: EJECUTAR LA UNIDAD ATÓMICA
	// ========================================================================
	if uc.saleRepo == nil {
		return nil, fmt.Errorf("sale repository not available")
	}

	sale, err := uc.saleRepo.ProcessSale(ctx, draft)
	if err != nil {
		var stockErr *entity.InsufficientStockError
		var notFoundErr *entity.ProductNotFoundError
		switch {
		case errors.As(err, &stockErr):
			log.Printf("❌ Stock insuficiente para %s: disponible %d, pedido %d",
				stockErr.ProductName, stockErr.Available, stockErr.Requested)
		case errors.As(err, &notFoundErr):
			log.Printf("❌ Producto inexistente en el carrito: %s", notFoundErr.ProductID)
		default:
			log.Printf("⚠️ Error de persistencia procesando la venta: %v", err)
		}
		return nil, err
	}

	log.Printf("✅ Venta registrada: %s, Items=%d, Total=%s, Vuelto=%s",
		sale.TransactionCode, sale.TotalItems(), sale.GrandTotal, sale.ChangeAmount)

	// ========================================================================
	// PASO 3: ARMAR EL TICKET
	// ========================================================================
	return toReceipt(sale, ""), nil
}

// toReceipt mapea el aggregate al DTO de ticket.
func toReceipt(sale *entity.Sale, cashierName string) *response.ReceiptResponse {
	items := make([]response.ReceiptItemResponse, 0, len(sale.Items))
	for _, item := range sale.Items {
		items = append(items, response.ReceiptItemResponse{
			ItemID:      item.ItemID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
		})
	}

	return &response.ReceiptResponse{
		SaleID:             sale.SaleID,
		TransactionCode:    sale.TransactionCode,
		CashierID:          sale.CashierID,
		CashierName:        cashierName,
		CustomerName:       sale.CustomerName,
		SaleDate:           sale.SaleDate,
		Items:              items,
		TotalItems:         sale.TotalItems(),
		Subtotal:           sale.Subtotal,
		DiscountPercentage: sale.DiscountPercentage,
		DiscountAmount:     sale.DiscountAmount,
		GrandTotal:         sale.GrandTotal,
		AmountPaid:         sale.AmountPaid,
		ChangeAmount:       sale.ChangeAmount,
		PaymentMethod:      sale.PaymentMethod,
		Status:             sale.Status,
	}
}
