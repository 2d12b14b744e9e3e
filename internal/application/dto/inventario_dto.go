package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearLoteRequest alta de lote de producción.
// FechaProduccion vacía = ahora; el vencimiento se deriva del producto.
type CrearLoteRequest struct {
	ProductoID        string          `json:"productoId" validate:"required,uuid4"`
	CantidadProducida decimal.Decimal `json:"cantidadProducida" validate:"required"`
	UbicacionLote     string          `json:"ubicacionLote" validate:"required"`
	FechaProduccion   *time.Time      `json:"fechaProduccion"`
}

// ActualizarLoteRequest corrección de lote: cantidad producida, vencimiento o
// transición administrativa de estado.
type ActualizarLoteRequest struct {
	CantidadProducida *decimal.Decimal `json:"cantidadProducida"`
	FechaVencimiento  *time.Time       `json:"fechaVencimiento"`
	Estado            *string          `json:"estado"`
}

// RegistrarMovimientoRequest alta de movimiento de inventario.
// Cantidad > 0 para ENTRADA/SALIDA; en AJUSTE lleva signo.
type RegistrarMovimientoRequest struct {
	ProductoID     string          `json:"productoId" validate:"required,uuid4"`
	LoteID         string          `json:"loteId"`
	TipoMovimiento string          `json:"tipoMovimiento" validate:"required,oneof=ENTRADA SALIDA AJUSTE"`
	Razon          string          `json:"razon" validate:"required"`
	Cantidad       decimal.Decimal `json:"cantidad" validate:"required"`
	OrigenDestino  string          `json:"origenDestino"`
}

// ActualizarMovimientoRequest corrección de metadatos de un movimiento
// (override de negocio: no re-ejecuta efectos sobre stock ni lotes).
type ActualizarMovimientoRequest struct {
	Razon         *string `json:"razon"`
	OrigenDestino *string `json:"origenDestino"`
}

// ActualizarStockRequest edición de umbrales y contadores del stock.
type ActualizarStockRequest struct {
	StockActual    *decimal.Decimal `json:"stockActual"`
	StockReservado *decimal.Decimal `json:"stockReservado"`
	StockMinimo    *decimal.Decimal `json:"stockMinimo"`
	StockMaximo    *decimal.Decimal `json:"stockMaximo"`
}
