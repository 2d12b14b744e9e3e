package dto

import (
	"time"

	"github.com/scalimentos/inventario-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// LoteVentaRequest lote elegido por el vendedor para una línea, con la
// cantidad que ofrece de él.
type LoteVentaRequest struct {
	LoteID   string          `json:"loteId" validate:"required,uuid4"`
	Cantidad decimal.Decimal `json:"cantidad" validate:"required"`
}

// VentaLineaRequest línea de venta. PrecioUnitario vacío = precio de lista.
type VentaLineaRequest struct {
	ProductoID     string             `json:"productoId" validate:"required,uuid4"`
	Cantidad       decimal.Decimal    `json:"cantidad" validate:"required"`
	PrecioUnitario *decimal.Decimal   `json:"precioUnitario"`
	Lotes          []LoteVentaRequest `json:"lotes" validate:"required,min=1,dive"`
}

// CrearVentaRequest alta de venta con asignación de lotes.
type CrearVentaRequest struct {
	ClienteID   string              `json:"cliente" validate:"required,uuid4"`
	VendedorID  string              `json:"vendedor" validate:"required,uuid4"`
	Productos   []VentaLineaRequest `json:"productos" validate:"required,min=1,dive"`
	PagoInicial decimal.Decimal     `json:"pagoInicial"`
	FechaVenta  *time.Time          `json:"fechaVenta"`
	Notas       string              `json:"notas"`
}

// LoteUsado detalle de consumo real de lote devuelto al crear una venta.
type LoteUsado struct {
	ProductoID    string          `json:"productoId"`
	LoteID        string          `json:"loteId"`
	CantidadUsada decimal.Decimal `json:"cantidadUsada"`
}

// CrearVentaResponse respuesta de alta de venta. AdvertenciaDeuda no es un
// error: la venta se realiza aunque el cliente exceda el límite de deuda.
type CrearVentaResponse struct {
	Venta            *entity.Venta `json:"venta"`
	LotesUsados      []LoteUsado   `json:"lotesUsados"`
	AdvertenciaDeuda string        `json:"advertenciaDeuda,omitempty"`
}

// ActualizarVentaRequest actualización de venta. Las líneas (productos/lotes)
// son inmutables: cambiar cantidades exigiría rehacer la asignación de lotes.
type ActualizarVentaRequest struct {
	ClienteID   *string          `json:"cliente"`
	VendedorID  *string          `json:"vendedor"`
	PagoInicial *decimal.Decimal `json:"pagoInicial"`
	FechaVenta  *time.Time       `json:"fechaVenta"`
	Notas       *string          `json:"notas"`
}

// CrearPagoRequest aplicación de pago. Con Ventas explícitas el monto debe
// igualar la suma de sus saldos; sin ellas se reparte sobre todas las
// pendientes del cliente y no puede exceder la deuda total.
type CrearPagoRequest struct {
	ClienteID   string          `json:"cliente" validate:"required,uuid4"`
	MontoPagado decimal.Decimal `json:"montoPagado" validate:"required"`
	MetodoPago  string          `json:"metodoPago" validate:"required,oneof=efectivo transferencia"`
	FechaPago   *time.Time      `json:"fechaPago"`
	Ventas      []string        `json:"ventas" validate:"omitempty,dive,uuid4"`
	Notas       string          `json:"notas"`
}

// CrearPagoResponse respuesta de aplicación de pago.
type CrearPagoResponse struct {
	FechaPago      time.Time             `json:"fechaPago"`
	MontoPagado    decimal.Decimal       `json:"montoPagado"`
	SaldoRestante  decimal.Decimal       `json:"saldoRestante"`
	PagosAplicados []entity.PagoAplicado `json:"pagosAplicados"`
}

// VentaPendienteDTO venta con saldo, para consultas por cliente.
type VentaPendienteDTO struct {
	VentaID    string          `json:"ventaId"`
	FechaVenta time.Time       `json:"fechaVenta"`
	TotalVenta decimal.Decimal `json:"totalVenta"`
	SaldoVenta decimal.Decimal `json:"saldoVenta"`
}
