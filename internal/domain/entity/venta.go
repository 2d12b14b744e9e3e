package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta. "completada" si y solo si el saldo es cero.
const (
	VentaPendiente  = "pendiente"
	VentaCompletada = "completada"
	VentaCancelada  = "cancelada"
)

// AsignacionLote indica cuánto se consumió de un lote para una línea de venta.
type AsignacionLote struct {
	LoteID   string          `json:"loteId"`
	Cantidad decimal.Decimal `json:"cantidad"`
}

// VentaProducto es una línea de venta. La suma de las cantidades de Lotes
// iguala Cantidad una vez asignados los lotes (FIFO por fecha de producción).
type VentaProducto struct {
	ProductoID     string           `json:"productoId"`
	Cantidad       decimal.Decimal  `json:"cantidad"`
	PrecioUnitario decimal.Decimal  `json:"precioUnitario"`
	Lotes          []AsignacionLote `json:"lotes"`
}

// Venta registra una operación de venta con sus líneas y asignaciones de lote.
// Invariante: SaldoVenta == TotalVenta - PagoInicial - Σ pagos aplicados.
type Venta struct {
	ID          string
	ClienteID   string
	VendedorID  string
	Productos   []VentaProducto
	TotalVenta  decimal.Decimal
	PagoInicial decimal.Decimal
	SaldoVenta  decimal.Decimal
	FechaVenta  time.Time
	Estado      string
	Notas       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RecalcularEstado sincroniza el estado con el saldo. No toca ventas canceladas.
func (v *Venta) RecalcularEstado() {
	if v.Estado == VentaCancelada {
		return
	}
	if v.SaldoVenta.IsZero() {
		v.Estado = VentaCompletada
	} else {
		v.Estado = VentaPendiente
	}
}
