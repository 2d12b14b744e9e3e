package entity

import (
	"time"

	"github.com/scalimentos/inventario-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Estados de un lote de producción.
// "agotado" se alcanza automáticamente cuando la cantidad disponible llega a cero;
// el resto son transiciones administrativas explícitas y no revierten solas.
const (
	LoteDisponible = "disponible"
	LoteDanado     = "dañado"
	LoteExpirado   = "expirado"
	LoteAgotado    = "agotado"
	LoteMalEmpaque = "mal_empaque"
)

// LoteProduccion es un lote fechado de unidades producidas de un producto,
// que se agota por ventas y salidas de inventario.
// Invariante: CantidadDisponible == CantidadProducida - CantidadVendida.
type LoteProduccion struct {
	ID                 string
	ProductoID         string
	FechaProduccion    time.Time
	CantidadProducida  decimal.Decimal
	CantidadVendida    decimal.Decimal
	CantidadDisponible decimal.Decimal
	FechaVencimiento   time.Time
	CostoLote          decimal.Decimal // snapshot: producida × costo unitario del producto
	UbicacionLote      string
	CodigoLote         string // único, secuencial: LOTE-NNNNNN
	Estado             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Recalcular restablece la cantidad disponible a partir de producida y vendida,
// y marca el lote como agotado si llega a cero. No revierte estados terminales.
func (l *LoteProduccion) Recalcular() {
	l.CantidadDisponible = l.CantidadProducida.Sub(l.CantidadVendida)
	if l.CantidadDisponible.LessThanOrEqual(decimal.Zero) && l.Estado == LoteDisponible {
		l.Estado = LoteAgotado
	}
}

// Consumir descuenta cantidad del lote (venta o salida). Falla si la cantidad
// excede la disponible; el chequeo usa el estado actual del lote en memoria.
func (l *LoteProduccion) Consumir(cantidad decimal.Decimal) error {
	if cantidad.GreaterThan(l.CantidadDisponible) {
		return domain.ErrCantidadLoteInsuficiente
	}
	l.CantidadVendida = l.CantidadVendida.Add(cantidad)
	l.Recalcular()
	return nil
}
