package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock es el registro 1:1 de existencias de un producto.
// StockActual es un contador simple movido por los movimientos de inventario;
// StockDisponible es la cifra derivada de los lotes en estado "disponible"
// (Σ cantidadDisponible) y se recalcula tras cada mutación de lote.
// Ambas cifras son independientes a propósito y se verifican por separado.
type Stock struct {
	ID              string
	ProductoID      string
	StockActual     decimal.Decimal
	StockReservado  decimal.Decimal
	StockMinimo     decimal.Decimal
	StockMaximo     decimal.Decimal
	StockDisponible decimal.Decimal
	UpdatedAt       time.Time
}
