package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovimientoEntrada = "ENTRADA"
	MovimientoSalida  = "SALIDA"
	MovimientoAjuste  = "AJUSTE" // cantidad con signo: incremento o decremento
)

// Razones de movimiento generadas por el propio sistema.
const (
	RazonVenta      = "VENTA"
	RazonProduccion = "PRODUCTOS FABRICADOS"
)

// MovimientoInventario es el registro auditable de un evento que afecta stock.
// Append-only: una vez creado solo los endpoints de corrección lo tocan.
type MovimientoInventario struct {
	ID              string
	MovimientoID    string // único, secuencial: MOV-NNNNNN
	ProductoID      string
	LoteID          string // vacío si el movimiento no referencia lote
	TipoMovimiento  string
	Razon           string
	Cantidad        decimal.Decimal
	FechaMovimiento time.Time
	CostoMovimiento decimal.Decimal
	UsuarioID       string
	OrigenDestino   string
	CreatedAt       time.Time
}
