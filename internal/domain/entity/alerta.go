package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de alerta derivadas del estado de stock y lotes.
const (
	AlertaStockBajo   = "stock_bajo"
	AlertaVencimiento = "vencimiento"
	AlertaStockMaximo = "almacenamiento_maximo"
)

// Prioridades de alerta.
const (
	PrioridadBaja  = "baja"
	PrioridadMedia = "media"
	PrioridadAlta  = "alta"
)

// Estados de atención de una alerta.
const (
	AlertaPendiente = "pendiente"
	AlertaEnProceso = "en_proceso"
	AlertaResuelta  = "resuelto"
)

// Alerta es un aviso derivado (no editado a mano): cada regeneración descarta
// el conjunto anterior y lo vuelve a calcular desde stock, lotes y parámetros.
type Alerta struct {
	ID                     string
	ProductoID             string
	LoteID                 string // solo alertas de vencimiento
	TipoAlerta             string
	Prioridad              string
	Descripcion            string
	UmbralReabastecimiento decimal.Decimal
	StockActual            decimal.Decimal
	StockMinimo            decimal.Decimal
	StockMaximo            decimal.Decimal
	FechaVencimiento       time.Time
	FechaAlerta            time.Time
	Estado                 string
	CreatedAt              time.Time
}
