package repository

import "github.com/shopspring/decimal"

// Agrupaciones de las series históricas.
const (
	AgrupacionDia = "dia"
	AgrupacionMes = "mes"
)

// PuntoSerie es un punto de una serie temporal agregada, en orden ascendente
// de periodo. Lo consume el colaborador de pronósticos.
type PuntoSerie struct {
	Periodo string
	Total   decimal.Decimal
}

// ReporteRepository expone las agregaciones históricas de solo lectura.
type ReporteRepository interface {
	// VentasHistoricas: total vendido del producto por periodo (día o mes).
	VentasHistoricas(productoID, agrupacion string) ([]PuntoSerie, error)
	// ProduccionHistorica: cantidad producida del producto por periodo.
	ProduccionHistorica(productoID, agrupacion string) ([]PuntoSerie, error)
}
