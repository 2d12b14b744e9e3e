package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto empaquetado del catálogo.
// PrecioVenta y Costo son montos unitarios; DiasExpiracion define el horizonte
// de vencimiento de cada lote producido (fechaProduccion + DiasExpiracion).
type Producto struct {
	ID             string
	Nombre         string // único
	Descripcion    string
	CategoriaID    string
	SKU            string // único, generado: SC-<NOMBRE>-NNN
	PrecioVenta    decimal.Decimal
	Costo          decimal.Decimal
	UnidadMedida   string // unidades, litros, kilogramos...
	DiasExpiracion int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Categoria agrupa productos del catálogo.
type Categoria struct {
	ID          string
	Nombre      string
	Descripcion string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
