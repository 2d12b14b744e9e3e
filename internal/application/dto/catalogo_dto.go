package dto

import "github.com/shopspring/decimal"

// CrearProductoRequest alta de producto. El SKU se genera, no se envía.
type CrearProductoRequest struct {
	Nombre         string          `json:"nombre" validate:"required,min=2"`
	Descripcion    string          `json:"descripcion"`
	CategoriaID    string          `json:"categoriaId" validate:"required,uuid4"`
	PrecioVenta    decimal.Decimal `json:"precioVenta" validate:"required"`
	Costo          decimal.Decimal `json:"costo" validate:"required"`
	UnidadMedida   string          `json:"unidadMedida" validate:"required"`
	DiasExpiracion int             `json:"diasExpiracion" validate:"required,gt=0"`
}

// ActualizarProductoRequest actualización explícita de producto (campos opcionales).
type ActualizarProductoRequest struct {
	Nombre         *string          `json:"nombre"`
	Descripcion    *string          `json:"descripcion"`
	CategoriaID    *string          `json:"categoriaId"`
	PrecioVenta    *decimal.Decimal `json:"precioVenta"`
	Costo          *decimal.Decimal `json:"costo"`
	UnidadMedida   *string          `json:"unidadMedida"`
	DiasExpiracion *int             `json:"diasExpiracion"`
}

// CrearCategoriaRequest alta de categoría.
type CrearCategoriaRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=2"`
	Descripcion string `json:"descripcion"`
}
