package dto

import "github.com/shopspring/decimal"

// RegisterRequest alta de usuario.
type RegisterRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Rol      string `json:"rol" validate:"required,oneof=admin vendedor produccion cliente"`
	Telefono string `json:"telefono"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido tras autenticar.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}

// ActualizarParametroRequest cambio de valor de un parámetro operativo.
type ActualizarParametroRequest struct {
	Valor decimal.Decimal `json:"valor" validate:"required"`
}
