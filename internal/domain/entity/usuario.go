package entity

import "time"

// Roles de usuario.
const (
	RolAdmin      = "admin"
	RolVendedor   = "vendedor"
	RolProduccion = "produccion"
	RolCliente    = "cliente"
)

// Usuario modela tanto al personal (vendedor, producción, admin) como a los
// clientes referenciados por ventas y pagos.
type Usuario struct {
	ID           string
	Nombre       string
	Email        string // único
	PasswordHash string `json:"-"`
	Rol          string
	Telefono     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
