package repository

import "github.com/scalimentos/inventario-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario.
type UsuarioRepository interface {
	Crear(u *entity.Usuario) error
	ObtenerPorID(id string) (*entity.Usuario, error)
	ObtenerPorEmail(email string) (*entity.Usuario, error)
	Listar(limit, offset int) ([]*entity.Usuario, error)
}
