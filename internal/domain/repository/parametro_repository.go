package repository

import "github.com/scalimentos/inventario-api/internal/domain/entity"

// ParametroRepository define el puerto para los umbrales configurables.
// ObtenerPorNombre devuelve nil (sin error) si el parámetro no existe; es el
// caso de uso quien lo convierte en ErrParametroNoConfigurado.
type ParametroRepository interface {
	Crear(p *entity.Parametro) error
	ObtenerPorNombre(nombre string) (*entity.Parametro, error)
	ObtenerPorID(id string) (*entity.Parametro, error)
	Listar() ([]*entity.Parametro, error)
	Actualizar(p *entity.Parametro) error
}
