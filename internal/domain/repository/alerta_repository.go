package repository

import "github.com/scalimentos/inventario-api/internal/domain/entity"

// AlertaRepository define el puerto para el conjunto regenerable de alertas.
type AlertaRepository interface {
	Crear(a *entity.Alerta) error
	EliminarTodas() error
	Listar() ([]*entity.Alerta, error)
	ObtenerPorID(id string) (*entity.Alerta, error)
	ActualizarEstado(id, estado string) error
}
