package repository

import (
	"time"

	"github.com/scalimentos/inventario-api/internal/domain/entity"
)

// LoteRepository define el puerto de persistencia para LoteProduccion.
// Los métodos ForUpdate bloquean la fila (SELECT FOR UPDATE) y solo tienen
// sentido dentro de una transacción.
type LoteRepository interface {
	Crear(l *entity.LoteProduccion) error
	ObtenerPorID(id string) (*entity.LoteProduccion, error)
	ObtenerPorIDForUpdate(id string) (*entity.LoteProduccion, error)
	Actualizar(l *entity.LoteProduccion) error
	Eliminar(id string) error
	Listar(limit, offset int) ([]*entity.LoteProduccion, error)
	ListarPorProducto(productoID string) ([]*entity.LoteProduccion, error)
	// ListarProximosAVencer devuelve lotes disponibles con vencimiento en [desde, hasta].
	ListarProximosAVencer(desde, hasta time.Time) ([]*LoteConProducto, error)
	ExistePorProducto(productoID string) (bool, error)
}

// LoteConProducto acompaña el lote con el nombre del producto para alertas y listados.
type LoteConProducto struct {
	entity.LoteProduccion
	NombreProducto string
}
