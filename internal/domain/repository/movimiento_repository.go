package repository

import (
	"time"

	"github.com/scalimentos/inventario-api/internal/domain/entity"
)

// MovimientoRepository define el puerto para el registro append-only de
// movimientos de inventario.
type MovimientoRepository interface {
	Crear(m *entity.MovimientoInventario) error
	ObtenerPorID(id string) (*entity.MovimientoInventario, error)
	Listar(desde, hasta *time.Time, limit, offset int) ([]*entity.MovimientoInventario, error)
	ListarPorProducto(productoID string, limit, offset int) ([]*entity.MovimientoInventario, error)
	Actualizar(m *entity.MovimientoInventario) error
	Eliminar(id string) error
	// ExisteConsumoPorLote indica si el lote tiene movimientos más allá de su
	// entrada de producción (salidas o ajustes): bloquea su borrado.
	ExisteConsumoPorLote(loteID string) (bool, error)
	ExistePorProducto(productoID string) (bool, error)
	// ExisteVentaPorProductos indica si hay movimientos con razón VENTA para
	// alguno de los productos dados (chequeo de borrado de ventas).
	ExisteVentaPorProductos(productoIDs []string) (bool, error)
}
