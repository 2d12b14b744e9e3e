package repository

import "github.com/scalimentos/inventario-api/internal/domain/entity"

// VentaRepository define el puerto de persistencia para Venta.
type VentaRepository interface {
	Crear(v *entity.Venta) error
	ObtenerPorID(id string) (*entity.Venta, error)
	Listar(limit, offset int) ([]*entity.Venta, error)
	Actualizar(v *entity.Venta) error
	Eliminar(id string) error
	// ListarPendientesPorCliente devuelve las ventas con saldo > 0 del cliente,
	// ordenadas por fecha de venta ascendente (la más antigua primero).
	ListarPendientesPorCliente(clienteID string) ([]*entity.Venta, error)
	// ListarPendientesPorIDs devuelve, de los IDs dados, las ventas con
	// saldo > 0 ordenadas por fecha de venta ascendente.
	ListarPendientesPorIDs(ids []string) ([]*entity.Venta, error)
	ExisteConLote(loteID string) (bool, error)
	ExisteConProducto(productoID string) (bool, error)
}

// PagoRepository define el puerto de persistencia para Pago.
type PagoRepository interface {
	Crear(p *entity.Pago) error
	ListarPorCliente(clienteID string) ([]*entity.Pago, error)
}
