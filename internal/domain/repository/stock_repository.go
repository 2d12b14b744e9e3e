package repository

import "github.com/scalimentos/inventario-api/internal/domain/entity"

// StockRepository define el puerto para el registro 1:1 de existencias.
// RecomputarDisponible es la llamada explícita que mantiene el invariante
// stockDisponible == Σ cantidadDisponible de los lotes "disponible"; los casos
// de uso la invocan tras cada mutación de lote.
type StockRepository interface {
	Crear(s *entity.Stock) error
	ObtenerPorProducto(productoID string) (*entity.Stock, error)
	// ObtenerPorProductoForUpdate bloquea la fila (SELECT FOR UPDATE).
	ObtenerPorProductoForUpdate(productoID string) (*entity.Stock, error)
	Actualizar(s *entity.Stock) error
	RecomputarDisponible(productoID string) error
	Listar() ([]*StockConProducto, error)
	EliminarPorProducto(productoID string) error
}

// StockConProducto acompaña el stock con el nombre del producto para alertas y listados.
type StockConProducto struct {
	entity.Stock
	NombreProducto string
}
