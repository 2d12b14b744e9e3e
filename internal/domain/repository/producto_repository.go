package repository

import "github.com/scalimentos/inventario-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto.
type ProductoRepository interface {
	Crear(p *entity.Producto) error
	ObtenerPorID(id string) (*entity.Producto, error)
	ObtenerPorNombre(nombre string) (*entity.Producto, error)
	Listar(limit, offset int) ([]*entity.Producto, error)
	Actualizar(p *entity.Producto) error
	Eliminar(id string) error
}

// CategoriaRepository define el puerto de persistencia para Categoria.
type CategoriaRepository interface {
	Crear(c *entity.Categoria) error
	ObtenerPorID(id string) (*entity.Categoria, error)
	Listar() ([]*entity.Categoria, error)
	Eliminar(id string) error
}
