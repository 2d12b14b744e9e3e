// Package catalogo gestiona productos y categorías. El SKU se genera de forma
// secuencial y el alta de producto crea su registro de stock 1:1 en la misma
// transacción.
package catalogo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/scalimentos/inventario-api/internal/application/dto"
	"github.com/scalimentos/inventario-api/internal/domain"
	"github.com/scalimentos/inventario-api/internal/domain/codigo"
	"github.com/scalimentos/inventario-api/internal/domain/entity"
	"github.com/scalimentos/inventario-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ProductoUseCase operaciones de catálogo de productos.
type ProductoUseCase struct {
	tx         repository.TxRunner
	productos  repository.ProductoRepository
	categorias repository.CategoriaRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(tx repository.TxRunner, productos repository.ProductoRepository, categorias repository.CategoriaRepository) *ProductoUseCase {
	return &ProductoUseCase{tx: tx, productos: productos, categorias: categorias}
}

// Crear da de alta un producto con SKU generado y su fila de stock en cero.
func (uc *ProductoUseCase) Crear(ctx context.Context, in dto.CrearProductoRequest) (*entity.Producto, error) {
	if !in.PrecioVenta.GreaterThan(decimal.Zero) || !in.Costo.GreaterThan(decimal.Zero) {
		return nil, domain.ErrEntradaInvalida
	}
	cat, err := uc.categorias.ObtenerPorID(in.CategoriaID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNoEncontrado
	}
	if existente, err := uc.productos.ObtenerPorNombre(in.Nombre); err != nil {
		return nil, err
	} else if existente != nil {
		return nil, domain.ErrDuplicado
	}

	now := time.Now()
	p := &entity.Producto{
		ID:             uuid.New().String(),
		Nombre:         in.Nombre,
		Descripcion:    in.Descripcion,
		CategoriaID:    in.CategoriaID,
		PrecioVenta:    in.PrecioVenta,
		Costo:          in.Costo,
		UnidadMedida:   in.UnidadMedida,
		DiasExpiracion: in.DiasExpiracion,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = uc.tx.Run(ctx, func(r *repository.Repos) error {
		n, err := r.Secuencias.Siguiente(codigo.SecuenciaProductos)
		if err != nil {
			return err
		}
		p.SKU = codigo.SKU(p.Nombre, n)
		if err := r.Productos.Crear(p); err != nil {
			return err
		}
		return r.Stocks.Crear(&entity.Stock{
			ID:         uuid.New().String(),
			ProductoID: p.ID,
			UpdatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ObtenerPorID devuelve un producto.
func (uc *ProductoUseCase) ObtenerPorID(ctx context.Context, id string) (*entity.Producto, error) {
	p, err := uc.productos.ObtenerPorID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNoEncontrado
	}
	return p, nil
}

// Listar devuelve productos paginados.
func (uc *ProductoUseCase) Listar(ctx context.Context, limit, offset int) ([]*entity.Producto, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return uc.productos.Listar(limit, offset)
}

// Actualizar modifica los campos enviados del producto.
func (uc *ProductoUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarProductoRequest) (*entity.Producto, error) {
	p, err := uc.productos.ObtenerPorID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNoEncontrado
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.CategoriaID != nil {
		cat, err := uc.categorias.ObtenerPorID(*in.CategoriaID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.ErrNoEncontrado
		}
		p.CategoriaID = *in.CategoriaID
	}
	if in.PrecioVenta != nil {
		if !in.PrecioVenta.GreaterThan(decimal.Zero) {
			return nil, domain.ErrEntradaInvalida
		}
		p.PrecioVenta = *in.PrecioVenta
	}
	if in.Costo != nil {
		if !in.Costo.GreaterThan(decimal.Zero) {
			return nil, domain.ErrEntradaInvalida
		}
		p.Costo = *in.Costo
	}
	if in.UnidadMedida != nil {
		p.UnidadMedida = *in.UnidadMedida
	}
	if in.DiasExpiracion != nil {
		if *in.DiasExpiracion <= 0 {
			return nil, domain.ErrEntradaInvalida
		}
		p.DiasExpiracion = *in.DiasExpiracion
	}
	p.UpdatedAt = time.Now()
	if err := uc.productos.Actualizar(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Eliminar borra un producto solo si ningún lote, movimiento ni venta lo
// referencia; elimina también su fila de stock.
func (uc *ProductoUseCase) Eliminar(ctx context.Context, id string) error {
	p, err := uc.productos.ObtenerPorID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNoEncontrado
	}
	return uc.tx.Run(ctx, func(r *repository.Repos) error {
		if en, err := r.Lotes.ExistePorProducto(id); err != nil {
			return err
		} else if en {
			return domain.ErrProductoEnUso
		}
		if en, err := r.Movimientos.ExistePorProducto(id); err != nil {
			return err
		} else if en {
			return domain.ErrProductoEnUso
		}
		if en, err := r.Ventas.ExisteConProducto(id); err != nil {
			return err
		} else if en {
			return domain.ErrProductoEnUso
		}
		if err := r.Stocks.EliminarPorProducto(id); err != nil {
			return err
		}
		return r.Productos.Eliminar(id)
	})
}
