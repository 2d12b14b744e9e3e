package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/scalimentos/inventario-api/internal/domain"
	"github.com/scalimentos/inventario-api/internal/domain/entity"
	"github.com/scalimentos/inventario-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const columnasProducto = `id, nombre, descripcion, categoria_id, sku, precio_venta, costo, unidad_medida, dias_expiracion, created_at, updated_at`

func escanearProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.CategoriaID, &p.SKU,
		&p.PrecioVenta, &p.Costo, &p.UnidadMedida, &p.DiasExpiracion,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Crear persiste un nuevo producto.
func (r *ProductoRepo) Crear(p *entity.Producto) error {
	query := `
		INSERT INTO productos (` + columnasProducto + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.CategoriaID, p.SKU,
		p.PrecioVenta, p.Costo, p.UnidadMedida, p.DiasExpiracion,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// ObtenerPorID obtiene un producto por ID.
func (r *ProductoRepo) ObtenerPorID(id string) (*entity.Producto, error) {
	query := `SELECT ` + columnasProducto + ` FROM productos WHERE id = $1`
	p, err := escanearProducto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// ObtenerPorNombre obtiene un producto por nombre (único).
func (r *ProductoRepo) ObtenerPorNombre(nombre string) (*entity.Producto, error) {
	query := `SELECT ` + columnasProducto + ` FROM productos WHERE nombre = $1`
	p, err := escanearProducto(r.q.QueryRow(context.Background(), query, nombre))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto por nombre: %w", err)
	}
	return p, nil
}

// Listar lista productos con paginación.
func (r *ProductoRepo) Listar(limit, offset int) ([]*entity.Producto, error) {
	query := `SELECT ` + columnasProducto + ` FROM productos ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var productos []*entity.Producto
	for rows.Next() {
		p, err := escanearProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		productos = append(productos, p)
	}
	return productos, rows.Err()
}

// Actualizar actualiza un producto existente. El SKU no se modifica.
func (r *ProductoRepo) Actualizar(p *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $2, descripcion = $3, categoria_id = $4, precio_venta = $5,
		    costo = $6, unidad_medida = $7, dias_expiracion = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.CategoriaID, p.PrecioVenta,
		p.Costo, p.UnidadMedida, p.DiasExpiracion, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// Eliminar borra un producto por ID.
func (r *ProductoRepo) Eliminar(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}
