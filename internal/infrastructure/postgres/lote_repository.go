package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/scalimentos/inventario-api/internal/domain"
	"github.com/scalimentos/inventario-api/internal/domain/entity"
	"github.com/scalimentos/inventario-api/internal/domain/repository"
)

var _ repository.LoteRepository = (*LoteRepo)(nil)

// LoteRepo implementación de LoteRepository sobre PostgreSQL.
type LoteRepo struct {
	q Querier
}

// NewLoteRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewLoteRepository(q Querier) *LoteRepo {
	return &LoteRepo{q: q}
}

const columnasLote = `id, producto_id, fecha_produccion, cantidad_producida, cantidad_vendida, cantidad_disponible, fecha_vencimiento, costo_lote, ubicacion_lote, codigo_lote, estado, created_at, updated_at`

func escanearLote(row pgx.Row) (*entity.LoteProduccion, error) {
	var l entity.LoteProduccion
	err := row.Scan(
		&l.ID, &l.ProductoID, &l.FechaProduccion, &l.CantidadProducida,
		&l.CantidadVendida, &l.CantidadDisponible, &l.FechaVencimiento,
		&l.CostoLote, &l.UbicacionLote, &l.CodigoLote, &l.Estado,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Crear persiste un lote de producción.
func (r *LoteRepo) Crear(l *entity.LoteProduccion) error {
	query := `
		INSERT INTO lotes_produccion (` + columnasLote + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.ProductoID, l.FechaProduccion, l.CantidadProducida,
		l.CantidadVendida, l.CantidadDisponible, l.FechaVencimiento,
		l.CostoLote, l.UbicacionLote, l.CodigoLote, l.Estado,
		l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert lote: %w", err)
	}
	return nil
}

// ObtenerPorID obtiene un lote por ID.
func (r *LoteRepo) ObtenerPorID(id string) (*entity.LoteProduccion, error) {
	query := `SELECT ` + columnasLote + ` FROM lotes_produccion WHERE id = $1`
	l, err := escanearLote(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote: %w", err)
	}
	return l, nil
}

// ObtenerPorIDForUpdate obtiene un lote bloqueando la fila (SELECT FOR UPDATE).
func (r *LoteRepo) ObtenerPorIDForUpdate(id string) (*entity.LoteProduccion, error) {
	query := `SELECT ` + columnasLote + ` FROM lotes_produccion WHERE id = $1 FOR UPDATE`
	l, err := escanearLote(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote for update: %w", err)
	}
	return l, nil
}

// Actualizar persiste los campos mutables del lote.
func (r *LoteRepo) Actualizar(l *entity.LoteProduccion) error {
	query := `
		UPDATE lotes_produccion
		SET cantidad_producida = $2, cantidad_vendida = $3, cantidad_disponible = $4,
		    fecha_vencimiento = $5, ubicacion_lote = $6, estado = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.CantidadProducida, l.CantidadVendida, l.CantidadDisponible,
		l.FechaVencimiento, l.UbicacionLote, l.Estado, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lote: %w", err)
	}
	return nil
}

// Eliminar borra un lote por ID.
func (r *LoteRepo) Eliminar(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM lotes_produccion WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lote: %w", err)
	}
	return nil
}

// Listar lista lotes con paginación, los más recientes primero.
func (r *LoteRepo) Listar(limit, offset int) ([]*entity.LoteProduccion, error) {
	query := `SELECT ` + columnasLote + ` FROM lotes_produccion ORDER BY fecha_produccion DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lotes: %w", err)
	}
	defer rows.Close()
	return escanearLotes(rows)
}

// ListarPorProducto devuelve los lotes de un producto, el más antiguo primero
// (orden de consumo FIFO).
func (r *LoteRepo) ListarPorProducto(productoID string) ([]*entity.LoteProduccion, error) {
	query := `SELECT ` + columnasLote + ` FROM lotes_produccion WHERE producto_id = $1 ORDER BY fecha_produccion ASC`
	rows, err := r.q.Query(context.Background(), query, productoID)
	if err != nil {
		return nil, fmt.Errorf("list lotes por producto: %w", err)
	}
	defer rows.Close()
	return escanearLotes(rows)
}

func escanearLotes(rows pgx.Rows) ([]*entity.LoteProduccion, error) {
	var lotes []*entity.LoteProduccion
	for rows.Next() {
		l, err := escanearLote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lote: %w", err)
		}
		lotes = append(lotes, l)
	}
	return lotes, rows.Err()
}

// ListarProximosAVencer devuelve lotes disponibles con vencimiento en [desde, hasta].
func (r *LoteRepo) ListarProximosAVencer(desde, hasta time.Time) ([]*repository.LoteConProducto, error) {
	query := `
		SELECT l.id, l.producto_id, l.fecha_produccion, l.cantidad_producida, l.cantidad_vendida,
		       l.cantidad_disponible, l.fecha_vencimiento, l.costo_lote, l.ubicacion_lote,
		       l.codigo_lote, l.estado, l.created_at, l.updated_at, p.nombre
		FROM lotes_produccion l
		JOIN productos p ON p.id = l.producto_id
		WHERE l.estado = $1 AND l.fecha_vencimiento BETWEEN $2 AND $3
		ORDER BY l.fecha_vencimiento ASC`
	rows, err := r.q.Query(context.Background(), query, entity.LoteDisponible, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("list lotes proximos a vencer: %w", err)
	}
	defer rows.Close()

	var lotes []*repository.LoteConProducto
	for rows.Next() {
		var lp repository.LoteConProducto
		err := rows.Scan(
			&lp.ID, &lp.ProductoID, &lp.FechaProduccion, &lp.CantidadProducida,
			&lp.CantidadVendida, &lp.CantidadDisponible, &lp.FechaVencimiento,
			&lp.CostoLote, &lp.UbicacionLote, &lp.CodigoLote, &lp.Estado,
			&lp.CreatedAt, &lp.UpdatedAt, &lp.NombreProducto,
		)
		if err != nil {
			return nil, fmt.Errorf("scan lote con producto: %w", err)
		}
		lotes = append(lotes, &lp)
	}
	return lotes, rows.Err()
}

// ExistePorProducto indica si el producto tiene lotes.
func (r *LoteRepo) ExistePorProducto(productoID string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM lotes_produccion WHERE producto_id = $1)`, productoID,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe lote por producto: %w", err)
	}
	return existe, nil
}
