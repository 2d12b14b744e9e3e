package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/scalimentos/inventario-api/internal/domain"
	"github.com/scalimentos/inventario-api/internal/domain/entity"
	"github.com/scalimentos/inventario-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación de MovimientoRepository sobre PostgreSQL.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

const columnasMovimiento = `id, movimiento_id, producto_id, lote_id, tipo_movimiento, razon, cantidad, fecha_movimiento, costo_movimiento, usuario_id, origen_destino, created_at`

func escanearMovimiento(row pgx.Row) (*entity.MovimientoInventario, error) {
	var m entity.MovimientoInventario
	var loteID sql.NullString
	err := row.Scan(
		&m.ID, &m.MovimientoID, &m.ProductoID, &loteID, &m.TipoMovimiento,
		&m.Razon, &m.Cantidad, &m.FechaMovimiento, &m.CostoMovimiento,
		&m.UsuarioID, &m.OrigenDestino, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.LoteID = loteID.String
	return &m, nil
}

// Crear persiste un movimiento. LoteID vacío se guarda como NULL.
func (r *MovimientoRepo) Crear(m *entity.MovimientoInventario) error {
	query := `
		INSERT INTO movimientos_inventario (` + columnasMovimiento + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	var loteID any
	if m.LoteID != "" {
		loteID = m.LoteID
	}
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.MovimientoID, m.ProductoID, loteID, m.TipoMovimiento,
		m.Razon, m.Cantidad, m.FechaMovimiento, m.CostoMovimiento,
		m.UsuarioID, m.OrigenDestino, m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// ObtenerPorID obtiene un movimiento por ID.
func (r *MovimientoRepo) ObtenerPorID(id string) (*entity.MovimientoInventario, error) {
	query := `SELECT ` + columnasMovimiento + ` FROM movimientos_inventario WHERE id = $1`
	m, err := escanearMovimiento(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return m, nil
}

// Listar lista movimientos con filtro opcional de fechas, los más recientes primero.
func (r *MovimientoRepo) Listar(desde, hasta *time.Time, limit, offset int) ([]*entity.MovimientoInventario, error) {
	query := `SELECT ` + columnasMovimiento + ` FROM movimientos_inventario WHERE 1=1`
	args := []any{}
	n := 0
	if desde != nil {
		n++
		query += fmt.Sprintf(" AND fecha_movimiento >= $%d", n)
		args = append(args, *desde)
	}
	if hasta != nil {
		n++
		query += fmt.Sprintf(" AND fecha_movimiento <= $%d", n)
		args = append(args, *hasta)
	}
	query += fmt.Sprintf(" ORDER BY fecha_movimiento DESC LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	return escanearMovimientos(rows)
}

// ListarPorProducto devuelve el historial de movimientos de un producto.
func (r *MovimientoRepo) ListarPorProducto(productoID string, limit, offset int) ([]*entity.MovimientoInventario, error) {
	query := `
		SELECT ` + columnasMovimiento + `
		FROM movimientos_inventario
		WHERE producto_id = $1
		ORDER BY fecha_movimiento DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productoID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimientos por producto: %w", err)
	}
	defer rows.Close()
	return escanearMovimientos(rows)
}

func escanearMovimientos(rows pgx.Rows) ([]*entity.MovimientoInventario, error) {
	var movimientos []*entity.MovimientoInventario
	for rows.Next() {
		m, err := escanearMovimiento(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		movimientos = append(movimientos, m)
	}
	return movimientos, rows.Err()
}

// Actualizar persiste los metadatos corregibles de un movimiento.
func (r *MovimientoRepo) Actualizar(m *entity.MovimientoInventario) error {
	query := `UPDATE movimientos_inventario SET razon = $2, origen_destino = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, m.ID, m.Razon, m.OrigenDestino)
	if err != nil {
		return fmt.Errorf("update movimiento: %w", err)
	}
	return nil
}

// Eliminar borra un movimiento por ID.
func (r *MovimientoRepo) Eliminar(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movimientos_inventario WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movimiento: %w", err)
	}
	return nil
}

// ExisteConsumoPorLote indica si el lote tiene movimientos más allá de su
// entrada de producción.
func (r *MovimientoRepo) ExisteConsumoPorLote(loteID string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(), `
		SELECT EXISTS(
			SELECT 1 FROM movimientos_inventario
			WHERE lote_id = $1 AND NOT (tipo_movimiento = $2 AND razon = $3)
		)`, loteID, entity.MovimientoEntrada, entity.RazonProduccion,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe consumo por lote: %w", err)
	}
	return existe, nil
}

// ExistePorProducto indica si el producto tiene movimientos.
func (r *MovimientoRepo) ExistePorProducto(productoID string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM movimientos_inventario WHERE producto_id = $1)`, productoID,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe movimiento por producto: %w", err)
	}
	return existe, nil
}

// ExisteVentaPorProductos indica si hay movimientos con razón VENTA para
// alguno de los productos dados.
func (r *MovimientoRepo) ExisteVentaPorProductos(productoIDs []string) (bool, error) {
	if len(productoIDs) == 0 {
		return false, nil
	}
	var existe bool
	err := r.q.QueryRow(context.Background(), `
		SELECT EXISTS(
			SELECT 1 FROM movimientos_inventario
			WHERE razon = $1 AND producto_id = ANY($2)
		)`, entity.RazonVenta, productoIDs,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe movimiento de venta: %w", err)
	}
	return existe, nil
}
