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

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const columnasStock = `id, producto_id, stock_actual, stock_reservado, stock_minimo, stock_maximo, stock_disponible, updated_at`

func escanearStock(row pgx.Row) (*entity.Stock, error) {
	var s entity.Stock
	err := row.Scan(
		&s.ID, &s.ProductoID, &s.StockActual, &s.StockReservado,
		&s.StockMinimo, &s.StockMaximo, &s.StockDisponible, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Crear persiste el registro de stock de un producto.
func (r *StockRepo) Crear(s *entity.Stock) error {
	query := `
		INSERT INTO stocks (` + columnasStock + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.ProductoID, s.StockActual, s.StockReservado,
		s.StockMinimo, s.StockMaximo, s.StockDisponible, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// ObtenerPorProducto obtiene el stock de un producto.
func (r *StockRepo) ObtenerPorProducto(productoID string) (*entity.Stock, error) {
	query := `SELECT ` + columnasStock + ` FROM stocks WHERE producto_id = $1`
	s, err := escanearStock(r.q.QueryRow(context.Background(), query, productoID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return s, nil
}

// ObtenerPorProductoForUpdate obtiene el stock bloqueando la fila (SELECT FOR UPDATE).
func (r *StockRepo) ObtenerPorProductoForUpdate(productoID string) (*entity.Stock, error) {
	query := `SELECT ` + columnasStock + ` FROM stocks WHERE producto_id = $1 FOR UPDATE`
	s, err := escanearStock(r.q.QueryRow(context.Background(), query, productoID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return s, nil
}

// Actualizar persiste contadores y umbrales del stock.
func (r *StockRepo) Actualizar(s *entity.Stock) error {
	query := `
		UPDATE stocks
		SET stock_actual = $2, stock_reservado = $3, stock_minimo = $4,
		    stock_maximo = $5, updated_at = $6
		WHERE producto_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ProductoID, s.StockActual, s.StockReservado, s.StockMinimo, s.StockMaximo, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// RecomputarDisponible recalcula stock_disponible desde los lotes disponibles
// del producto (Σ cantidad_disponible). Se invoca tras cada mutación de lote.
func (r *StockRepo) RecomputarDisponible(productoID string) error {
	query := `
		UPDATE stocks
		SET stock_disponible = COALESCE((
			SELECT SUM(l.cantidad_disponible)
			FROM lotes_produccion l
			WHERE l.producto_id = $1 AND l.estado = $2
		), 0), updated_at = now()
		WHERE producto_id = $1`
	_, err := r.q.Exec(context.Background(), query, productoID, entity.LoteDisponible)
	if err != nil {
		return fmt.Errorf("recomputar stock disponible: %w", err)
	}
	return nil
}

// Listar devuelve el stock de todos los productos con su nombre.
func (r *StockRepo) Listar() ([]*repository.StockConProducto, error) {
	query := `
		SELECT s.id, s.producto_id, s.stock_actual, s.stock_reservado, s.stock_minimo,
		       s.stock_maximo, s.stock_disponible, s.updated_at, p.nombre
		FROM stocks s
		JOIN productos p ON p.id = s.producto_id
		ORDER BY p.nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	defer rows.Close()

	var stocks []*repository.StockConProducto
	for rows.Next() {
		var sp repository.StockConProducto
		err := rows.Scan(
			&sp.ID, &sp.ProductoID, &sp.StockActual, &sp.StockReservado,
			&sp.StockMinimo, &sp.StockMaximo, &sp.StockDisponible, &sp.UpdatedAt,
			&sp.NombreProducto,
		)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		stocks = append(stocks, &sp)
	}
	return stocks, rows.Err()
}

// EliminarPorProducto borra el registro de stock de un producto.
func (r *StockRepo) EliminarPorProducto(productoID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stocks WHERE producto_id = $1`, productoID)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}
