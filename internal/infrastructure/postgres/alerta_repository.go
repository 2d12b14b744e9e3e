package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/scalimentos/inventario-api/internal/domain/entity"
	"github.com/scalimentos/inventario-api/internal/domain/repository"
)

var _ repository.AlertaRepository = (*AlertaRepo)(nil)

// AlertaRepo implementación de AlertaRepository sobre PostgreSQL.
type AlertaRepo struct {
	q Querier
}

// NewAlertaRepository construye el adaptador de alertas. Pasar pool o tx (Querier).
func NewAlertaRepository(q Querier) *AlertaRepo {
	return &AlertaRepo{q: q}
}

const columnasAlerta = `id, producto_id, lote_id, tipo_alerta, prioridad, descripcion, umbral_reabastecimiento, stock_actual, stock_minimo, stock_maximo, fecha_vencimiento, fecha_alerta, estado, created_at`

func escanearAlerta(row pgx.Row) (*entity.Alerta, error) {
	var a entity.Alerta
	var loteID sql.NullString
	var vencimiento sql.NullTime
	err := row.Scan(
		&a.ID, &a.ProductoID, &loteID, &a.TipoAlerta, &a.Prioridad, &a.Descripcion,
		&a.UmbralReabastecimiento, &a.StockActual, &a.StockMinimo, &a.StockMaximo,
		&vencimiento, &a.FechaAlerta, &a.Estado, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.LoteID = loteID.String
	a.FechaVencimiento = vencimiento.Time
	return &a, nil
}

// Crear persiste una alerta.
func (r *AlertaRepo) Crear(a *entity.Alerta) error {
	query := `
		INSERT INTO alertas (` + columnasAlerta + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	var loteID, vencimiento any
	if a.LoteID != "" {
		loteID = a.LoteID
	}
	if !a.FechaVencimiento.IsZero() {
		vencimiento = a.FechaVencimiento
	}
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.ProductoID, loteID, a.TipoAlerta, a.Prioridad, a.Descripcion,
		a.UmbralReabastecimiento, a.StockActual, a.StockMinimo, a.StockMaximo,
		vencimiento, a.FechaAlerta, a.Estado, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert alerta: %w", err)
	}
	return nil
}

// EliminarTodas descarta el conjunto completo de alertas.
func (r *AlertaRepo) EliminarTodas() error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM alertas`)
	if err != nil {
		return fmt.Errorf("delete alertas: %w", err)
	}
	return nil
}

// Listar devuelve las alertas vigentes, prioridad alta primero.
func (r *AlertaRepo) Listar() ([]*entity.Alerta, error) {
	query := `
		SELECT ` + columnasAlerta + `
		FROM alertas
		ORDER BY CASE prioridad WHEN 'alta' THEN 0 WHEN 'media' THEN 1 ELSE 2 END, fecha_alerta DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list alertas: %w", err)
	}
	defer rows.Close()

	var alertas []*entity.Alerta
	for rows.Next() {
		a, err := escanearAlerta(rows)
		if err != nil {
			return nil, fmt.Errorf("scan alerta: %w", err)
		}
		alertas = append(alertas, a)
	}
	return alertas, rows.Err()
}

// ObtenerPorID obtiene una alerta por ID.
func (r *AlertaRepo) ObtenerPorID(id string) (*entity.Alerta, error) {
	query := `SELECT ` + columnasAlerta + ` FROM alertas WHERE id = $1`
	a, err := escanearAlerta(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alerta: %w", err)
	}
	return a, nil
}

// ActualizarEstado cambia el estado de atención de una alerta.
func (r *AlertaRepo) ActualizarEstado(id, estado string) error {
	_, err := r.q.Exec(context.Background(), `UPDATE alertas SET estado = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado de alerta: %w", err)
	}
	return nil
}
