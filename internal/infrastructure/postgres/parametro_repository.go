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

var _ repository.ParametroRepository = (*ParametroRepo)(nil)

// ParametroRepo implementación de ParametroRepository sobre PostgreSQL.
type ParametroRepo struct {
	q Querier
}

// NewParametroRepository construye el adaptador de parámetros. Pasar pool o tx (Querier).
func NewParametroRepository(q Querier) *ParametroRepo {
	return &ParametroRepo{q: q}
}

const columnasParametro = `id, nombre, valor, descripcion, actualizado_por, fecha_actualizacion, created_at`

func escanearParametro(row pgx.Row) (*entity.Parametro, error) {
	var p entity.Parametro
	err := row.Scan(
		&p.ID, &p.Nombre, &p.Valor, &p.Descripcion,
		&p.ActualizadoPor, &p.FechaActualizacion, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Crear persiste un parámetro.
func (r *ParametroRepo) Crear(p *entity.Parametro) error {
	query := `
		INSERT INTO parametros (` + columnasParametro + `)
		VALUES ($1, $2, $3, $4, $5, $6, now())`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Valor, p.Descripcion, p.ActualizadoPor, p.FechaActualizacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert parametro: %w", err)
	}
	return nil
}

// ObtenerPorNombre obtiene un parámetro por nombre. Devuelve nil si no existe.
func (r *ParametroRepo) ObtenerPorNombre(nombre string) (*entity.Parametro, error) {
	query := `SELECT ` + columnasParametro + ` FROM parametros WHERE nombre = $1`
	p, err := escanearParametro(r.q.QueryRow(context.Background(), query, nombre))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get parametro por nombre: %w", err)
	}
	return p, nil
}

// ObtenerPorID obtiene un parámetro por ID. Devuelve nil si no existe.
func (r *ParametroRepo) ObtenerPorID(id string) (*entity.Parametro, error) {
	query := `SELECT ` + columnasParametro + ` FROM parametros WHERE id = $1`
	p, err := escanearParametro(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get parametro: %w", err)
	}
	return p, nil
}

// Listar devuelve todos los parámetros ordenados por nombre.
func (r *ParametroRepo) Listar() ([]*entity.Parametro, error) {
	query := `SELECT ` + columnasParametro + ` FROM parametros ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list parametros: %w", err)
	}
	defer rows.Close()

	var parametros []*entity.Parametro
	for rows.Next() {
		p, err := escanearParametro(rows)
		if err != nil {
			return nil, fmt.Errorf("scan parametro: %w", err)
		}
		parametros = append(parametros, p)
	}
	return parametros, rows.Err()
}

// Actualizar persiste valor y rastro de auditoría de un parámetro.
func (r *ParametroRepo) Actualizar(p *entity.Parametro) error {
	query := `
		UPDATE parametros
		SET valor = $2, actualizado_por = $3, fecha_actualizacion = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.Valor, p.ActualizadoPor, p.FechaActualizacion)
	if err != nil {
		return fmt.Errorf("update parametro: %w", err)
	}
	return nil
}
