package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/scalimentos/inventario-api/internal/domain/entity"
	"github.com/scalimentos/inventario-api/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

// ReporteRepo agregaciones históricas de solo lectura sobre PostgreSQL.
// Las ventas se agregan desde el registro de movimientos (razón VENTA) y la
// producción desde los lotes.
type ReporteRepo struct {
	q Querier
}

// NewReporteRepository construye el adaptador de reportes. Pasar pool o tx (Querier).
func NewReporteRepository(q Querier) *ReporteRepo {
	return &ReporteRepo{q: q}
}

func formatoPeriodo(agrupacion string) string {
	if agrupacion == repository.AgrupacionMes {
		return "YYYY-MM"
	}
	return "YYYY-MM-DD"
}

// VentasHistoricas devuelve el total vendido del producto por periodo, en
// orden ascendente.
func (r *ReporteRepo) VentasHistoricas(productoID, agrupacion string) ([]repository.PuntoSerie, error) {
	query := `
		SELECT to_char(fecha_movimiento, $3) AS periodo, SUM(cantidad) AS total
		FROM movimientos_inventario
		WHERE producto_id = $1 AND razon = $2
		GROUP BY periodo
		ORDER BY periodo ASC`
	rows, err := r.q.Query(context.Background(), query, productoID, entity.RazonVenta, formatoPeriodo(agrupacion))
	if err != nil {
		return nil, fmt.Errorf("ventas historicas: %w", err)
	}
	defer rows.Close()
	return escanearSerie(rows)
}

// ProduccionHistorica devuelve la cantidad producida del producto por periodo,
// en orden ascendente.
func (r *ReporteRepo) ProduccionHistorica(productoID, agrupacion string) ([]repository.PuntoSerie, error) {
	query := `
		SELECT to_char(fecha_produccion, $2) AS periodo, SUM(cantidad_producida) AS total
		FROM lotes_produccion
		WHERE producto_id = $1
		GROUP BY periodo
		ORDER BY periodo ASC`
	rows, err := r.q.Query(context.Background(), query, productoID, formatoPeriodo(agrupacion))
	if err != nil {
		return nil, fmt.Errorf("produccion historica: %w", err)
	}
	defer rows.Close()
	return escanearSerie(rows)
}

func escanearSerie(rows pgx.Rows) ([]repository.PuntoSerie, error) {
	var serie []repository.PuntoSerie
	for rows.Next() {
		var p repository.PuntoSerie
		if err := rows.Scan(&p.Periodo, &p.Total); err != nil {
			return nil, fmt.Errorf("scan punto de serie: %w", err)
		}
		serie = append(serie, p)
	}
	return serie, rows.Err()
}
