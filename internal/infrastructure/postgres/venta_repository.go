package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/scalimentos/inventario-api/internal/domain/entity"
	"github.com/scalimentos/inventario-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación de VentaRepository sobre PostgreSQL. Las líneas con
// sus asignaciones de lote viajan en una columna JSONB.
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

const columnasVenta = `id, cliente_id, vendedor_id, productos, total_venta, pago_inicial, saldo_venta, fecha_venta, estado, notas, created_at, updated_at`

func escanearVenta(row pgx.Row) (*entity.Venta, error) {
	var v entity.Venta
	var productos []byte
	err := row.Scan(
		&v.ID, &v.ClienteID, &v.VendedorID, &productos, &v.TotalVenta,
		&v.PagoInicial, &v.SaldoVenta, &v.FechaVenta, &v.Estado, &v.Notas,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(productos, &v.Productos); err != nil {
		return nil, fmt.Errorf("unmarshal productos de venta: %w", err)
	}
	return &v, nil
}

// Crear persiste una venta.
func (r *VentaRepo) Crear(v *entity.Venta) error {
	productos, err := json.Marshal(v.Productos)
	if err != nil {
		return fmt.Errorf("marshal productos de venta: %w", err)
	}
	query := `
		INSERT INTO ventas (` + columnasVenta + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.q.Exec(context.Background(), query,
		v.ID, v.ClienteID, v.VendedorID, productos, v.TotalVenta,
		v.PagoInicial, v.SaldoVenta, v.FechaVenta, v.Estado, v.Notas,
		v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// ObtenerPorID obtiene una venta por ID.
func (r *VentaRepo) ObtenerPorID(id string) (*entity.Venta, error) {
	query := `SELECT ` + columnasVenta + ` FROM ventas WHERE id = $1`
	v, err := escanearVenta(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return v, nil
}

// Listar lista ventas con paginación, las más recientes primero.
func (r *VentaRepo) Listar(limit, offset int) ([]*entity.Venta, error) {
	query := `SELECT ` + columnasVenta + ` FROM ventas ORDER BY fecha_venta DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	return escanearVentas(rows)
}

// Actualizar persiste los campos mutables de una venta. Las líneas no cambian.
func (r *VentaRepo) Actualizar(v *entity.Venta) error {
	query := `
		UPDATE ventas
		SET cliente_id = $2, vendedor_id = $3, pago_inicial = $4, saldo_venta = $5,
		    fecha_venta = $6, estado = $7, notas = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.ClienteID, v.VendedorID, v.PagoInicial, v.SaldoVenta,
		v.FechaVenta, v.Estado, v.Notas, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update venta: %w", err)
	}
	return nil
}

// Eliminar borra una venta por ID.
func (r *VentaRepo) Eliminar(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ventas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venta: %w", err)
	}
	return nil
}

// ListarPendientesPorCliente devuelve las ventas con saldo > 0 del cliente,
// la más antigua primero.
func (r *VentaRepo) ListarPendientesPorCliente(clienteID string) ([]*entity.Venta, error) {
	query := `
		SELECT ` + columnasVenta + `
		FROM ventas
		WHERE cliente_id = $1 AND saldo_venta > 0 AND estado <> $2
		ORDER BY fecha_venta ASC`
	rows, err := r.q.Query(context.Background(), query, clienteID, entity.VentaCancelada)
	if err != nil {
		return nil, fmt.Errorf("list ventas pendientes: %w", err)
	}
	defer rows.Close()
	return escanearVentas(rows)
}

// ListarPendientesPorIDs devuelve, de los IDs dados, las ventas con saldo > 0
// en orden de fecha ascendente.
func (r *VentaRepo) ListarPendientesPorIDs(ids []string) ([]*entity.Venta, error) {
	query := `
		SELECT ` + columnasVenta + `
		FROM ventas
		WHERE id = ANY($1) AND saldo_venta > 0 AND estado <> $2
		ORDER BY fecha_venta ASC`
	rows, err := r.q.Query(context.Background(), query, ids, entity.VentaCancelada)
	if err != nil {
		return nil, fmt.Errorf("list ventas pendientes por ids: %w", err)
	}
	defer rows.Close()
	return escanearVentas(rows)
}

func escanearVentas(rows pgx.Rows) ([]*entity.Venta, error) {
	var ventas []*entity.Venta
	for rows.Next() {
		v, err := escanearVenta(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		ventas = append(ventas, v)
	}
	return ventas, rows.Err()
}

// ExisteConLote indica si alguna venta consumió el lote dado.
func (r *VentaRepo) ExisteConLote(loteID string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(), `
		SELECT EXISTS(
			SELECT 1 FROM ventas v, jsonb_array_elements(v.productos) linea,
			       jsonb_array_elements(linea->'lotes') lote
			WHERE lote->>'loteId' = $1
		)`, loteID,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe venta con lote: %w", err)
	}
	return existe, nil
}

// ExisteConProducto indica si alguna venta incluye el producto dado.
func (r *VentaRepo) ExisteConProducto(productoID string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(), `
		SELECT EXISTS(
			SELECT 1 FROM ventas v, jsonb_array_elements(v.productos) linea
			WHERE linea->>'productoId' = $1
		)`, productoID,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe venta con producto: %w", err)
	}
	return existe, nil
}
