package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/scalimentos/inventario-api/internal/domain/entity"
	"github.com/scalimentos/inventario-api/internal/domain/repository"
)

var _ repository.PagoRepository = (*PagoRepo)(nil)

// PagoRepo implementación de PagoRepository sobre PostgreSQL. El detalle de
// aplicación por venta viaja en una columna JSONB.
type PagoRepo struct {
	q Querier
}

// NewPagoRepository construye el adaptador de pagos. Pasar pool o tx (Querier).
func NewPagoRepository(q Querier) *PagoRepo {
	return &PagoRepo{q: q}
}

// Crear persiste un pago con su detalle de aplicación.
func (r *PagoRepo) Crear(p *entity.Pago) error {
	aplicados, err := json.Marshal(p.PagosAplicados)
	if err != nil {
		return fmt.Errorf("marshal pagos aplicados: %w", err)
	}
	query := `
		INSERT INTO pagos (id, cliente_id, monto_pagado, saldo_restante, metodo_pago, fecha_pago, pagos_aplicados, notas, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(context.Background(), query,
		p.ID, p.ClienteID, p.MontoPagado, p.SaldoRestante, p.MetodoPago,
		p.FechaPago, aplicados, p.Notas, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pago: %w", err)
	}
	return nil
}

// ListarPorCliente devuelve los pagos de un cliente, el más reciente primero.
func (r *PagoRepo) ListarPorCliente(clienteID string) ([]*entity.Pago, error) {
	query := `
		SELECT id, cliente_id, monto_pagado, saldo_restante, metodo_pago, fecha_pago, pagos_aplicados, notas, created_at
		FROM pagos WHERE cliente_id = $1 ORDER BY fecha_pago DESC`
	rows, err := r.q.Query(context.Background(), query, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list pagos: %w", err)
	}
	defer rows.Close()

	var pagos []*entity.Pago
	for rows.Next() {
		var p entity.Pago
		var aplicados []byte
		err := rows.Scan(
			&p.ID, &p.ClienteID, &p.MontoPagado, &p.SaldoRestante, &p.MetodoPago,
			&p.FechaPago, &aplicados, &p.Notas, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan pago: %w", err)
		}
		if err := json.Unmarshal(aplicados, &p.PagosAplicados); err != nil {
			return nil, fmt.Errorf("unmarshal pagos aplicados: %w", err)
		}
		pagos = append(pagos, &p)
	}
	return pagos, rows.Err()
}
