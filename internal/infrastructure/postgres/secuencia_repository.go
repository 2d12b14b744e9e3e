package postgres

import (
	"context"
	"fmt"

	"github.com/scalimentos/inventario-api/internal/domain/repository"
)

var _ repository.SecuenciaRepository = (*SecuenciaRepo)(nil)

// SecuenciaRepo implementación de SecuenciaRepository sobre PostgreSQL.
// El upsert incrementa y devuelve en una sola sentencia: dos llamadores
// concurrentes nunca reciben el mismo número.
type SecuenciaRepo struct {
	q Querier
}

// NewSecuenciaRepository construye el adaptador de secuencias. Pasar pool o tx (Querier).
func NewSecuenciaRepository(q Querier) *SecuenciaRepo {
	return &SecuenciaRepo{q: q}
}

// Siguiente entrega el próximo número de la secuencia dada, creándola en 1 si
// no existe.
func (r *SecuenciaRepo) Siguiente(nombre string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO secuencias (nombre, valor)
		VALUES ($1, 1)
		ON CONFLICT (nombre) DO UPDATE SET valor = secuencias.valor + 1
		RETURNING valor`, nombre,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("siguiente secuencia %s: %w", nombre, err)
	}
	return n, nil
}
