package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/scalimentos/inventario-api/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos *repository.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRepos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// NewRepos construye el juego completo de adaptadores sobre un Querier
// (pool o tx).
func NewRepos(q Querier) *repository.Repos {
	return &repository.Repos{
		Productos:   NewProductoRepository(q),
		Categorias:  NewCategoriaRepository(q),
		Lotes:       NewLoteRepository(q),
		Stocks:      NewStockRepository(q),
		Movimientos: NewMovimientoRepository(q),
		Ventas:      NewVentaRepository(q),
		Pagos:       NewPagoRepository(q),
		Alertas:     NewAlertaRepository(q),
		Parametros:  NewParametroRepository(q),
		Usuarios:    NewUsuarioRepository(q),
		Secuencias:  NewSecuenciaRepository(q),
	}
}
