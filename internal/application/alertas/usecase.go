// Package alertas regenera y consulta las alertas derivadas del inventario.
// Las alertas no se editan a mano: cada regeneración descarta el conjunto
// anterior y lo recalcula completo desde stock, lotes y parámetros, en una
// transacción. Si falta un parámetro requerido la regeneración aborta entera
// y el conjunto previo queda intacto.
package alertas

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/scalimentos/inventario-api/internal/application/parametros"
	"github.com/scalimentos/inventario-api/internal/domain"
	"github.com/scalimentos/inventario-api/internal/domain/entity"
	"github.com/scalimentos/inventario-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var estadosAlerta = map[string]bool{
	entity.AlertaPendiente: true,
	entity.AlertaEnProceso: true,
	entity.AlertaResuelta:  true,
}

// UseCase operaciones sobre alertas.
type UseCase struct {
	tx      repository.TxRunner
	alertas repository.AlertaRepository
}

func New(tx repository.TxRunner, alertas repository.AlertaRepository) *UseCase {
	return &UseCase{tx: tx, alertas: alertas}
}

// Regenerar recalcula el conjunto completo de alertas y devuelve el nuevo.
// Los cinco parámetros son obligatorios; la ausencia de cualquiera aborta la
// corrida entera. El umbral por producto (stock mínimo/máximo de su registro
// de stock) manda; si está en cero aplica el parámetro global.
func (uc *UseCase) Regenerar(ctx context.Context) ([]*entity.Alerta, error) {
	var generadas []*entity.Alerta
	err := uc.tx.Run(ctx, func(r *repository.Repos) error {
		minimoGlobal, err := parametros.Valor(r.Parametros, entity.ParamStockMinimo)
		if err != nil {
			return err
		}
		maximoGlobal, err := parametros.Valor(r.Parametros, entity.ParamStockMaximo)
		if err != nil {
			return err
		}
		reabasto, err := parametros.Valor(r.Parametros, entity.ParamCantidadMinimaReabasto)
		if err != nil {
			return err
		}
		diasVentana, err := parametros.Valor(r.Parametros, entity.ParamDiasProximosAExpirar)
		if err != nil {
			return err
		}
		diasAviso, err := parametros.Valor(r.Parametros, entity.ParamDiasAntesAlertaExpira)
		if err != nil {
			return err
		}

		if err := r.Alertas.EliminarTodas(); err != nil {
			return err
		}

		now := time.Now()
		stocks, err := r.Stocks.Listar()
		if err != nil {
			return err
		}
		for _, s := range stocks {
			minimo := s.StockMinimo
			if !minimo.GreaterThan(decimal.Zero) {
				minimo = minimoGlobal
			}
			maximo := s.StockMaximo
			if !maximo.GreaterThan(decimal.Zero) {
				maximo = maximoGlobal
			}

			if s.StockDisponible.LessThan(minimo) {
				generadas = append(generadas, &entity.Alerta{
					ID:                     uuid.New().String(),
					ProductoID:             s.ProductoID,
					TipoAlerta:             entity.AlertaStockBajo,
					Prioridad:              entity.PrioridadAlta,
					Descripcion:            fmt.Sprintf("stock bajo de %s: %s unidades (mínimo %s)", s.NombreProducto, s.StockDisponible.String(), minimo.String()),
					UmbralReabastecimiento: reabasto,
					StockActual:            s.StockDisponible,
					StockMinimo:            minimo,
					StockMaximo:            maximo,
					FechaAlerta:            now,
					Estado:                 entity.AlertaPendiente,
					CreatedAt:              now,
				})
			}
			if s.StockDisponible.GreaterThan(maximo) {
				generadas = append(generadas, &entity.Alerta{
					ID:                     uuid.New().String(),
					ProductoID:             s.ProductoID,
					TipoAlerta:             entity.AlertaStockMaximo,
					Prioridad:              entity.PrioridadMedia,
					Descripcion:            fmt.Sprintf("almacenamiento al máximo de %s: %s unidades (máximo %s)", s.NombreProducto, s.StockDisponible.String(), maximo.String()),
					UmbralReabastecimiento: reabasto,
					StockActual:            s.StockDisponible,
					StockMinimo:            minimo,
					StockMaximo:            maximo,
					FechaAlerta:            now,
					Estado:                 entity.AlertaPendiente,
					CreatedAt:              now,
				})
			}
		}

		hasta := now.AddDate(0, 0, int(diasVentana.IntPart()))
		lotes, err := r.Lotes.ListarProximosAVencer(now, hasta)
		if err != nil {
			return err
		}
		for _, l := range lotes {
			generadas = append(generadas, &entity.Alerta{
				ID:               uuid.New().String(),
				ProductoID:       l.ProductoID,
				LoteID:           l.ID,
				TipoAlerta:       entity.AlertaVencimiento,
				Prioridad:        entity.PrioridadMedia,
				Descripcion:      fmt.Sprintf("el lote %s de %s vence el %s (aviso a %s días)", l.CodigoLote, l.NombreProducto, l.FechaVencimiento.Format("2006-01-02"), diasAviso.String()),
				FechaVencimiento: l.FechaVencimiento,
				FechaAlerta:      now,
				Estado:           entity.AlertaPendiente,
				CreatedAt:        now,
			})
		}

		for _, a := range generadas {
			if err := r.Alertas.Crear(a); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return generadas, nil
}

// Listar devuelve las alertas vigentes.
func (uc *UseCase) Listar(ctx context.Context) ([]*entity.Alerta, error) {
	return uc.alertas.Listar()
}

// CambiarEstado marca una alerta como pendiente, en proceso o resuelta.
func (uc *UseCase) CambiarEstado(ctx context.Context, id, estado string) (*entity.Alerta, error) {
	if !estadosAlerta[estado] {
		return nil, domain.ErrEntradaInvalida
	}
	a, err := uc.alertas.ObtenerPorID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNoEncontrado
	}
	if err := uc.alertas.ActualizarEstado(id, estado); err != nil {
		return nil, err
	}
	a.Estado = estado
	return a, nil
}
