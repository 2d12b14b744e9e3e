package inventario

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/scalimentos/inventario-api/internal/application/dto"
	"github.com/scalimentos/inventario-api/internal/application/parametros"
	"github.com/scalimentos/inventario-api/internal/domain"
	"github.com/scalimentos/inventario-api/internal/domain/codigo"
	"github.com/scalimentos/inventario-api/internal/domain/entity"
	"github.com/scalimentos/inventario-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var estadosLote = map[string]bool{
	entity.LoteDisponible: true,
	entity.LoteDanado:     true,
	entity.LoteExpirado:   true,
	entity.LoteAgotado:    true,
	entity.LoteMalEmpaque: true,
}

// LoteUseCase operaciones sobre lotes de producción.
type LoteUseCase struct {
	tx    repository.TxRunner
	lotes repository.LoteRepository
}

func NewLoteUseCase(tx repository.TxRunner, lotes repository.LoteRepository) *LoteUseCase {
	return &LoteUseCase{tx: tx, lotes: lotes}
}

// Crear registra un lote de producción: genera su código, incrementa el stock
// del producto, deja el movimiento de entrada y recalcula el disponible, todo
// en una transacción. Devuelve una advertencia si el lote nace cerca de su
// vencimiento.
func (uc *LoteUseCase) Crear(ctx context.Context, in dto.CrearLoteRequest, usuarioID string) (*entity.LoteProduccion, string, error) {
	if !in.CantidadProducida.GreaterThan(decimal.Zero) {
		return nil, "", domain.ErrEntradaInvalida
	}

	var (
		lote        *entity.LoteProduccion
		advertencia string
	)
	err := uc.tx.Run(ctx, func(r *repository.Repos) error {
		producto, err := r.Productos.ObtenerPorID(in.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNoEncontrado
		}

		fechaProduccion := time.Now()
		if in.FechaProduccion != nil {
			fechaProduccion = *in.FechaProduccion
		}
		vencimiento := fechaProduccion.AddDate(0, 0, producto.DiasExpiracion)

		n, err := r.Secuencias.Siguiente(codigo.SecuenciaLotes)
		if err != nil {
			return err
		}

		now := time.Now()
		lote = &entity.LoteProduccion{
			ID:                 uuid.New().String(),
			ProductoID:         in.ProductoID,
			FechaProduccion:    fechaProduccion,
			CantidadProducida:  in.CantidadProducida,
			CantidadDisponible: in.CantidadProducida,
			FechaVencimiento:   vencimiento,
			CostoLote:          in.CantidadProducida.Mul(producto.Costo),
			UbicacionLote:      in.UbicacionLote,
			CodigoLote:         codigo.Formatear(codigo.PrefijoLote, n, codigo.AnchoSecuencia),
			Estado:             entity.LoteDisponible,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if err := r.Lotes.Crear(lote); err != nil {
			return err
		}

		stock, err := r.Stocks.ObtenerPorProductoForUpdate(in.ProductoID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNoEncontrado
		}
		stock.StockActual = stock.StockActual.Add(in.CantidadProducida)
		stock.UpdatedAt = now
		if err := r.Stocks.Actualizar(stock); err != nil {
			return err
		}

		nMov, err := r.Secuencias.Siguiente(codigo.SecuenciaMovimientos)
		if err != nil {
			return err
		}
		mov := &entity.MovimientoInventario{
			ID:              uuid.New().String(),
			MovimientoID:    codigo.Formatear(codigo.PrefijoMovimiento, nMov, codigo.AnchoSecuencia),
			ProductoID:      in.ProductoID,
			LoteID:          lote.ID,
			TipoMovimiento:  entity.MovimientoEntrada,
			Razon:           entity.RazonProduccion,
			Cantidad:        in.CantidadProducida,
			FechaMovimiento: fechaProduccion,
			CostoMovimiento: lote.CostoLote,
			UsuarioID:       usuarioID,
			OrigenDestino:   "almacen",
			CreatedAt:       now,
		}
		if err := r.Movimientos.Crear(mov); err != nil {
			return err
		}
		if err := r.Stocks.RecomputarDisponible(in.ProductoID); err != nil {
			return err
		}

		dias, err := parametros.Valor(r.Parametros, entity.ParamDiasProximosAExpirar)
		if err != nil {
			return err
		}
		if !vencimiento.After(time.Now().AddDate(0, 0, int(dias.IntPart()))) {
			advertencia = fmt.Sprintf("el lote %s vence el %s", lote.CodigoLote, vencimiento.Format("2006-01-02"))
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return lote, advertencia, nil
}

// ObtenerPorID devuelve un lote.
func (uc *LoteUseCase) ObtenerPorID(ctx context.Context, id string) (*entity.LoteProduccion, error) {
	l, err := uc.lotes.ObtenerPorID(id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNoEncontrado
	}
	return l, nil
}

// Listar devuelve lotes paginados.
func (uc *LoteUseCase) Listar(ctx context.Context, limit, offset int) ([]*entity.LoteProduccion, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return uc.lotes.Listar(limit, offset)
}

// ListarPorProducto devuelve los lotes de un producto.
func (uc *LoteUseCase) ListarPorProducto(ctx context.Context, productoID string) ([]*entity.LoteProduccion, error) {
	return uc.lotes.ListarPorProducto(productoID)
}

// Actualizar corrige un lote. Bajar la cantidad producida por debajo de lo ya
// vendido se rechaza; el delta de producción ajusta el contador de stock y el
// disponible se recalcula al final.
func (uc *LoteUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarLoteRequest) (*entity.LoteProduccion, error) {
	var actualizado *entity.LoteProduccion
	err := uc.tx.Run(ctx, func(r *repository.Repos) error {
		lote, err := r.Lotes.ObtenerPorIDForUpdate(id)
		if err != nil {
			return err
		}
		if lote == nil {
			return domain.ErrNoEncontrado
		}

		now := time.Now()
		if in.CantidadProducida != nil {
			nueva := *in.CantidadProducida
			if !nueva.GreaterThan(decimal.Zero) {
				return domain.ErrEntradaInvalida
			}
			if nueva.LessThan(lote.CantidadVendida) {
				return domain.ErrProducidaMenorQueVendida
			}
			delta := nueva.Sub(lote.CantidadProducida)
			if !delta.IsZero() {
				stock, err := r.Stocks.ObtenerPorProductoForUpdate(lote.ProductoID)
				if err != nil {
					return err
				}
				if stock == nil {
					return domain.ErrNoEncontrado
				}
				stock.StockActual = stock.StockActual.Add(delta)
				if stock.StockActual.IsNegative() {
					stock.StockActual = decimal.Zero
				}
				stock.UpdatedAt = now
				if err := r.Stocks.Actualizar(stock); err != nil {
					return err
				}
			}
			lote.CantidadProducida = nueva
			lote.Recalcular()
		}
		if in.FechaVencimiento != nil {
			lote.FechaVencimiento = *in.FechaVencimiento
		}
		if in.Estado != nil {
			if !estadosLote[*in.Estado] {
				return domain.ErrEntradaInvalida
			}
			lote.Estado = *in.Estado
		}
		lote.UpdatedAt = now
		if err := r.Lotes.Actualizar(lote); err != nil {
			return err
		}
		if err := r.Stocks.RecomputarDisponible(lote.ProductoID); err != nil {
			return err
		}
		actualizado = lote
		return nil
	})
	if err != nil {
		return nil, err
	}
	return actualizado, nil
}

// Eliminar borra un lote sin movimientos ni ventas asociados, devolviendo la
// cantidad producida al contador de stock (acotado en cero) y recalculando el
// disponible.
func (uc *LoteUseCase) Eliminar(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(r *repository.Repos) error {
		lote, err := r.Lotes.ObtenerPorIDForUpdate(id)
		if err != nil {
			return err
		}
		if lote == nil {
			return domain.ErrNoEncontrado
		}
		if en, err := r.Movimientos.ExisteConsumoPorLote(id); err != nil {
			return err
		} else if en {
			return domain.ErrLoteEnUso
		}
		if en, err := r.Ventas.ExisteConLote(id); err != nil {
			return err
		} else if en {
			return domain.ErrLoteEnUso
		}

		stock, err := r.Stocks.ObtenerPorProductoForUpdate(lote.ProductoID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNoEncontrado
		}
		stock.StockActual = stock.StockActual.Sub(lote.CantidadProducida)
		if stock.StockActual.IsNegative() {
			stock.StockActual = decimal.Zero
		}
		stock.UpdatedAt = time.Now()
		if err := r.Stocks.Actualizar(stock); err != nil {
			return err
		}
		if err := r.Lotes.Eliminar(id); err != nil {
			return err
		}
		return r.Stocks.RecomputarDisponible(lote.ProductoID)
	})
}
