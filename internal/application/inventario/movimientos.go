// Package inventario implementa los casos de uso de lotes de producción,
// movimientos de inventario y existencias. Toda mutación de stock pasa por el
// registrador de movimientos: contador y lotes se mueven juntos, en la misma
// transacción.
package inventario

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/scalimentos/inventario-api/internal/application/dto"
	"github.com/scalimentos/inventario-api/internal/domain"
	"github.com/scalimentos/inventario-api/internal/domain/codigo"
	"github.com/scalimentos/inventario-api/internal/domain/entity"
	"github.com/scalimentos/inventario-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// MovimientoInput es la entrada del paso transaccional de registro.
// Costo nil = cantidad × costo unitario del producto.
type MovimientoInput struct {
	ProductoID     string
	LoteID         string
	TipoMovimiento string
	Razon          string
	Cantidad       decimal.Decimal
	OrigenDestino  string
	UsuarioID      string
	Costo          *decimal.Decimal
	Fecha          time.Time
}

// RegistrarEnTx aplica un movimiento sobre repositorios ya atados a una
// transacción: ajusta el contador de stock, consume o repone el lote si se
// indicó uno, recalcula el disponible y persiste el registro auditable.
// Lo reutiliza el caso de uso de ventas para que cada línea vendida deje su
// movimiento de salida dentro de la misma transacción de la venta.
func RegistrarEnTx(r *repository.Repos, in MovimientoInput) (*entity.MovimientoInventario, error) {
	producto, err := r.Productos.ObtenerPorID(in.ProductoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNoEncontrado
	}

	stock, err := r.Stocks.ObtenerPorProductoForUpdate(in.ProductoID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrNoEncontrado
	}

	var lote *entity.LoteProduccion
	if in.LoteID != "" {
		lote, err = r.Lotes.ObtenerPorIDForUpdate(in.LoteID)
		if err != nil {
			return nil, err
		}
		if lote == nil {
			return nil, domain.ErrNoEncontrado
		}
		if lote.ProductoID != in.ProductoID {
			return nil, domain.ErrEntradaInvalida
		}
	}

	switch in.TipoMovimiento {
	case entity.MovimientoEntrada:
		if !in.Cantidad.GreaterThan(decimal.Zero) {
			return nil, domain.ErrEntradaInvalida
		}
		stock.StockActual = stock.StockActual.Add(in.Cantidad)
		if lote != nil {
			lote.CantidadProducida = lote.CantidadProducida.Add(in.Cantidad)
			lote.Recalcular()
		}
	case entity.MovimientoSalida:
		if !in.Cantidad.GreaterThan(decimal.Zero) {
			return nil, domain.ErrEntradaInvalida
		}
		if stock.StockActual.LessThan(in.Cantidad) {
			return nil, domain.ErrStockInsuficiente
		}
		stock.StockActual = stock.StockActual.Sub(in.Cantidad)
		if lote != nil {
			if err := lote.Consumir(in.Cantidad); err != nil {
				return nil, err
			}
		}
	case entity.MovimientoAjuste:
		if in.Cantidad.IsZero() {
			return nil, domain.ErrEntradaInvalida
		}
		nuevo := stock.StockActual.Add(in.Cantidad)
		if nuevo.IsNegative() {
			return nil, domain.ErrStockInsuficiente
		}
		stock.StockActual = nuevo
	default:
		return nil, domain.ErrEntradaInvalida
	}

	stock.UpdatedAt = time.Now()
	if err := r.Stocks.Actualizar(stock); err != nil {
		return nil, err
	}
	if lote != nil {
		lote.UpdatedAt = time.Now()
		if err := r.Lotes.Actualizar(lote); err != nil {
			return nil, err
		}
		if err := r.Stocks.RecomputarDisponible(in.ProductoID); err != nil {
			return nil, err
		}
	}

	n, err := r.Secuencias.Siguiente(codigo.SecuenciaMovimientos)
	if err != nil {
		return nil, err
	}

	costo := in.Cantidad.Abs().Mul(producto.Costo)
	if in.Costo != nil {
		costo = *in.Costo
	}
	fecha := in.Fecha
	if fecha.IsZero() {
		fecha = time.Now()
	}

	m := &entity.MovimientoInventario{
		ID:              uuid.New().String(),
		MovimientoID:    codigo.Formatear(codigo.PrefijoMovimiento, n, codigo.AnchoSecuencia),
		ProductoID:      in.ProductoID,
		LoteID:          in.LoteID,
		TipoMovimiento:  in.TipoMovimiento,
		Razon:           in.Razon,
		Cantidad:        in.Cantidad,
		FechaMovimiento: fecha,
		CostoMovimiento: costo,
		UsuarioID:       in.UsuarioID,
		OrigenDestino:   in.OrigenDestino,
		CreatedAt:       time.Now(),
	}
	if err := r.Movimientos.Crear(m); err != nil {
		return nil, err
	}
	return m, nil
}

// MovimientoUseCase operaciones sobre el registro de movimientos.
type MovimientoUseCase struct {
	tx          repository.TxRunner
	movimientos repository.MovimientoRepository
}

func NewMovimientoUseCase(tx repository.TxRunner, movimientos repository.MovimientoRepository) *MovimientoUseCase {
	return &MovimientoUseCase{tx: tx, movimientos: movimientos}
}

// Registrar crea un movimiento manual aplicando sus efectos en una transacción.
func (uc *MovimientoUseCase) Registrar(ctx context.Context, in dto.RegistrarMovimientoRequest, usuarioID string) (*entity.MovimientoInventario, error) {
	var creado *entity.MovimientoInventario
	err := uc.tx.Run(ctx, func(r *repository.Repos) error {
		m, err := RegistrarEnTx(r, MovimientoInput{
			ProductoID:     in.ProductoID,
			LoteID:         in.LoteID,
			TipoMovimiento: in.TipoMovimiento,
			Razon:          in.Razon,
			Cantidad:       in.Cantidad,
			OrigenDestino:  in.OrigenDestino,
			UsuarioID:      usuarioID,
		})
		if err != nil {
			return err
		}
		creado = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return creado, nil
}

// ObtenerPorID devuelve un movimiento.
func (uc *MovimientoUseCase) ObtenerPorID(ctx context.Context, id string) (*entity.MovimientoInventario, error) {
	m, err := uc.movimientos.ObtenerPorID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNoEncontrado
	}
	return m, nil
}

// Listar devuelve movimientos con filtro opcional de fechas.
func (uc *MovimientoUseCase) Listar(ctx context.Context, desde, hasta *time.Time, limit, offset int) ([]*entity.MovimientoInventario, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return uc.movimientos.Listar(desde, hasta, limit, offset)
}

// ListarPorProducto devuelve el historial de movimientos de un producto.
func (uc *MovimientoUseCase) ListarPorProducto(ctx context.Context, productoID string, limit, offset int) ([]*entity.MovimientoInventario, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return uc.movimientos.ListarPorProducto(productoID, limit, offset)
}

// Actualizar corrige metadatos del movimiento. No re-ejecuta efectos sobre
// stock ni lotes: es un override administrativo del registro.
func (uc *MovimientoUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarMovimientoRequest) (*entity.MovimientoInventario, error) {
	m, err := uc.movimientos.ObtenerPorID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNoEncontrado
	}
	if in.Razon != nil {
		m.Razon = *in.Razon
	}
	if in.OrigenDestino != nil {
		m.OrigenDestino = *in.OrigenDestino
	}
	if err := uc.movimientos.Actualizar(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Eliminar borra el registro del movimiento sin revertir sus efectos.
func (uc *MovimientoUseCase) Eliminar(ctx context.Context, id string) error {
	m, err := uc.movimientos.ObtenerPorID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNoEncontrado
	}
	return uc.movimientos.Eliminar(id)
}
