// Package ventas implementa la creación de ventas con asignación FIFO de
// lotes y el reparto de pagos entre ventas pendientes. Cada venta y cada pago
// se resuelven completos dentro de una transacción.
package ventas

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/scalimentos/inventario-api/internal/application/dto"
	appinventario "github.com/scalimentos/inventario-api/internal/application/inventario"
	"github.com/scalimentos/inventario-api/internal/application/parametros"
	"github.com/scalimentos/inventario-api/internal/domain"
	"github.com/scalimentos/inventario-api/internal/domain/entity"
	"github.com/scalimentos/inventario-api/internal/domain/inventario"
	"github.com/scalimentos/inventario-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// VentaUseCase operaciones sobre ventas.
type VentaUseCase struct {
	tx     repository.TxRunner
	ventas repository.VentaRepository
}

func NewVentaUseCase(tx repository.TxRunner, ventas repository.VentaRepository) *VentaUseCase {
	return &VentaUseCase{tx: tx, ventas: ventas}
}

// Crear registra una venta: valida las líneas, asigna lotes FIFO, descuenta
// stock y lotes mediante movimientos de salida y deja todo persistido en una
// sola transacción. Si la deuda del cliente supera el límite configurado la
// venta procede igual y la respuesta lleva una advertencia.
func (uc *VentaUseCase) Crear(ctx context.Context, in dto.CrearVentaRequest, usuarioID string) (*dto.CrearVentaResponse, error) {
	if in.PagoInicial.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}
	for _, linea := range in.Productos {
		if !linea.Cantidad.GreaterThan(decimal.Zero) {
			return nil, domain.ErrEntradaInvalida
		}
	}

	var resp *dto.CrearVentaResponse
	err := uc.tx.Run(ctx, func(r *repository.Repos) error {
		limite, err := parametros.Valor(r.Parametros, entity.ParamLimiteDeudas)
		if err != nil {
			return err
		}

		fechaVenta := time.Now()
		if in.FechaVenta != nil {
			fechaVenta = *in.FechaVenta
		}

		venta := &entity.Venta{
			ID:          uuid.New().String(),
			ClienteID:   in.ClienteID,
			VendedorID:  in.VendedorID,
			PagoInicial: in.PagoInicial,
			FechaVenta:  fechaVenta,
			Notas:       in.Notas,
			Estado:      entity.VentaPendiente,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		total := decimal.Zero
		var lotesUsados []dto.LoteUsado

		for _, linea := range in.Productos {
			producto, err := r.Productos.ObtenerPorID(linea.ProductoID)
			if err != nil {
				return err
			}
			if producto == nil {
				return domain.ErrNoEncontrado
			}
			precio := producto.PrecioVenta
			if linea.PrecioUnitario != nil {
				if !linea.PrecioUnitario.GreaterThan(decimal.Zero) {
					return domain.ErrEntradaInvalida
				}
				precio = *linea.PrecioUnitario
			}

			candidatos := make([]inventario.LoteCandidato, 0, len(linea.Lotes))
			for _, lr := range linea.Lotes {
				lote, err := r.Lotes.ObtenerPorIDForUpdate(lr.LoteID)
				if err != nil {
					return err
				}
				if lote == nil {
					return domain.ErrNoEncontrado
				}
				if lote.ProductoID != linea.ProductoID || lote.Estado != entity.LoteDisponible {
					return domain.ErrEntradaInvalida
				}
				candidatos = append(candidatos, inventario.LoteCandidato{Lote: lote, Cantidad: lr.Cantidad})
			}

			asignaciones, err := inventario.AsignarLotes(linea.Cantidad, candidatos)
			if err != nil {
				return err
			}

			venta.Productos = append(venta.Productos, entity.VentaProducto{
				ProductoID:     linea.ProductoID,
				Cantidad:       linea.Cantidad,
				PrecioUnitario: precio,
				Lotes:          asignaciones,
			})
			total = total.Add(linea.Cantidad.Mul(precio))

			for _, a := range asignaciones {
				costo := a.Cantidad.Mul(precio)
				_, err := appinventario.RegistrarEnTx(r, appinventario.MovimientoInput{
					ProductoID:     linea.ProductoID,
					LoteID:         a.LoteID,
					TipoMovimiento: entity.MovimientoSalida,
					Razon:          entity.RazonVenta,
					Cantidad:       a.Cantidad,
					OrigenDestino:  "VENTA",
					UsuarioID:      usuarioID,
					Costo:          &costo,
					Fecha:          fechaVenta,
				})
				if err != nil {
					return err
				}
				lotesUsados = append(lotesUsados, dto.LoteUsado{
					ProductoID:    linea.ProductoID,
					LoteID:        a.LoteID,
					CantidadUsada: a.Cantidad,
				})
			}
		}

		if in.PagoInicial.GreaterThan(total) {
			return domain.ErrEntradaInvalida
		}
		venta.TotalVenta = total
		venta.SaldoVenta = total.Sub(in.PagoInicial)
		venta.RecalcularEstado()

		// La deuda se mide sobre las ventas pendientes previas, sin contar la
		// que se está creando.
		var advertencia string
		pendientes, err := r.Ventas.ListarPendientesPorCliente(in.ClienteID)
		if err != nil {
			return err
		}
		deuda := decimal.Zero
		for _, p := range pendientes {
			deuda = deuda.Add(p.SaldoVenta)
		}
		if deuda.GreaterThan(limite) {
			advertencia = fmt.Sprintf("el cliente acumula una deuda de %s y supera el límite de %s", deuda.String(), limite.String())
		}

		if err := r.Ventas.Crear(venta); err != nil {
			return err
		}

		resp = &dto.CrearVentaResponse{Venta: venta, LotesUsados: lotesUsados, AdvertenciaDeuda: advertencia}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ObtenerPorID devuelve una venta.
func (uc *VentaUseCase) ObtenerPorID(ctx context.Context, id string) (*entity.Venta, error) {
	v, err := uc.ventas.ObtenerPorID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNoEncontrado
	}
	return v, nil
}

// Listar devuelve ventas paginadas.
func (uc *VentaUseCase) Listar(ctx context.Context, limit, offset int) ([]*entity.Venta, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return uc.ventas.Listar(limit, offset)
}

// PendientesPorCliente devuelve las ventas con saldo del cliente, la más
// antigua primero.
func (uc *VentaUseCase) PendientesPorCliente(ctx context.Context, clienteID string) ([]dto.VentaPendienteDTO, error) {
	pendientes, err := uc.ventas.ListarPendientesPorCliente(clienteID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VentaPendienteDTO, 0, len(pendientes))
	for _, v := range pendientes {
		out = append(out, dto.VentaPendienteDTO{
			VentaID:    v.ID,
			FechaVenta: v.FechaVenta,
			TotalVenta: v.TotalVenta,
			SaldoVenta: v.SaldoVenta,
		})
	}
	return out, nil
}

// Actualizar modifica los campos administrativos de una venta. Las líneas y
// sus asignaciones de lote son inmutables; un cambio de pago inicial ajusta
// el saldo por el delta.
func (uc *VentaUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarVentaRequest) (*entity.Venta, error) {
	v, err := uc.ventas.ObtenerPorID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNoEncontrado
	}
	if in.ClienteID != nil {
		v.ClienteID = *in.ClienteID
	}
	if in.VendedorID != nil {
		v.VendedorID = *in.VendedorID
	}
	if in.FechaVenta != nil {
		v.FechaVenta = *in.FechaVenta
	}
	if in.Notas != nil {
		v.Notas = *in.Notas
	}
	if in.PagoInicial != nil {
		if in.PagoInicial.IsNegative() {
			return nil, domain.ErrEntradaInvalida
		}
		delta := in.PagoInicial.Sub(v.PagoInicial)
		nuevoSaldo := v.SaldoVenta.Sub(delta)
		if nuevoSaldo.IsNegative() {
			return nil, domain.ErrEntradaInvalida
		}
		v.PagoInicial = *in.PagoInicial
		v.SaldoVenta = nuevoSaldo
		v.RecalcularEstado()
	}
	v.UpdatedAt = time.Now()
	if err := uc.ventas.Actualizar(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Eliminar borra una venta solo si ya no quedan movimientos de venta de sus
// productos: primero se corrige el registro de movimientos, después la venta.
func (uc *VentaUseCase) Eliminar(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(r *repository.Repos) error {
		v, err := r.Ventas.ObtenerPorID(id)
		if err != nil {
			return err
		}
		if v == nil {
			return domain.ErrNoEncontrado
		}
		ids := make([]string, 0, len(v.Productos))
		for _, p := range v.Productos {
			ids = append(ids, p.ProductoID)
		}
		if en, err := r.Movimientos.ExisteVentaPorProductos(ids); err != nil {
			return err
		} else if en {
			return domain.ErrVentaEnUso
		}
		return r.Ventas.Eliminar(id)
	})
}
