package ventas

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/scalimentos/inventario-api/internal/application/dto"
	"github.com/scalimentos/inventario-api/internal/domain"
	"github.com/scalimentos/inventario-api/internal/domain/entity"
	"github.com/scalimentos/inventario-api/internal/domain/inventario"
	"github.com/scalimentos/inventario-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// PagoUseCase aplicación y consulta de pagos de clientes.
type PagoUseCase struct {
	tx    repository.TxRunner
	pagos repository.PagoRepository
}

func NewPagoUseCase(tx repository.TxRunner, pagos repository.PagoRepository) *PagoUseCase {
	return &PagoUseCase{tx: tx, pagos: pagos}
}

// Aplicar registra un pago y lo reparte entre ventas pendientes, de la más
// antigua a la más reciente. Con ventas explícitas el monto debe igualar la
// suma exacta de sus saldos; sin ellas se reparte sobre todas las pendientes
// del cliente y no puede exceder la deuda total. Saldos, estados y el registro
// del pago se confirman en una transacción.
func (uc *PagoUseCase) Aplicar(ctx context.Context, in dto.CrearPagoRequest) (*dto.CrearPagoResponse, error) {
	if !in.MontoPagado.GreaterThan(decimal.Zero) {
		return nil, domain.ErrEntradaInvalida
	}

	var resp *dto.CrearPagoResponse
	err := uc.tx.Run(ctx, func(r *repository.Repos) error {
		var (
			pendientes []*entity.Venta
			err        error
		)
		if len(in.Ventas) > 0 {
			pendientes, err = r.Ventas.ListarPendientesPorIDs(in.Ventas)
			if err != nil {
				return err
			}
			// Toda venta listada debe existir con saldo pendiente: un ID
			// inexistente o ya saldado invalida el pago completo.
			solicitadas := make(map[string]bool, len(in.Ventas))
			for _, id := range in.Ventas {
				solicitadas[id] = true
			}
			if len(pendientes) != len(solicitadas) {
				return domain.ErrSinVentasPendientes
			}
			suma := decimal.Zero
			for _, v := range pendientes {
				if v.ClienteID != in.ClienteID {
					return domain.ErrVentaDeOtroCliente
				}
				suma = suma.Add(v.SaldoVenta)
			}
			if !in.MontoPagado.Equal(suma) {
				return domain.ErrMontoNoCoincide
			}
		} else {
			pendientes, err = r.Ventas.ListarPendientesPorCliente(in.ClienteID)
			if err != nil {
				return err
			}
			if len(pendientes) == 0 {
				return domain.ErrSinVentasPendientes
			}
			deuda := decimal.Zero
			for _, v := range pendientes {
				deuda = deuda.Add(v.SaldoVenta)
			}
			if in.MontoPagado.GreaterThan(deuda) {
				return domain.ErrMontoExcedeDeuda
			}
		}

		aplicados, restante := inventario.RepartirPago(in.MontoPagado, pendientes)

		tocadas := make(map[string]bool, len(aplicados))
		for _, a := range aplicados {
			tocadas[a.VentaID] = true
		}
		for _, v := range pendientes {
			if !tocadas[v.ID] {
				continue
			}
			v.UpdatedAt = time.Now()
			if err := r.Ventas.Actualizar(v); err != nil {
				return err
			}
		}

		fechaPago := time.Now()
		if in.FechaPago != nil {
			fechaPago = *in.FechaPago
		}
		pago := &entity.Pago{
			ID:             uuid.New().String(),
			ClienteID:      in.ClienteID,
			MontoPagado:    in.MontoPagado,
			SaldoRestante:  restante,
			MetodoPago:     in.MetodoPago,
			FechaPago:      fechaPago,
			PagosAplicados: aplicados,
			Notas:          in.Notas,
			CreatedAt:      time.Now(),
		}
		if err := r.Pagos.Crear(pago); err != nil {
			return err
		}

		resp = &dto.CrearPagoResponse{
			FechaPago:      fechaPago,
			MontoPagado:    in.MontoPagado,
			SaldoRestante:  restante,
			PagosAplicados: aplicados,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// PorCliente devuelve el historial de pagos de un cliente.
func (uc *PagoUseCase) PorCliente(ctx context.Context, clienteID string) ([]*entity.Pago, error) {
	return uc.pagos.ListarPorCliente(clienteID)
}
