package inventario

import (
	"github.com/scalimentos/inventario-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// RepartirPago aplica un monto a las ventas recibidas en el orden dado
// (el llamador las entrega de la más antigua a la más reciente), descontando
// min(restante, saldo) de cada una. Muta el saldo y el estado de las ventas
// tocadas y devuelve el detalle por venta más el remanente sin aplicar.
func RepartirPago(monto decimal.Decimal, ventas []*entity.Venta) ([]entity.PagoAplicado, decimal.Decimal) {
	var aplicados []entity.PagoAplicado
	restante := monto

	for _, v := range ventas {
		if restante.LessThanOrEqual(decimal.Zero) {
			break
		}
		saldoPrevio := v.SaldoVenta
		aplicado := decimal.Min(restante, v.SaldoVenta)
		v.SaldoVenta = v.SaldoVenta.Sub(aplicado)
		v.RecalcularEstado()

		aplicados = append(aplicados, entity.PagoAplicado{
			VentaID:       v.ID,
			SaldoPrevio:   saldoPrevio,
			PagoAplicado:  aplicado,
			SaldoRestante: v.SaldoVenta,
		})
		restante = restante.Sub(aplicado)
	}
	return aplicados, restante
}
