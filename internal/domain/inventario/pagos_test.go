package inventario_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scalimentos/inventario-api/internal/domain/entity"
	"github.com/scalimentos/inventario-api/internal/domain/inventario"
)

func ventaConSaldo(id string, dia int, saldo int64) *entity.Venta {
	return &entity.Venta{
		ID:         id,
		FechaVenta: time.Date(2025, 4, dia, 0, 0, 0, 0, time.UTC),
		TotalVenta: decimal.NewFromInt(saldo),
		SaldoVenta: decimal.NewFromInt(saldo),
		Estado:     entity.VentaPendiente,
	}
}

// Saldos 200 (más antigua) y 300; pago de 350: la primera queda en cero y
// completada, la segunda baja a 150, sin remanente.
func TestRepartirPago_MasAntiguaPrimero(t *testing.T) {
	v1 := ventaConSaldo("V1", 1, 200)
	v2 := ventaConSaldo("V2", 2, 300)

	aplicados, restante := inventario.RepartirPago(decimal.NewFromInt(350), []*entity.Venta{v1, v2})

	require.Len(t, aplicados, 2)
	assert.Equal(t, "V1", aplicados[0].VentaID)
	assert.True(t, aplicados[0].SaldoPrevio.Equal(decimal.NewFromInt(200)))
	assert.True(t, aplicados[0].PagoAplicado.Equal(decimal.NewFromInt(200)))
	assert.True(t, aplicados[0].SaldoRestante.IsZero())

	assert.Equal(t, "V2", aplicados[1].VentaID)
	assert.True(t, aplicados[1].PagoAplicado.Equal(decimal.NewFromInt(150)))
	assert.True(t, aplicados[1].SaldoRestante.Equal(decimal.NewFromInt(150)))

	assert.True(t, restante.IsZero())
	assert.Equal(t, entity.VentaCompletada, v1.Estado)
	assert.Equal(t, entity.VentaPendiente, v2.Estado)
}

func TestRepartirPago_PagoExactoCompletaTodo(t *testing.T) {
	v1 := ventaConSaldo("V1", 1, 120)
	v2 := ventaConSaldo("V2", 2, 80)

	aplicados, restante := inventario.RepartirPago(decimal.NewFromInt(200), []*entity.Venta{v1, v2})

	require.Len(t, aplicados, 2)
	assert.True(t, restante.IsZero())
	assert.Equal(t, entity.VentaCompletada, v1.Estado)
	assert.Equal(t, entity.VentaCompletada, v2.Estado)
}

// Invariante: Σ aplicado + remanente == monto pagado, incluso con sobrepago.
func TestRepartirPago_InvarianteDeSuma(t *testing.T) {
	v1 := ventaConSaldo("V1", 1, 90)
	v2 := ventaConSaldo("V2", 2, 10)
	monto := decimal.NewFromInt(130)

	aplicados, restante := inventario.RepartirPago(monto, []*entity.Venta{v1, v2})

	suma := restante
	for _, a := range aplicados {
		suma = suma.Add(a.PagoAplicado)
	}
	assert.True(t, suma.Equal(monto))
	assert.True(t, restante.Equal(decimal.NewFromInt(30)))
}

func TestRepartirPago_MontoParcialNoTocaVentasPosteriores(t *testing.T) {
	v1 := ventaConSaldo("V1", 1, 500)
	v2 := ventaConSaldo("V2", 2, 300)

	aplicados, restante := inventario.RepartirPago(decimal.NewFromInt(100), []*entity.Venta{v1, v2})

	require.Len(t, aplicados, 1)
	assert.Equal(t, "V1", aplicados[0].VentaID)
	assert.True(t, v1.SaldoVenta.Equal(decimal.NewFromInt(400)))
	assert.True(t, v2.SaldoVenta.Equal(decimal.NewFromInt(300)))
	assert.True(t, restante.IsZero())
}
