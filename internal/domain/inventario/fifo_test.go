package inventario_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scalimentos/inventario-api/internal/domain"
	"github.com/scalimentos/inventario-api/internal/domain/entity"
	"github.com/scalimentos/inventario-api/internal/domain/inventario"
)

func lote(id string, dia int, producida, vendida int64) *entity.LoteProduccion {
	l := &entity.LoteProduccion{
		ID:                id,
		FechaProduccion:   time.Date(2025, 3, dia, 0, 0, 0, 0, time.UTC),
		CantidadProducida: decimal.NewFromInt(producida),
		CantidadVendida:   decimal.NewFromInt(vendida),
		Estado:            entity.LoteDisponible,
	}
	l.Recalcular()
	return l
}

// ──────────────────────────────────────────────────────────────────────────────
// AsignarLotes: consumo FIFO por fecha de producción
// ──────────────────────────────────────────────────────────────────────────────

// L1 (100 uds, día 1) y L2 (50 uds, día 2), se piden 120: L1 se agota por
// completo y de L2 solo salen 20.
func TestAsignarLotes_ConsumeMasAntiguosPrimero(t *testing.T) {
	l1 := lote("L1", 1, 100, 0)
	l2 := lote("L2", 2, 50, 0)

	// Candidatos en orden inverso a propósito: el orden lo decide la fecha
	asignaciones, err := inventario.AsignarLotes(decimal.NewFromInt(120), []inventario.LoteCandidato{
		{Lote: l2, Cantidad: l2.CantidadDisponible},
		{Lote: l1, Cantidad: l1.CantidadDisponible},
	})
	require.NoError(t, err)
	require.Len(t, asignaciones, 2)

	assert.Equal(t, "L1", asignaciones[0].LoteID)
	assert.True(t, asignaciones[0].Cantidad.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "L2", asignaciones[1].LoteID)
	assert.True(t, asignaciones[1].Cantidad.Equal(decimal.NewFromInt(20)))
}

// El exceso ofrecido se permite: los lotes más nuevos quedan sin tocar si los
// antiguos ya cubren la solicitud.
func TestAsignarLotes_ExcesoDejaLotesNuevosSinTocar(t *testing.T) {
	l1 := lote("L1", 1, 80, 0)
	l2 := lote("L2", 5, 200, 0)

	asignaciones, err := inventario.AsignarLotes(decimal.NewFromInt(50), []inventario.LoteCandidato{
		{Lote: l1, Cantidad: decimal.NewFromInt(80)},
		{Lote: l2, Cantidad: decimal.NewFromInt(200)},
	})
	require.NoError(t, err)
	require.Len(t, asignaciones, 1)
	assert.Equal(t, "L1", asignaciones[0].LoteID)
	assert.True(t, asignaciones[0].Cantidad.Equal(decimal.NewFromInt(50)))
}

func TestAsignarLotes_CandidatoExcedeDisponible(t *testing.T) {
	l1 := lote("L1", 1, 10, 4) // disponible: 6

	_, err := inventario.AsignarLotes(decimal.NewFromInt(5), []inventario.LoteCandidato{
		{Lote: l1, Cantidad: decimal.NewFromInt(7)},
	})
	assert.ErrorIs(t, err, domain.ErrCantidadLoteInsuficiente)
}

func TestAsignarLotes_CoberturaInsuficiente(t *testing.T) {
	l1 := lote("L1", 1, 30, 0)
	l2 := lote("L2", 2, 40, 0)

	_, err := inventario.AsignarLotes(decimal.NewFromInt(90), []inventario.LoteCandidato{
		{Lote: l1, Cantidad: decimal.NewFromInt(30)},
		{Lote: l2, Cantidad: decimal.NewFromInt(40)},
	})
	assert.ErrorIs(t, err, domain.ErrCoberturaLotesInsuficiente)
}

func TestAsignarLotes_EntradaInvalida(t *testing.T) {
	l1 := lote("L1", 1, 30, 0)

	_, err := inventario.AsignarLotes(decimal.Zero, []inventario.LoteCandidato{{Lote: l1, Cantidad: decimal.NewFromInt(1)}})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	_, err = inventario.AsignarLotes(decimal.NewFromInt(5), nil)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	_, err = inventario.AsignarLotes(decimal.NewFromInt(5), []inventario.LoteCandidato{{Lote: l1, Cantidad: decimal.Zero}})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariantes del lote
// ──────────────────────────────────────────────────────────────────────────────

func TestLote_ConsumirHastaAgotar(t *testing.T) {
	l := lote("L1", 1, 100, 0)

	require.NoError(t, l.Consumir(decimal.NewFromInt(100)))
	assert.True(t, l.CantidadVendida.Equal(decimal.NewFromInt(100)))
	assert.True(t, l.CantidadDisponible.IsZero())
	assert.Equal(t, entity.LoteAgotado, l.Estado)

	// Ya agotado: cualquier consumo adicional falla
	err := l.Consumir(decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrCantidadLoteInsuficiente)
}

// Los estados administrativos no se pisan al recalcular.
func TestLote_RecalcularNoRevierteEstadosTerminales(t *testing.T) {
	l := lote("L1", 1, 10, 10)
	require.Equal(t, entity.LoteAgotado, l.Estado)

	l.CantidadProducida = decimal.NewFromInt(20)
	l.Recalcular()
	// disponible vuelve a ser positivo pero el estado terminal se queda
	assert.True(t, l.CantidadDisponible.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, entity.LoteAgotado, l.Estado)

	d := lote("L2", 2, 10, 0)
	d.Estado = entity.LoteDanado
	d.Recalcular()
	assert.Equal(t, entity.LoteDanado, d.Estado)
}
