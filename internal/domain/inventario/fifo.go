// Package inventario contiene los algoritmos puros del motor de inventario:
// asignación FIFO de lotes y reparto de pagos entre ventas. Sin persistencia,
// para poder verificarlos de forma aislada.
package inventario

import (
	"sort"

	"github.com/scalimentos/inventario-api/internal/domain"
	"github.com/scalimentos/inventario-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// LoteCandidato es un lote elegido por el llamador con la cantidad que ofrece
// de él. La cantidad ofrecida puede exceder lo que termine consumiéndose.
type LoteCandidato struct {
	Lote     *entity.LoteProduccion
	Cantidad decimal.Decimal
}

// AsignarLotes reparte la cantidad solicitada entre los lotes candidatos
// consumiendo primero los de fecha de producción más antigua (FIFO).
// Reglas:
//   - cada candidato debe ofrecer como máximo su cantidad disponible
//     (ErrCantidadLoteInsuficiente);
//   - la suma ofrecida debe cubrir la solicitada (ErrCoberturaLotesInsuficiente);
//   - el exceso se permite: se consume min(ofrecido, restante) por lote y se
//     corta al cubrir la solicitud, así que los lotes más nuevos pueden quedar
//     sin tocar.
func AsignarLotes(solicitada decimal.Decimal, candidatos []LoteCandidato) ([]entity.AsignacionLote, error) {
	if !solicitada.GreaterThan(decimal.Zero) || len(candidatos) == 0 {
		return nil, domain.ErrEntradaInvalida
	}

	cobertura := decimal.Zero
	for _, c := range candidatos {
		if !c.Cantidad.GreaterThan(decimal.Zero) {
			return nil, domain.ErrEntradaInvalida
		}
		if c.Cantidad.GreaterThan(c.Lote.CantidadDisponible) {
			return nil, domain.ErrCantidadLoteInsuficiente
		}
		cobertura = cobertura.Add(c.Cantidad)
	}
	if cobertura.LessThan(solicitada) {
		return nil, domain.ErrCoberturaLotesInsuficiente
	}

	ordenados := make([]LoteCandidato, len(candidatos))
	copy(ordenados, candidatos)
	sort.SliceStable(ordenados, func(i, j int) bool {
		return ordenados[i].Lote.FechaProduccion.Before(ordenados[j].Lote.FechaProduccion)
	})

	var asignaciones []entity.AsignacionLote
	restante := solicitada
	for _, c := range ordenados {
		usar := decimal.Min(c.Cantidad, restante)
		asignaciones = append(asignaciones, entity.AsignacionLote{LoteID: c.Lote.ID, Cantidad: usar})
		restante = restante.Sub(usar)
		if restante.LessThanOrEqual(decimal.Zero) {
			break
		}
	}
	return asignaciones, nil
}
