package inventario_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scalimentos/inventario-api/internal/application/dto"
	"github.com/scalimentos/inventario-api/internal/application/inventario"
	"github.com/scalimentos/inventario-api/internal/domain"
	"github.com/scalimentos/inventario-api/internal/domain/entity"
	"github.com/scalimentos/inventario-api/internal/infrastructure/memoria"
)

func nuevoMovimientoUC(a *memoria.Almacen) *inventario.MovimientoUseCase {
	return inventario.NewMovimientoUseCase(&memoria.TxRunner{Almacen: a}, a.Repos().Movimientos)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registrar movimientos
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: una entrada sin lote sube el contador y deja el registro con el
// costo por defecto (cantidad × costo unitario).
func TestRegistrarMovimiento_Entrada(t *testing.T) {
	a := sembrarInventario(t, "10")
	uc := nuevoMovimientoUC(a)

	m, err := uc.Registrar(context.Background(), dto.RegistrarMovimientoRequest{
		ProductoID:     productoID,
		TipoMovimiento: entity.MovimientoEntrada,
		Razon:          "COMPRA EXTERNA",
		Cantidad:       dec("15"),
		OrigenDestino:  "proveedor",
	}, usuarioID)
	require.NoError(t, err)

	assert.Equal(t, "MOV-000001", m.MovimientoID)
	assert.True(t, m.CostoMovimiento.Equal(dec("120")), "15 × 8")
	assert.True(t, a.Stocks[productoID].StockActual.Equal(dec("25")))
	assert.False(t, m.FechaMovimiento.IsZero())
}

// Caso 2: salida mayor que el stock actual.
func TestRegistrarMovimiento_SalidaInsuficiente(t *testing.T) {
	a := sembrarInventario(t, "10")
	uc := nuevoMovimientoUC(a)

	_, err := uc.Registrar(context.Background(), dto.RegistrarMovimientoRequest{
		ProductoID:     productoID,
		TipoMovimiento: entity.MovimientoSalida,
		Razon:          "MERMA",
		Cantidad:       dec("11"),
	}, usuarioID)
	require.ErrorIs(t, err, domain.ErrStockInsuficiente)

	assert.True(t, a.Stocks[productoID].StockActual.Equal(dec("10")), "el stock no se toca")
	assert.Empty(t, a.Movimientos)
}

// Caso 3: una salida con lote consume el lote y recalcula el disponible.
func TestRegistrarMovimiento_SalidaConLote(t *testing.T) {
	a := sembrarInventario(t, "20")
	a.Lotes["lote-1"] = &entity.LoteProduccion{
		ID: "lote-1", ProductoID: productoID, CodigoLote: "LOTE-000001",
		CantidadProducida: dec("20"), CantidadDisponible: dec("20"),
		Estado: entity.LoteDisponible,
	}
	uc := nuevoMovimientoUC(a)

	_, err := uc.Registrar(context.Background(), dto.RegistrarMovimientoRequest{
		ProductoID:     productoID,
		LoteID:         "lote-1",
		TipoMovimiento: entity.MovimientoSalida,
		Razon:          "MERMA",
		Cantidad:       dec("5"),
	}, usuarioID)
	require.NoError(t, err)

	assert.True(t, a.Lotes["lote-1"].CantidadDisponible.Equal(dec("15")))
	assert.True(t, a.Stocks[productoID].StockActual.Equal(dec("15")))
	assert.True(t, a.Stocks[productoID].StockDisponible.Equal(dec("15")))
}

// Caso 4: el lote indicado pertenece a otro producto.
func TestRegistrarMovimiento_LoteDeOtroProducto(t *testing.T) {
	a := sembrarInventario(t, "20")
	a.Lotes["lote-ajeno"] = &entity.LoteProduccion{
		ID: "lote-ajeno", ProductoID: "otro-producto",
		CantidadProducida: dec("5"), CantidadDisponible: dec("5"),
		Estado: entity.LoteDisponible,
	}
	uc := nuevoMovimientoUC(a)

	_, err := uc.Registrar(context.Background(), dto.RegistrarMovimientoRequest{
		ProductoID:     productoID,
		LoteID:         "lote-ajeno",
		TipoMovimiento: entity.MovimientoSalida,
		Razon:          "MERMA",
		Cantidad:       dec("1"),
	}, usuarioID)
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// Caso 5: ajustes con signo — el negativo que dejaría el stock bajo cero se
// rechaza, el cero también.
func TestRegistrarMovimiento_Ajustes(t *testing.T) {
	a := sembrarInventario(t, "10")
	uc := nuevoMovimientoUC(a)

	// Ajuste negativo válido.
	_, err := uc.Registrar(context.Background(), dto.RegistrarMovimientoRequest{
		ProductoID:     productoID,
		TipoMovimiento: entity.MovimientoAjuste,
		Razon:          "CONTEO FISICO",
		Cantidad:       dec("-4"),
	}, usuarioID)
	require.NoError(t, err)
	assert.True(t, a.Stocks[productoID].StockActual.Equal(dec("6")))

	// Por debajo de cero: rechazado.
	_, err = uc.Registrar(context.Background(), dto.RegistrarMovimientoRequest{
		ProductoID:     productoID,
		TipoMovimiento: entity.MovimientoAjuste,
		Razon:          "CONTEO FISICO",
		Cantidad:       dec("-7"),
	}, usuarioID)
	require.ErrorIs(t, err, domain.ErrStockInsuficiente)

	// Cantidad cero: rechazada.
	_, err = uc.Registrar(context.Background(), dto.RegistrarMovimientoRequest{
		ProductoID:     productoID,
		TipoMovimiento: entity.MovimientoAjuste,
		Razon:          "CONTEO FISICO",
		Cantidad:       decimal.Zero,
	}, usuarioID)
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// Caso 6: producto inexistente.
func TestRegistrarMovimiento_ProductoInexistente(t *testing.T) {
	a := sembrarInventario(t, "10")
	uc := nuevoMovimientoUC(a)

	_, err := uc.Registrar(context.Background(), dto.RegistrarMovimientoRequest{
		ProductoID:     "no-existe",
		TipoMovimiento: entity.MovimientoEntrada,
		Razon:          "COMPRA",
		Cantidad:       dec("1"),
	}, usuarioID)
	require.ErrorIs(t, err, domain.ErrNoEncontrado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Corrección y borrado del registro
// ──────────────────────────────────────────────────────────────────────────────

// La corrección toca solo metadatos; cantidades y efectos quedan como están.
func TestActualizarMovimiento_SoloMetadatos(t *testing.T) {
	a := sembrarInventario(t, "10")
	uc := nuevoMovimientoUC(a)

	m, err := uc.Registrar(context.Background(), dto.RegistrarMovimientoRequest{
		ProductoID:     productoID,
		TipoMovimiento: entity.MovimientoEntrada,
		Razon:          "COMPRA",
		Cantidad:       dec("5"),
	}, usuarioID)
	require.NoError(t, err)

	razon := "COMPRA EXTERNA"
	destino := "almacen-2"
	actualizado, err := uc.Actualizar(context.Background(), m.ID, dto.ActualizarMovimientoRequest{
		Razon:         &razon,
		OrigenDestino: &destino,
	})
	require.NoError(t, err)
	assert.Equal(t, "COMPRA EXTERNA", actualizado.Razon)
	assert.Equal(t, "almacen-2", actualizado.OrigenDestino)
	assert.True(t, actualizado.Cantidad.Equal(dec("5")))
	assert.True(t, a.Stocks[productoID].StockActual.Equal(dec("15")), "la corrección no re-ejecuta efectos")
}

// El borrado retira el registro sin revertir sus efectos sobre el stock.
func TestEliminarMovimiento_NoRevierteEfectos(t *testing.T) {
	a := sembrarInventario(t, "10")
	uc := nuevoMovimientoUC(a)

	m, err := uc.Registrar(context.Background(), dto.RegistrarMovimientoRequest{
		ProductoID:     productoID,
		TipoMovimiento: entity.MovimientoEntrada,
		Razon:          "COMPRA",
		Cantidad:       dec("5"),
	}, usuarioID)
	require.NoError(t, err)

	require.NoError(t, uc.Eliminar(context.Background(), m.ID))
	assert.Empty(t, a.Movimientos)
	assert.True(t, a.Stocks[productoID].StockActual.Equal(dec("15")))

	err = uc.Eliminar(context.Background(), m.ID)
	require.ErrorIs(t, err, domain.ErrNoEncontrado)
}
