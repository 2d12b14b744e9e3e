package ventas_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scalimentos/inventario-api/internal/application/dto"
	"github.com/scalimentos/inventario-api/internal/application/ventas"
	"github.com/scalimentos/inventario-api/internal/domain"
	"github.com/scalimentos/inventario-api/internal/domain/entity"
	"github.com/scalimentos/inventario-api/internal/infrastructure/memoria"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	productoID = "aaaaaaaa-0000-0000-0000-000000000001"
	loteViejo  = "bbbbbbbb-0000-0000-0000-000000000001"
	loteNuevo  = "bbbbbbbb-0000-0000-0000-000000000002"
	clienteID  = "cccccccc-0000-0000-0000-000000000001"
	vendedorID = "cccccccc-0000-0000-0000-000000000002"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// sembrarVenta prepara un producto con dos lotes disponibles (100 + 50) y el
// límite de deuda configurado.
func sembrarVenta(t *testing.T, limiteDeuda string) *memoria.Almacen {
	t.Helper()
	a := memoria.NuevoAlmacen()

	a.Productos[productoID] = &entity.Producto{
		ID:          productoID,
		Nombre:      "Yogur de fresa 1L",
		PrecioVenta: dec("25"),
		Costo:       dec("10"),
	}
	a.Stocks[productoID] = &entity.Stock{
		ID:              "stock-1",
		ProductoID:      productoID,
		StockActual:     dec("150"),
		StockDisponible: dec("150"),
	}
	a.Lotes[loteViejo] = &entity.LoteProduccion{
		ID:                 loteViejo,
		ProductoID:         productoID,
		CodigoLote:         "LOTE-000001",
		FechaProduccion:    time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		CantidadProducida:  dec("100"),
		CantidadDisponible: dec("100"),
		Estado:             entity.LoteDisponible,
	}
	a.Lotes[loteNuevo] = &entity.LoteProduccion{
		ID:                 loteNuevo,
		ProductoID:         productoID,
		CodigoLote:         "LOTE-000002",
		FechaProduccion:    time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
		CantidadProducida:  dec("50"),
		CantidadDisponible: dec("50"),
		Estado:             entity.LoteDisponible,
	}
	a.Parametros[entity.ParamLimiteDeudas] = &entity.Parametro{
		ID:     "param-deuda",
		Nombre: entity.ParamLimiteDeudas,
		Valor:  dec(limiteDeuda),
	}
	return a
}

func reqVentaBase() dto.CrearVentaRequest {
	return dto.CrearVentaRequest{
		ClienteID:  clienteID,
		VendedorID: vendedorID,
		Productos: []dto.VentaLineaRequest{{
			ProductoID: productoID,
			Cantidad:   dec("120"),
			Lotes: []dto.LoteVentaRequest{
				{LoteID: loteViejo, Cantidad: dec("100")},
				{LoteID: loteNuevo, Cantidad: dec("50")},
			},
		}},
		PagoInicial: dec("1000"),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear venta
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: venta de 120 unidades sobre lotes de 100 y 50 — el lote más antiguo
// se agota y el más nuevo aporta solo las 20 restantes.
func TestCrearVenta_AsignaLotesDelMasAntiguoAlMasNuevo(t *testing.T) {
	a := sembrarVenta(t, "100000")
	uc := ventas.NewVentaUseCase(&memoria.TxRunner{Almacen: a}, a.Repos().Ventas)

	resp, err := uc.Crear(context.Background(), reqVentaBase(), vendedorID)
	require.NoError(t, err)
	require.NotNil(t, resp)

	// Total y saldo: 120 × 25 = 3000, pago inicial 1000.
	assert.True(t, resp.Venta.TotalVenta.Equal(dec("3000")), "total = %s", resp.Venta.TotalVenta)
	assert.True(t, resp.Venta.SaldoVenta.Equal(dec("2000")), "saldo = %s", resp.Venta.SaldoVenta)
	assert.Equal(t, entity.VentaPendiente, resp.Venta.Estado)
	assert.Empty(t, resp.AdvertenciaDeuda)

	// Consumo FIFO: 100 del lote antiguo, 20 del nuevo.
	require.Len(t, resp.LotesUsados, 2)
	assert.Equal(t, loteViejo, resp.LotesUsados[0].LoteID)
	assert.True(t, resp.LotesUsados[0].CantidadUsada.Equal(dec("100")))
	assert.Equal(t, loteNuevo, resp.LotesUsados[1].LoteID)
	assert.True(t, resp.LotesUsados[1].CantidadUsada.Equal(dec("20")))

	// El lote antiguo queda agotado, el nuevo con 30.
	assert.Equal(t, entity.LoteAgotado, a.Lotes[loteViejo].Estado)
	assert.True(t, a.Lotes[loteViejo].CantidadDisponible.IsZero())
	assert.True(t, a.Lotes[loteNuevo].CantidadDisponible.Equal(dec("30")))

	// Contador y disponible bajan juntos: 150 - 120 = 30.
	assert.True(t, a.Stocks[productoID].StockActual.Equal(dec("30")))
	assert.True(t, a.Stocks[productoID].StockDisponible.Equal(dec("30")))

	// Cada asignación deja su movimiento de salida con costo a precio de venta.
	var salidas []*entity.MovimientoInventario
	for _, m := range a.Movimientos {
		if m.TipoMovimiento == entity.MovimientoSalida && m.Razon == entity.RazonVenta {
			salidas = append(salidas, m)
		}
	}
	require.Len(t, salidas, 2)
	costos := map[string]decimal.Decimal{}
	for _, m := range salidas {
		costos[m.LoteID] = m.CostoMovimiento
	}
	assert.True(t, costos[loteViejo].Equal(dec("2500")), "100 × 25")
	assert.True(t, costos[loteNuevo].Equal(dec("500")), "20 × 25")

	// La venta quedó persistida con sus asignaciones.
	guardada := a.Ventas[resp.Venta.ID]
	require.NotNil(t, guardada)
	require.Len(t, guardada.Productos, 1)
	assert.Len(t, guardada.Productos[0].Lotes, 2)
}

// Caso 2: el precio unitario explícito manda sobre el precio de lista.
func TestCrearVenta_PrecioUnitarioExplicito(t *testing.T) {
	a := sembrarVenta(t, "100000")
	uc := ventas.NewVentaUseCase(&memoria.TxRunner{Almacen: a}, a.Repos().Ventas)

	precio := dec("30")
	req := reqVentaBase()
	req.Productos[0].PrecioUnitario = &precio
	req.PagoInicial = decimal.Zero

	resp, err := uc.Crear(context.Background(), req, vendedorID)
	require.NoError(t, err)
	assert.True(t, resp.Venta.TotalVenta.Equal(dec("3600")), "120 × 30")
}

// Caso 3: cliente con deuda previa por encima del límite — la venta procede
// y la respuesta lleva la advertencia. La venta que se está creando no cuenta
// para la deuda medida.
func TestCrearVenta_AdvierteDeudaSobreLimite(t *testing.T) {
	a := sembrarVenta(t, "500")
	a.Ventas["venta-previa"] = &entity.Venta{
		ID: "venta-previa", ClienteID: clienteID, Estado: entity.VentaPendiente,
		FechaVenta: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		TotalVenta: dec("800"), SaldoVenta: dec("800"),
	}
	uc := ventas.NewVentaUseCase(&memoria.TxRunner{Almacen: a}, a.Repos().Ventas)

	resp, err := uc.Crear(context.Background(), reqVentaBase(), vendedorID)
	require.NoError(t, err, "la deuda excedida advierte, no bloquea")
	assert.NotEmpty(t, resp.AdvertenciaDeuda)
	assert.NotNil(t, a.Ventas[resp.Venta.ID], "la venta debe quedar registrada igualmente")
}

// Caso 3b: sin deuda previa no hay advertencia aunque la venta nueva supere el
// límite por sí sola.
func TestCrearVenta_SinDeudaPreviaNoAdvierte(t *testing.T) {
	a := sembrarVenta(t, "500")
	uc := ventas.NewVentaUseCase(&memoria.TxRunner{Almacen: a}, a.Repos().Ventas)

	resp, err := uc.Crear(context.Background(), reqVentaBase(), vendedorID)
	require.NoError(t, err)
	assert.Empty(t, resp.AdvertenciaDeuda)
}

// Caso 4: pago inicial mayor que el total — se rechaza y nada queda tocado.
func TestCrearVenta_PagoInicialMayorQueTotal_Rollback(t *testing.T) {
	a := sembrarVenta(t, "100000")
	uc := ventas.NewVentaUseCase(&memoria.TxRunner{Almacen: a}, a.Repos().Ventas)

	req := reqVentaBase()
	req.PagoInicial = dec("99999")

	_, err := uc.Crear(context.Background(), req, vendedorID)
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)

	// Rollback completo: stock, lotes y movimientos como al principio.
	assert.True(t, a.Stocks[productoID].StockActual.Equal(dec("150")))
	assert.True(t, a.Lotes[loteViejo].CantidadDisponible.Equal(dec("100")))
	assert.Empty(t, a.Movimientos)
	assert.Empty(t, a.Ventas)
}

// Caso 5: los lotes ofrecidos no cubren la cantidad solicitada.
func TestCrearVenta_CoberturaInsuficiente(t *testing.T) {
	a := sembrarVenta(t, "100000")
	uc := ventas.NewVentaUseCase(&memoria.TxRunner{Almacen: a}, a.Repos().Ventas)

	req := reqVentaBase()
	req.Productos[0].Cantidad = dec("200")

	_, err := uc.Crear(context.Background(), req, vendedorID)
	require.ErrorIs(t, err, domain.ErrCoberturaLotesInsuficiente)
	assert.Empty(t, a.Ventas)
}

// Caso 6: ofrecer de un lote más de lo que tiene disponible.
func TestCrearVenta_LoteOfrecidoExcedeDisponible(t *testing.T) {
	a := sembrarVenta(t, "100000")
	uc := ventas.NewVentaUseCase(&memoria.TxRunner{Almacen: a}, a.Repos().Ventas)

	req := reqVentaBase()
	req.Productos[0].Lotes[1].Cantidad = dec("80") // el lote nuevo solo tiene 50

	_, err := uc.Crear(context.Background(), req, vendedorID)
	require.ErrorIs(t, err, domain.ErrCantidadLoteInsuficiente)
}

// Caso 7: un lote de otro producto o no disponible invalida la venta.
func TestCrearVenta_LoteNoDisponible(t *testing.T) {
	a := sembrarVenta(t, "100000")
	a.Lotes[loteViejo].Estado = entity.LoteExpirado
	uc := ventas.NewVentaUseCase(&memoria.TxRunner{Almacen: a}, a.Repos().Ventas)

	_, err := uc.Crear(context.Background(), reqVentaBase(), vendedorID)
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// Caso 8: falta el parámetro de límite de deuda — la operación aborta entera.
func TestCrearVenta_SinParametroLimiteDeuda(t *testing.T) {
	a := sembrarVenta(t, "100000")
	delete(a.Parametros, entity.ParamLimiteDeudas)
	uc := ventas.NewVentaUseCase(&memoria.TxRunner{Almacen: a}, a.Repos().Ventas)

	_, err := uc.Crear(context.Background(), reqVentaBase(), vendedorID)
	require.ErrorIs(t, err, domain.ErrParametroNoConfigurado)
	assert.Empty(t, a.Ventas)
	assert.True(t, a.Stocks[productoID].StockActual.Equal(dec("150")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualizar y eliminar
// ──────────────────────────────────────────────────────────────────────────────

func TestActualizarVenta_PagoInicialAjustaSaldo(t *testing.T) {
	a := sembrarVenta(t, "100000")
	uc := ventas.NewVentaUseCase(&memoria.TxRunner{Almacen: a}, a.Repos().Ventas)

	resp, err := uc.Crear(context.Background(), reqVentaBase(), vendedorID)
	require.NoError(t, err)

	// Subir el pago inicial de 1000 a 3000 deja la venta saldada.
	nuevo := dec("3000")
	v, err := uc.Actualizar(context.Background(), resp.Venta.ID, dto.ActualizarVentaRequest{PagoInicial: &nuevo})
	require.NoError(t, err)
	assert.True(t, v.SaldoVenta.IsZero())
	assert.Equal(t, entity.VentaCompletada, v.Estado)

	// Más que el total se rechaza: el saldo no puede ser negativo.
	excesivo := dec("5000")
	_, err = uc.Actualizar(context.Background(), resp.Venta.ID, dto.ActualizarVentaRequest{PagoInicial: &excesivo})
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestEliminarVenta_BloqueadaMientrasQuedenMovimientos(t *testing.T) {
	a := sembrarVenta(t, "100000")
	uc := ventas.NewVentaUseCase(&memoria.TxRunner{Almacen: a}, a.Repos().Ventas)

	resp, err := uc.Crear(context.Background(), reqVentaBase(), vendedorID)
	require.NoError(t, err)

	// Los movimientos de la venta siguen en el registro.
	err = uc.Eliminar(context.Background(), resp.Venta.ID)
	require.ErrorIs(t, err, domain.ErrVentaEnUso)
	assert.NotNil(t, a.Ventas[resp.Venta.ID])

	// Corregido el registro (movimientos eliminados), la venta ya se puede borrar.
	for id := range a.Movimientos {
		delete(a.Movimientos, id)
	}
	require.NoError(t, uc.Eliminar(context.Background(), resp.Venta.ID))
	assert.Nil(t, a.Ventas[resp.Venta.ID])
}

func TestPendientesPorCliente_MasAntiguaPrimero(t *testing.T) {
	a := sembrarVenta(t, "100000")
	a.Ventas["v1"] = &entity.Venta{
		ID: "v1", ClienteID: clienteID, Estado: entity.VentaPendiente,
		FechaVenta: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		TotalVenta: dec("200"), SaldoVenta: dec("200"),
	}
	a.Ventas["v2"] = &entity.Venta{
		ID: "v2", ClienteID: clienteID, Estado: entity.VentaPendiente,
		FechaVenta: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		TotalVenta: dec("300"), SaldoVenta: dec("300"),
	}
	a.Ventas["v3"] = &entity.Venta{
		ID: "v3", ClienteID: clienteID, Estado: entity.VentaCompletada,
		FechaVenta: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		TotalVenta: dec("100"), SaldoVenta: decimal.Zero,
	}
	uc := ventas.NewVentaUseCase(&memoria.TxRunner{Almacen: a}, a.Repos().Ventas)

	pendientes, err := uc.PendientesPorCliente(context.Background(), clienteID)
	require.NoError(t, err)
	require.Len(t, pendientes, 2, "las saldadas no cuentan")
	assert.Equal(t, "v2", pendientes[0].VentaID, "la más antigua primero")
	assert.Equal(t, "v1", pendientes[1].VentaID)
}
