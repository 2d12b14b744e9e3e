package catalogo_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scalimentos/inventario-api/internal/application/catalogo"
	"github.com/scalimentos/inventario-api/internal/application/dto"
	"github.com/scalimentos/inventario-api/internal/domain"
	"github.com/scalimentos/inventario-api/internal/domain/entity"
	"github.com/scalimentos/inventario-api/internal/infrastructure/memoria"
)

const categoriaID = "dddddddd-0000-0000-0000-000000000001"

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sembrarCatalogo(t *testing.T) *memoria.Almacen {
	t.Helper()
	a := memoria.NuevoAlmacen()
	a.Categorias[categoriaID] = &entity.Categoria{ID: categoriaID, Nombre: "Lácteos"}
	return a
}

func nuevoProductoUC(a *memoria.Almacen) *catalogo.ProductoUseCase {
	r := a.Repos()
	return catalogo.NewProductoUseCase(&memoria.TxRunner{Almacen: a}, r.Productos, r.Categorias)
}

func reqProducto(nombre string) dto.CrearProductoRequest {
	return dto.CrearProductoRequest{
		Nombre:         nombre,
		CategoriaID:    categoriaID,
		PrecioVenta:    dec("25"),
		Costo:          dec("10"),
		UnidadMedida:   "unidades",
		DiasExpiracion: 30,
	}
}

// El alta genera el SKU normalizado (mayúsculas, sin acentos, guiones) y deja
// el registro de stock en cero.
func TestCrearProducto_GeneraSKUYStockCero(t *testing.T) {
	a := sembrarCatalogo(t)
	uc := nuevoProductoUC(a)

	p, err := uc.Crear(context.Background(), reqProducto("Yogur de fresa"))
	require.NoError(t, err)

	assert.Equal(t, "SC-YOGUR-DE-FRESA-001", p.SKU)
	stock := a.Stocks[p.ID]
	require.NotNil(t, stock, "cada producto nace con su registro de stock")
	assert.True(t, stock.StockActual.IsZero())
	assert.True(t, stock.StockDisponible.IsZero())
}

func TestCrearProducto_SKUSinAcentosYSecuencial(t *testing.T) {
	a := sembrarCatalogo(t)
	uc := nuevoProductoUC(a)

	p1, err := uc.Crear(context.Background(), reqProducto("Café con leche"))
	require.NoError(t, err)
	assert.Equal(t, "SC-CAFE-CON-LECHE-001", p1.SKU)

	p2, err := uc.Crear(context.Background(), reqProducto("Queso añejo"))
	require.NoError(t, err)
	assert.Equal(t, "SC-QUESO-ANEJO-002", p2.SKU)
}

func TestCrearProducto_NombreDuplicado(t *testing.T) {
	a := sembrarCatalogo(t)
	uc := nuevoProductoUC(a)

	_, err := uc.Crear(context.Background(), reqProducto("Leche entera"))
	require.NoError(t, err)

	_, err = uc.Crear(context.Background(), reqProducto("Leche entera"))
	require.ErrorIs(t, err, domain.ErrDuplicado)
}

func TestCrearProducto_CategoriaInexistente(t *testing.T) {
	a := sembrarCatalogo(t)
	uc := nuevoProductoUC(a)

	req := reqProducto("Leche entera")
	req.CategoriaID = "no-existe"
	_, err := uc.Crear(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrNoEncontrado)
}

func TestCrearProducto_PrecioOCostoNoPositivos(t *testing.T) {
	a := sembrarCatalogo(t)
	uc := nuevoProductoUC(a)

	req := reqProducto("Leche entera")
	req.PrecioVenta = decimal.Zero
	_, err := uc.Crear(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)

	req = reqProducto("Leche entera")
	req.Costo = dec("-1")
	_, err = uc.Crear(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// El borrado se bloquea mientras existan lotes, movimientos o ventas del
// producto; sin referencias, producto y stock se van juntos.
func TestEliminarProducto_BloqueadoPorReferencias(t *testing.T) {
	a := sembrarCatalogo(t)
	uc := nuevoProductoUC(a)

	p, err := uc.Crear(context.Background(), reqProducto("Leche entera"))
	require.NoError(t, err)

	a.Lotes["lote-1"] = &entity.LoteProduccion{
		ID: "lote-1", ProductoID: p.ID, Estado: entity.LoteDisponible,
		CantidadProducida: dec("5"), CantidadDisponible: dec("5"),
	}
	err = uc.Eliminar(context.Background(), p.ID)
	require.ErrorIs(t, err, domain.ErrProductoEnUso)
	assert.NotNil(t, a.Productos[p.ID])

	delete(a.Lotes, "lote-1")
	require.NoError(t, uc.Eliminar(context.Background(), p.ID))
	assert.Nil(t, a.Productos[p.ID])
	assert.Nil(t, a.Stocks[p.ID], "el registro de stock se va con el producto")
}

func TestActualizarProducto_CamposOpcionales(t *testing.T) {
	a := sembrarCatalogo(t)
	uc := nuevoProductoUC(a)

	p, err := uc.Crear(context.Background(), reqProducto("Leche entera"))
	require.NoError(t, err)

	precio := dec("28")
	actualizado, err := uc.Actualizar(context.Background(), p.ID, dto.ActualizarProductoRequest{PrecioVenta: &precio})
	require.NoError(t, err)
	assert.True(t, actualizado.PrecioVenta.Equal(dec("28")))
	assert.Equal(t, p.SKU, actualizado.SKU, "el SKU no cambia al actualizar")

	negativo := dec("-5")
	_, err = uc.Actualizar(context.Background(), p.ID, dto.ActualizarProductoRequest{Costo: &negativo})
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)
}
