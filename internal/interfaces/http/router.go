package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/scalimentos/inventario-api/internal/application/alertas"
	"github.com/scalimentos/inventario-api/internal/application/auth"
	"github.com/scalimentos/inventario-api/internal/application/catalogo"
	"github.com/scalimentos/inventario-api/internal/application/inventario"
	"github.com/scalimentos/inventario-api/internal/application/parametros"
	"github.com/scalimentos/inventario-api/internal/application/reportes"
	"github.com/scalimentos/inventario-api/internal/application/ventas"
	"github.com/scalimentos/inventario-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC   *catalogo.ProductoUseCase
	CategoriaUC  *catalogo.CategoriaUseCase
	LoteUC       *inventario.LoteUseCase
	StockUC      *inventario.StockUseCase
	MovimientoUC *inventario.MovimientoUseCase
	VentaUC      *ventas.VentaUseCase
	PagoUC       *ventas.PagoUseCase
	AlertaUC     *alertas.UseCase
	ParametroUC  *parametros.UseCase
	ReporteUC    *reportes.UseCase
	AuthUC       *auth.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API, agrupadas por rol.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	soloAdmin := RequireRole(entity.RolAdmin)
	adminOProduccion := RequireRole(entity.RolAdmin, entity.RolProduccion)
	adminOVendedor := RequireRole(entity.RolAdmin, entity.RolVendedor)

	// Usuarios (admin)
	usuarios := protected.Group("/usuarios", soloAdmin)
	usuarios.Get("/", authHandler.ListUsuarios)
	usuarios.Get("/:id", authHandler.GetUsuario)

	// Categorías (lectura general, escritura admin)
	categorias := protected.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Get("/", categoriaHandler.List)
	categorias.Get("/:id", categoriaHandler.GetByID)
	categorias.Post("/", soloAdmin, categoriaHandler.Create)
	categorias.Delete("/:id", soloAdmin, categoriaHandler.Delete)

	// Productos (lectura general, escritura admin)
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Post("/", soloAdmin, productoHandler.Create)
	productos.Put("/:id", soloAdmin, productoHandler.Update)
	productos.Delete("/:id", soloAdmin, productoHandler.Delete)

	// Lotes de producción (admin y producción)
	lotes := protected.Group("/lotes", adminOProduccion)
	loteHandler := NewLoteHandler(deps.LoteUC)
	lotes.Post("/", loteHandler.Create)
	lotes.Get("/", loteHandler.List)
	lotes.Get("/:id", loteHandler.GetByID)
	lotes.Put("/:id", loteHandler.Update)
	lotes.Delete("/:id", loteHandler.Delete)

	// Stock (lectura general, edición admin)
	stocks := protected.Group("/stocks")
	stockHandler := NewStockHandler(deps.StockUC)
	stocks.Get("/", stockHandler.List)
	stocks.Get("/:productoId", stockHandler.GetByProducto)
	stocks.Put("/:productoId", soloAdmin, stockHandler.Update)

	// Movimientos (admin y producción)
	movimientos := protected.Group("/movimientos", adminOProduccion)
	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC)
	movimientos.Post("/", movimientoHandler.Create)
	movimientos.Get("/", movimientoHandler.List)
	movimientos.Get("/:id", movimientoHandler.GetByID)
	movimientos.Put("/:id", movimientoHandler.Update)
	movimientos.Delete("/:id", movimientoHandler.Delete)

	// Historial de lotes y movimientos por producto
	productos.Get("/:productoId/lotes", adminOProduccion, loteHandler.ListByProducto)
	productos.Get("/:productoId/movimientos", adminOProduccion, movimientoHandler.ListByProducto)

	// Ventas (admin y vendedor)
	ventasGroup := protected.Group("/ventas", adminOVendedor)
	ventaHandler := NewVentaHandler(deps.VentaUC)
	ventasGroup.Post("/", ventaHandler.Create)
	ventasGroup.Get("/", ventaHandler.List)
	ventasGroup.Get("/:id", ventaHandler.GetByID)
	ventasGroup.Put("/:id", ventaHandler.Update)
	ventasGroup.Delete("/:id", ventaHandler.Delete)

	// Pagos (admin y vendedor)
	pagos := protected.Group("/pagos", adminOVendedor)
	pagoHandler := NewPagoHandler(deps.PagoUC)
	pagos.Post("/", pagoHandler.Create)

	// Consultas por cliente (admin y vendedor)
	clientes := protected.Group("/clientes", adminOVendedor)
	clientes.Get("/:clienteId/ventas-pendientes", ventaHandler.PendientesByCliente)
	clientes.Get("/:clienteId/pagos", pagoHandler.ListByCliente)

	// Alertas (admin y producción)
	alertasGroup := protected.Group("/alertas", adminOProduccion)
	alertaHandler := NewAlertaHandler(deps.AlertaUC)
	alertasGroup.Post("/regenerar", alertaHandler.Regenerate)
	alertasGroup.Get("/", alertaHandler.List)
	alertasGroup.Put("/:id/estado", alertaHandler.UpdateEstado)

	// Parámetros (admin)
	parametrosGroup := protected.Group("/parametros", soloAdmin)
	parametroHandler := NewParametroHandler(deps.ParametroUC)
	parametrosGroup.Get("/", parametroHandler.List)
	parametrosGroup.Get("/:id", parametroHandler.GetByID)
	parametrosGroup.Put("/:id", parametroHandler.Update)

	// Reportes (admin)
	reportesGroup := protected.Group("/reportes", soloAdmin)
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	reportesGroup.Get("/ventas/:productoId", reporteHandler.VentasHistoricas)
	reportesGroup.Get("/produccion/:productoId", reporteHandler.ProduccionHistorica)
}
