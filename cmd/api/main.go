package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/scalimentos/inventario-api/internal/application/alertas"
	"github.com/scalimentos/inventario-api/internal/application/auth"
	"github.com/scalimentos/inventario-api/internal/application/catalogo"
	"github.com/scalimentos/inventario-api/internal/application/inventario"
	"github.com/scalimentos/inventario-api/internal/application/parametros"
	"github.com/scalimentos/inventario-api/internal/application/reportes"
	"github.com/scalimentos/inventario-api/internal/application/ventas"
	"github.com/scalimentos/inventario-api/internal/infrastructure/postgres"
	httpRouter "github.com/scalimentos/inventario-api/internal/interfaces/http"
	"github.com/scalimentos/inventario-api/pkg/config"
	"github.com/scalimentos/inventario-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	txRunner := postgres.NewTxRunner(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	loteRepo := postgres.NewLoteRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	pagoRepo := postgres.NewPagoRepository(pool)
	alertaRepo := postgres.NewAlertaRepository(pool)
	parametroRepo := postgres.NewParametroRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	reporteRepo := postgres.NewReporteRepository(pool)

	parametroUC := parametros.New(parametroRepo)
	if err := parametroUC.Inicializar(ctx); err != nil {
		log.Fatal().Err(err).Msg("sembrar parámetros operativos")
	}

	productoUC := catalogo.NewProductoUseCase(txRunner, productoRepo, categoriaRepo)
	categoriaUC := catalogo.NewCategoriaUseCase(categoriaRepo)
	loteUC := inventario.NewLoteUseCase(txRunner, loteRepo)
	stockUC := inventario.NewStockUseCase(stockRepo)
	movimientoUC := inventario.NewMovimientoUseCase(txRunner, movimientoRepo)
	ventaUC := ventas.NewVentaUseCase(txRunner, ventaRepo)
	pagoUC := ventas.NewPagoUseCase(txRunner, pagoRepo)
	alertaUC := alertas.New(txRunner, alertaRepo)
	reporteUC := reportes.New(reporteRepo, productoRepo)
	authUC := auth.New(usuarioRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductoUC:   productoUC,
		CategoriaUC:  categoriaUC,
		LoteUC:       loteUC,
		StockUC:      stockUC,
		MovimientoUC: movimientoUC,
		VentaUC:      ventaUC,
		PagoUC:       pagoUC,
		AlertaUC:     alertaUC,
		ParametroUC:  parametroUC,
		ReporteUC:    reporteUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
