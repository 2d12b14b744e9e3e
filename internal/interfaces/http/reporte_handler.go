package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/scalimentos/inventario-api/internal/application/reportes"
	"github.com/scalimentos/inventario-api/internal/domain/repository"
)

// ReporteHandler maneja las consultas de series históricas (protegido).
type ReporteHandler struct {
	uc *reportes.UseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *reportes.UseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// VentasHistoricas devuelve el total vendido del producto por día o mes.
func (h *ReporteHandler) VentasHistoricas(c *fiber.Ctx) error {
	serie, err := h.uc.VentasHistoricas(c.Context(), c.Params("productoId"), c.Query("agrupacion", repository.AgrupacionDia))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(serie)
}

// ProduccionHistorica devuelve la cantidad producida del producto por día o mes.
func (h *ReporteHandler) ProduccionHistorica(c *fiber.Ctx) error {
	serie, err := h.uc.ProduccionHistorica(c.Context(), c.Params("productoId"), c.Query("agrupacion", repository.AgrupacionDia))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(serie)
}
