package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/scalimentos/inventario-api/internal/application/dto"
	"github.com/scalimentos/inventario-api/internal/application/inventario"
	"github.com/scalimentos/inventario-api/internal/domain"
)

// StockHandler maneja las peticiones HTTP de existencias (protegido).
type StockHandler struct {
	uc *inventario.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventario.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

func (h *StockHandler) List(c *fiber.Ctx) error {
	stocks, err := h.uc.Listar(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(stocks)
}

func (h *StockHandler) GetByProducto(c *fiber.Ctx) error {
	stock, err := h.uc.ObtenerPorProducto(c.Context(), c.Params("productoId"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(stock)
}

func (h *StockHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarStockRequest
	if err := c.BodyParser(&in); err != nil {
		return responderError(c, domain.ErrEntradaInvalida)
	}
	stock, err := h.uc.Actualizar(c.Context(), c.Params("productoId"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(stock)
}
