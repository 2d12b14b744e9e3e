package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/scalimentos/inventario-api/internal/application/dto"
	"github.com/scalimentos/inventario-api/internal/application/inventario"
	"github.com/scalimentos/inventario-api/internal/domain"
)

// MovimientoHandler maneja las peticiones HTTP de movimientos de inventario (protegido).
type MovimientoHandler struct {
	uc *inventario.MovimientoUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *inventario.MovimientoUseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar movimiento de inventario
// @Description  ENTRADA/SALIDA con cantidad positiva, AJUSTE con signo. Salida sin stock suficiente devuelve 409.
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimientoRequest  true  "Datos del movimiento"
// @Success      201   {object}  entity.MovimientoInventario
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimientos [post]
func (h *MovimientoHandler) Create(c *fiber.Ctx) error {
	var in dto.RegistrarMovimientoRequest
	if err := validarBody(c, &in); err != nil {
		return responderError(c, err)
	}
	m, err := h.uc.Registrar(c.Context(), in, GetUserID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

func (h *MovimientoHandler) GetByID(c *fiber.Ctx) error {
	m, err := h.uc.ObtenerPorID(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(m)
}

// List acepta filtros opcionales desde/hasta en formato RFC 3339.
func (h *MovimientoHandler) List(c *fiber.Ctx) error {
	var desde, hasta *time.Time
	if v := c.Query("desde"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return responderError(c, domain.ErrEntradaInvalida)
		}
		desde = &t
	}
	if v := c.Query("hasta"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return responderError(c, domain.ErrEntradaInvalida)
		}
		hasta = &t
	}
	movimientos, err := h.uc.Listar(c.Context(), desde, hasta, c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(movimientos)
}

func (h *MovimientoHandler) ListByProducto(c *fiber.Ctx) error {
	movimientos, err := h.uc.ListarPorProducto(c.Context(), c.Params("productoId"), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(movimientos)
}

func (h *MovimientoHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return responderError(c, domain.ErrEntradaInvalida)
	}
	m, err := h.uc.Actualizar(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(m)
}

func (h *MovimientoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "movimiento eliminado"})
}
