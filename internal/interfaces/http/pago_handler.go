package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/scalimentos/inventario-api/internal/application/dto"
	"github.com/scalimentos/inventario-api/internal/application/ventas"
)

// PagoHandler maneja las peticiones HTTP de pagos (protegido).
type PagoHandler struct {
	uc *ventas.PagoUseCase
}

// NewPagoHandler construye el handler.
func NewPagoHandler(uc *ventas.PagoUseCase) *PagoHandler {
	return &PagoHandler{uc: uc}
}

// Create godoc
// @Summary      Aplicar pago
// @Description  Reparte el monto entre las ventas pendientes del cliente, de la más
//
//	antigua a la más reciente. Con ventas explícitas el monto debe igualar
//	la suma exacta de sus saldos.
//
// @Tags         pagos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearPagoRequest  true  "Datos del pago"
// @Success      201   {object}  dto.CrearPagoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pagos [post]
func (h *PagoHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearPagoRequest
	if err := validarBody(c, &in); err != nil {
		return responderError(c, err)
	}
	resp, err := h.uc.Aplicar(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListByCliente devuelve el historial de pagos de un cliente.
func (h *PagoHandler) ListByCliente(c *fiber.Ctx) error {
	pagos, err := h.uc.PorCliente(c.Context(), c.Params("clienteId"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(pagos)
}
