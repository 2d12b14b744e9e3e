package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/scalimentos/inventario-api/internal/application/dto"
	"github.com/scalimentos/inventario-api/internal/application/ventas"
	"github.com/scalimentos/inventario-api/internal/domain"
)

// VentaHandler maneja las peticiones HTTP de ventas (protegido).
type VentaHandler struct {
	uc *ventas.VentaUseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *ventas.VentaUseCase) *VentaHandler {
	return &VentaHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Asigna lotes FIFO, descuenta stock mediante movimientos de salida y
//
//	devuelve el detalle de lotes usados. Si el cliente supera el límite
//	de deuda la venta procede con una advertencia.
//
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearVentaRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.CrearVentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearVentaRequest
	if err := validarBody(c, &in); err != nil {
		return responderError(c, err)
	}
	resp, err := h.uc.Crear(c.Context(), in, GetUserID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	v, err := h.uc.ObtenerPorID(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(v)
}

func (h *VentaHandler) List(c *fiber.Ctx) error {
	lista, err := h.uc.Listar(c.Context(), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(lista)
}

// PendientesByCliente devuelve las ventas con saldo del cliente, la más
// antigua primero.
func (h *VentaHandler) PendientesByCliente(c *fiber.Ctx) error {
	pendientes, err := h.uc.PendientesPorCliente(c.Context(), c.Params("clienteId"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(pendientes)
}

// Update godoc
// @Summary      Actualizar venta
// @Description  Solo campos administrativos. Intentar cambiar líneas o lotes devuelve 409.
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.ActualizarVentaRequest  true  "Campos a actualizar"
// @Success      200   {object}  entity.Venta
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [put]
func (h *VentaHandler) Update(c *fiber.Ctx) error {
	// Las líneas son inmutables: un body que las incluya se rechaza entero.
	var crudo map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &crudo); err != nil {
		return responderError(c, domain.ErrEntradaInvalida)
	}
	if _, ok := crudo["productos"]; ok {
		return responderError(c, domain.ErrVentaInmutable)
	}
	var in dto.ActualizarVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return responderError(c, domain.ErrEntradaInvalida)
	}
	v, err := h.uc.Actualizar(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(v)
}

func (h *VentaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "venta eliminada"})
}
