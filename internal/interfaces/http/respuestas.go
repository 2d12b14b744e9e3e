package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/scalimentos/inventario-api/internal/application/dto"
	"github.com/scalimentos/inventario-api/internal/domain"
)

var validate = validator.New()

// validarBody parsea y valida el cuerpo JSON de la petición.
func validarBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return domain.ErrEntradaInvalida
	}
	if err := validate.Struct(out); err != nil {
		return domain.ErrEntradaInvalida
	}
	return nil
}

// mapaErrores asocia cada sentinel de dominio con su status HTTP y código de
// respuesta. 400 validación, 401/403 auth, 404 no encontrado, 409 conflicto de
// negocio; la configuración ausente y lo inesperado son 500 con códigos propios.
var mapaErrores = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrEntradaInvalida, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrCredenciales, fiber.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{domain.ErrNoAutorizado, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrProhibido, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrNoEncontrado, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrDuplicado, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrEmailEnUso, fiber.StatusConflict, "EMAIL_IN_USE"},
	{domain.ErrStockInsuficiente, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
	{domain.ErrCantidadLoteInsuficiente, fiber.StatusConflict, "INSUFFICIENT_LOT_QUANTITY"},
	{domain.ErrCoberturaLotesInsuficiente, fiber.StatusConflict, "INSUFFICIENT_LOT_COVERAGE"},
	{domain.ErrProducidaMenorQueVendida, fiber.StatusConflict, "PRODUCED_BELOW_SOLD"},
	{domain.ErrProductoEnUso, fiber.StatusConflict, "PRODUCT_IN_USE"},
	{domain.ErrLoteEnUso, fiber.StatusConflict, "LOT_IN_USE"},
	{domain.ErrVentaEnUso, fiber.StatusConflict, "SALE_IN_USE"},
	{domain.ErrVentaInmutable, fiber.StatusConflict, "SALE_IMMUTABLE"},
	{domain.ErrSinVentasPendientes, fiber.StatusConflict, "NO_PENDING_SALES"},
	{domain.ErrVentaDeOtroCliente, fiber.StatusConflict, "SALE_OF_OTHER_CLIENT"},
	{domain.ErrMontoNoCoincide, fiber.StatusConflict, "AMOUNT_MISMATCH"},
	{domain.ErrMontoExcedeDeuda, fiber.StatusConflict, "AMOUNT_EXCEEDS_DEBT"},
	{domain.ErrParametroNoConfigurado, fiber.StatusInternalServerError, "CONFIGURATION"},
}

// responderError traduce un error de caso de uso a la respuesta HTTP.
func responderError(c *fiber.Ctx, err error) error {
	for _, m := range mapaErrores {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
