package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/scalimentos/inventario-api/internal/application/auth"
	"github.com/scalimentos/inventario-api/internal/application/dto"
)

// AuthHandler maneja registro y login.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos del usuario"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := validarBody(c, &in); err != nil {
		return responderError(c, err)
	}
	u, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": u.ID, "email": u.Email, "rol": u.Rol})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := validarBody(c, &in); err != nil {
		return responderError(c, err)
	}
	resp, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(resp)
}

// GetUsuario devuelve un usuario por ID.
func (h *AuthHandler) GetUsuario(c *fiber.Ctx) error {
	u, err := h.uc.ObtenerUsuario(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(u)
}

// ListUsuarios lista usuarios con paginación.
func (h *AuthHandler) ListUsuarios(c *fiber.Ctx) error {
	usuarios, err := h.uc.ListarUsuarios(c.Context(), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(usuarios)
}
