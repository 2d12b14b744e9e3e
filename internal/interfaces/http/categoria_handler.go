package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/scalimentos/inventario-api/internal/application/catalogo"
	"github.com/scalimentos/inventario-api/internal/application/dto"
)

// CategoriaHandler maneja las peticiones HTTP de categorías (protegido).
type CategoriaHandler struct {
	uc *catalogo.CategoriaUseCase
}

// NewCategoriaHandler construye el handler.
func NewCategoriaHandler(uc *catalogo.CategoriaUseCase) *CategoriaHandler {
	return &CategoriaHandler{uc: uc}
}

func (h *CategoriaHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearCategoriaRequest
	if err := validarBody(c, &in); err != nil {
		return responderError(c, err)
	}
	cat, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cat)
}

func (h *CategoriaHandler) List(c *fiber.Ctx) error {
	categorias, err := h.uc.Listar(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(categorias)
}

func (h *CategoriaHandler) GetByID(c *fiber.Ctx) error {
	cat, err := h.uc.ObtenerPorID(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(cat)
}

func (h *CategoriaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "categoría eliminada"})
}
