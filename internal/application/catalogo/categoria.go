package catalogo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/scalimentos/inventario-api/internal/application/dto"
	"github.com/scalimentos/inventario-api/internal/domain"
	"github.com/scalimentos/inventario-api/internal/domain/entity"
	"github.com/scalimentos/inventario-api/internal/domain/repository"
)

// CategoriaUseCase operaciones sobre categorías.
type CategoriaUseCase struct {
	categorias repository.CategoriaRepository
}

func NewCategoriaUseCase(categorias repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{categorias: categorias}
}

// Crear da de alta una categoría.
func (uc *CategoriaUseCase) Crear(ctx context.Context, in dto.CrearCategoriaRequest) (*entity.Categoria, error) {
	now := time.Now()
	c := &entity.Categoria{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categorias.Crear(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Listar devuelve todas las categorías.
func (uc *CategoriaUseCase) Listar(ctx context.Context) ([]*entity.Categoria, error) {
	return uc.categorias.Listar()
}

// ObtenerPorID devuelve una categoría.
func (uc *CategoriaUseCase) ObtenerPorID(ctx context.Context, id string) (*entity.Categoria, error) {
	c, err := uc.categorias.ObtenerPorID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNoEncontrado
	}
	return c, nil
}

// Eliminar borra una categoría.
func (uc *CategoriaUseCase) Eliminar(ctx context.Context, id string) error {
	c, err := uc.categorias.ObtenerPorID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNoEncontrado
	}
	return uc.categorias.Eliminar(id)
}
