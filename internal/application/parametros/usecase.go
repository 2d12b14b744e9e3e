// Package parametros gestiona los umbrales numéricos que consumen las reglas
// de negocio. Un parámetro requerido ausente aborta la operación dependiente
// con un error de configuración; nunca se asume un valor por defecto.
package parametros

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/scalimentos/inventario-api/internal/domain"
	"github.com/scalimentos/inventario-api/internal/domain/entity"
	"github.com/scalimentos/inventario-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// UseCase operaciones sobre parámetros.
type UseCase struct {
	repo repository.ParametroRepository
}

// New construye el caso de uso.
func New(repo repository.ParametroRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Valor lee un parámetro requerido por nombre con el repositorio dado (pool o
// tx). La ausencia es fatal para la operación dependiente.
func Valor(repo repository.ParametroRepository, nombre string) (decimal.Decimal, error) {
	p, err := repo.ObtenerPorNombre(nombre)
	if err != nil {
		return decimal.Zero, err
	}
	if p == nil {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrParametroNoConfigurado, nombre)
	}
	return p.Valor, nil
}

// Obtener lee un parámetro requerido por nombre.
func (uc *UseCase) Obtener(ctx context.Context, nombre string) (decimal.Decimal, error) {
	return Valor(uc.repo, nombre)
}

// Listar devuelve todos los parámetros.
func (uc *UseCase) Listar(ctx context.Context) ([]*entity.Parametro, error) {
	return uc.repo.Listar()
}

// ObtenerPorID devuelve un parámetro por su ID.
func (uc *UseCase) ObtenerPorID(ctx context.Context, id string) (*entity.Parametro, error) {
	p, err := uc.repo.ObtenerPorID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNoEncontrado
	}
	return p, nil
}

// Actualizar cambia el valor y deja rastro de quién y cuándo. No valida rango.
func (uc *UseCase) Actualizar(ctx context.Context, id string, valor decimal.Decimal, actorID string) (*entity.Parametro, error) {
	p, err := uc.repo.ObtenerPorID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNoEncontrado
	}
	p.Valor = valor
	p.ActualizadoPor = actorID
	p.FechaActualizacion = time.Now()
	if err := uc.repo.Actualizar(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Inicializar siembra los parámetros operativos que falten. Los existentes no
// se tocan.
func (uc *UseCase) Inicializar(ctx context.Context) error {
	iniciales := []entity.Parametro{
		{Nombre: entity.ParamLimiteDeudas, Valor: decimal.NewFromInt(1000), Descripcion: "Límite de deudas permitido para un cliente"},
		{Nombre: entity.ParamDiasProximosAExpirar, Valor: decimal.NewFromInt(7), Descripcion: "Días para considerar que un producto está próximo a expirar"},
		{Nombre: entity.ParamStockMinimo, Valor: decimal.NewFromInt(50), Descripcion: "Stock mínimo para generar alertas de reabastecimiento"},
		{Nombre: entity.ParamStockMaximo, Valor: decimal.NewFromInt(2000), Descripcion: "Stock máximo para generar alertas de almacenamiento"},
		{Nombre: entity.ParamDiasAntesAlertaExpira, Valor: decimal.NewFromInt(5), Descripcion: "Días antes de la expiración para generar una alerta"},
		{Nombre: entity.ParamCantidadMinimaReabasto, Valor: decimal.NewFromInt(30), Descripcion: "Cantidad mínima para generar una alerta de reabastecimiento"},
	}
	for i := range iniciales {
		existente, err := uc.repo.ObtenerPorNombre(iniciales[i].Nombre)
		if err != nil {
			return err
		}
		if existente != nil {
			continue
		}
		iniciales[i].ID = uuid.New().String()
		iniciales[i].FechaActualizacion = time.Now()
		if err := uc.repo.Crear(&iniciales[i]); err != nil {
			return err
		}
	}
	return nil
}
