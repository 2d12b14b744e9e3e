// Package reportes expone las series históricas de solo lectura que consume
// el colaborador de pronósticos.
package reportes

import (
	"context"

	"github.com/scalimentos/inventario-api/internal/domain"
	"github.com/scalimentos/inventario-api/internal/domain/repository"
)

// UseCase consultas de series históricas por producto.
type UseCase struct {
	reportes  repository.ReporteRepository
	productos repository.ProductoRepository
}

func New(reportes repository.ReporteRepository, productos repository.ProductoRepository) *UseCase {
	return &UseCase{reportes: reportes, productos: productos}
}

func validarAgrupacion(agrupacion string) error {
	if agrupacion != repository.AgrupacionDia && agrupacion != repository.AgrupacionMes {
		return domain.ErrEntradaInvalida
	}
	return nil
}

func (uc *UseCase) existeProducto(id string) error {
	p, err := uc.productos.ObtenerPorID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNoEncontrado
	}
	return nil
}

// VentasHistoricas devuelve el total vendido del producto por periodo, en
// orden ascendente.
func (uc *UseCase) VentasHistoricas(ctx context.Context, productoID, agrupacion string) ([]repository.PuntoSerie, error) {
	if err := validarAgrupacion(agrupacion); err != nil {
		return nil, err
	}
	if err := uc.existeProducto(productoID); err != nil {
		return nil, err
	}
	return uc.reportes.VentasHistoricas(productoID, agrupacion)
}

// ProduccionHistorica devuelve la cantidad producida del producto por periodo,
// en orden ascendente.
func (uc *UseCase) ProduccionHistorica(ctx context.Context, productoID, agrupacion string) ([]repository.PuntoSerie, error) {
	if err := validarAgrupacion(agrupacion); err != nil {
		return nil, err
	}
	if err := uc.existeProducto(productoID); err != nil {
		return nil, err
	}
	return uc.reportes.ProduccionHistorica(productoID, agrupacion)
}
