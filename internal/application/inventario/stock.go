package inventario

import (
	"context"
	"time"

	"github.com/scalimentos/inventario-api/internal/application/dto"
	"github.com/scalimentos/inventario-api/internal/domain"
	"github.com/scalimentos/inventario-api/internal/domain/entity"
	"github.com/scalimentos/inventario-api/internal/domain/repository"
)

// StockUseCase consultas y ediciones del registro de existencias.
type StockUseCase struct {
	stocks repository.StockRepository
}

func NewStockUseCase(stocks repository.StockRepository) *StockUseCase {
	return &StockUseCase{stocks: stocks}
}

// Listar devuelve las existencias de todos los productos.
func (uc *StockUseCase) Listar(ctx context.Context) ([]*repository.StockConProducto, error) {
	return uc.stocks.Listar()
}

// ObtenerPorProducto devuelve las existencias de un producto.
func (uc *StockUseCase) ObtenerPorProducto(ctx context.Context, productoID string) (*entity.Stock, error) {
	s, err := uc.stocks.ObtenerPorProducto(productoID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNoEncontrado
	}
	return s, nil
}

// Actualizar edita umbrales y contadores del stock de un producto. Es un
// override administrativo: no genera movimientos.
func (uc *StockUseCase) Actualizar(ctx context.Context, productoID string, in dto.ActualizarStockRequest) (*entity.Stock, error) {
	s, err := uc.stocks.ObtenerPorProducto(productoID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNoEncontrado
	}
	if in.StockActual != nil {
		if in.StockActual.IsNegative() {
			return nil, domain.ErrEntradaInvalida
		}
		s.StockActual = *in.StockActual
	}
	if in.StockReservado != nil {
		if in.StockReservado.IsNegative() {
			return nil, domain.ErrEntradaInvalida
		}
		s.StockReservado = *in.StockReservado
	}
	if in.StockMinimo != nil {
		if in.StockMinimo.IsNegative() {
			return nil, domain.ErrEntradaInvalida
		}
		s.StockMinimo = *in.StockMinimo
	}
	if in.StockMaximo != nil {
		if in.StockMaximo.IsNegative() {
			return nil, domain.ErrEntradaInvalida
		}
		s.StockMaximo = *in.StockMaximo
	}
	s.UpdatedAt = time.Now()
	if err := uc.stocks.Actualizar(s); err != nil {
		return nil, err
	}
	return s, nil
}
