package repository

import "context"

// Repos agrupa los repositorios atados a una misma transacción.
type Repos struct {
	Productos   ProductoRepository
	Categorias  CategoriaRepository
	Lotes       LoteRepository
	Stocks      StockRepository
	Movimientos MovimientoRepository
	Ventas      VentaRepository
	Pagos       PagoRepository
	Alertas     AlertaRepository
	Parametros  ParametroRepository
	Usuarios    UsuarioRepository
	Secuencias  SecuenciaRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Commit si fn devuelve nil, Rollback si no.
// Garantiza atomicidad para las secuencias multi-paso del motor de inventario
// (venta + consumo de lotes + movimientos, pago + saldos, regeneración de alertas).
type TxRunner interface {
	Run(ctx context.Context, fn func(r *Repos) error) error
}
