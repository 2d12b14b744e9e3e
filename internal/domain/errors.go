package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// La capa HTTP los mapea a códigos de estado; ningún caso de uso los envuelve
// en tipos propios: errors.Is alcanza para distinguirlos.
var (
	// Validación y existencia
	ErrEntradaInvalida = errors.New("entrada inválida")
	ErrNoEncontrado    = errors.New("recurso no encontrado")
	ErrDuplicado       = errors.New("recurso duplicado")

	// Conflictos de negocio (inventario)
	ErrStockInsuficiente          = errors.New("stock insuficiente")
	ErrCantidadLoteInsuficiente   = errors.New("la cantidad solicitada excede la disponible en el lote")
	ErrCoberturaLotesInsuficiente = errors.New("los lotes seleccionados no cubren la cantidad solicitada")
	ErrProducidaMenorQueVendida   = errors.New("la cantidad producida no puede ser menor que la ya vendida")
	ErrProductoEnUso              = errors.New("el producto tiene lotes, movimientos o ventas asociadas")
	ErrLoteEnUso                  = errors.New("el lote tiene movimientos o ventas asociadas")

	// Conflictos de negocio (ventas y pagos)
	ErrVentaEnUso          = errors.New("la venta tiene movimientos de inventario asociados")
	ErrVentaInmutable      = errors.New("las líneas de una venta no se pueden modificar")
	ErrSinVentasPendientes = errors.New("no hay ventas con saldo pendiente")
	ErrVentaDeOtroCliente  = errors.New("una o más ventas no pertenecen al cliente")
	ErrMontoNoCoincide     = errors.New("el monto pagado no coincide con la suma de los saldos")
	ErrMontoExcedeDeuda    = errors.New("el monto pagado excede la deuda total del cliente")

	// Configuración (corrige el operador, no el cliente)
	ErrParametroNoConfigurado = errors.New("parámetro requerido no configurado")

	// Auth
	ErrNoAutorizado = errors.New("no autorizado")
	ErrProhibido    = errors.New("acceso denegado")
	ErrCredenciales = errors.New("credenciales inválidas")
	ErrEmailEnUso   = errors.New("el email ya está registrado")
)
