package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Nombres de los parámetros operativos que consumen las reglas de negocio.
const (
	ParamLimiteDeudas           = "limite_Deudas_Cliente"
	ParamDiasProximosAExpirar   = "dias_Proximos_A_Expirar"
	ParamStockMinimo            = "stock_Minimo"
	ParamStockMaximo            = "stock_Maximo"
	ParamDiasAntesAlertaExpira  = "dias_Antes_Alerta_Expiracion"
	ParamCantidadMinimaReabasto = "cantidad_minima_reabastecimiento"
)

// Parametro es un umbral numérico configurable por el operador.
// Un parámetro requerido ausente es un fallo de configuración, nunca un default.
type Parametro struct {
	ID                 string
	Nombre             string // único
	Valor              decimal.Decimal
	Descripcion        string
	ActualizadoPor     string
	FechaActualizacion time.Time
	CreatedAt          time.Time
}
