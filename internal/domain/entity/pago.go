package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados.
const (
	PagoEfectivo      = "efectivo"
	PagoTransferencia = "transferencia"
)

// PagoAplicado detalla cuánto de un pago se aplicó a una venta concreta.
type PagoAplicado struct {
	VentaID       string          `json:"ventaId"`
	SaldoPrevio   decimal.Decimal `json:"saldoPrevio"`
	PagoAplicado  decimal.Decimal `json:"pagoAplicado"`
	SaldoRestante decimal.Decimal `json:"saldoRestante"`
}

// Pago registra un pago de un cliente repartido entre sus ventas pendientes
// de la más antigua a la más reciente.
// Invariante: Σ PagosAplicados[i].PagoAplicado + SaldoRestante == MontoPagado.
type Pago struct {
	ID             string
	ClienteID      string
	MontoPagado    decimal.Decimal
	SaldoRestante  decimal.Decimal // remanente sin aplicar
	MetodoPago     string
	FechaPago      time.Time
	PagosAplicados []PagoAplicado
	Notas          string
	CreatedAt      time.Time
}
