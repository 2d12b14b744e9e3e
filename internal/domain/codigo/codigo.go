// Package codigo da formato a los códigos secuenciales legibles del sistema
// (lotes, movimientos, SKUs). Los números los entrega la tabla de secuencias;
// aquí solo se formatea.
package codigo

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Prefijos y anchos de cada familia de códigos.
const (
	PrefijoLote       = "LOTE"
	PrefijoMovimiento = "MOV"
	PrefijoSKU        = "SC"

	AnchoSecuencia = 6
	AnchoSKU       = 3
)

// Nombres de secuencia en la tabla de secuencias.
const (
	SecuenciaLotes       = "lotes"
	SecuenciaMovimientos = "movimientos"
	SecuenciaProductos   = "productos"
)

// Formatear construye un código PREFIJO-NNNNNN con el número rellenado a ancho dígitos.
func Formatear(prefijo string, n int64, ancho int) string {
	return fmt.Sprintf("%s-%0*d", prefijo, ancho, n)
}

// SKU arma el código de producto SC-<NOMBRE>-NNN: nombre en mayúsculas,
// sin acentos y con espacios convertidos a guiones.
func SKU(nombre string, n int64) string {
	return fmt.Sprintf("%s-%s-%0*d", PrefijoSKU, normalizarNombre(nombre), AnchoSKU, n)
}

// normalizarNombre quita diacríticos (NFD + descarte de marcas combinantes),
// pasa a mayúsculas y reemplaza espacios por guiones.
func normalizarNombre(nombre string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	limpio, _, err := transform.String(t, nombre)
	if err != nil {
		limpio = nombre
	}
	limpio = strings.ToUpper(strings.TrimSpace(limpio))
	return strings.Join(strings.Fields(limpio), "-")
}
