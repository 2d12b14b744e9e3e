package codigo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scalimentos/inventario-api/internal/domain/codigo"
)

func TestFormatear_RellenaConCeros(t *testing.T) {
	assert.Equal(t, "LOTE-000001", codigo.Formatear(codigo.PrefijoLote, 1, codigo.AnchoSecuencia))
	assert.Equal(t, "MOV-000042", codigo.Formatear(codigo.PrefijoMovimiento, 42, codigo.AnchoSecuencia))
	// Más dígitos que el ancho: no se trunca
	assert.Equal(t, "MOV-1234567", codigo.Formatear(codigo.PrefijoMovimiento, 1234567, codigo.AnchoSecuencia))
}

func TestSKU_NormalizaNombre(t *testing.T) {
	assert.Equal(t, "SC-QUESO-FRESCO-001", codigo.SKU("Queso Fresco", 1))
	// Acentos y eñes se aplanan a ASCII
	assert.Equal(t, "SC-MANI-SALADO-025", codigo.SKU("Maní  Salado", 25))
}
