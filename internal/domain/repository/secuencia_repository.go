package repository

// SecuenciaRepository entrega números monotónicos por familia de códigos
// (lotes, movimientos, productos). El incremento es atómico en el almacén:
// dos llamadores concurrentes nunca reciben el mismo número. Tolerante a
// huecos: un rollback posterior no devuelve el número consumido.
type SecuenciaRepository interface {
	Siguiente(nombre string) (int64, error)
}
