package entity

// Customer representa un cliente al que se le puede emitir una factura.
// Inmutable una vez creado; el ID es entero, único y monotónico
// (máximo existente + 1, asignado por el caso de uso al crearlo).
type Customer struct {
	ID      int64
	Name    string
	Address string
}
