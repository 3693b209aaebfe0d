package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrNoCustomerSelected = errors.New("ningún cliente seleccionado")
	ErrLastItem           = errors.New("la factura debe conservar al menos una línea")
	ErrIndexOutOfRange    = errors.New("índice de línea fuera de rango")
	ErrEmissionInProgress = errors.New("ya hay una emisión en curso")
)
