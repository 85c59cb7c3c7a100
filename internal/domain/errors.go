package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput = errors.New("entrada inválida")
	// ErrRetrievalUnavailable el almacén de facturas no responde; la petición completa
	// puede reintentarse.
	ErrRetrievalUnavailable = errors.New("servicio no disponible: sin conexión con la base de datos")
	// ErrInvalidRecord una factura individual no supera la validación de ingesta.
	ErrInvalidRecord = errors.New("registro de factura inválido")
)
