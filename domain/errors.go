package domain

import "fmt"

// InvalidInputError indica que un campo de entrada no pasó la validación.
// El simulador no calcula nada con entradas inválidas.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("entrada inválida: %s: %s", e.Field, e.Reason)
}

// NewInvalidInput construye un InvalidInputError para el campo dado.
func NewInvalidInput(field, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: reason}
}
