package errors

import "fmt"

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa los errores de campo de un formulario. Nunca
// llega a la red: bloquea el avance de la página que lo produjo.
type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

// FieldMessages indexa los detalles por campo para pintarlos junto a cada
// input. Si un campo aparece dos veces gana el primer mensaje.
func (e *ValidationError) FieldMessages() map[string]string {
	msgs := make(map[string]string, len(e.Details))
	for _, d := range e.Details {
		if _, ok := msgs[d.Field]; !ok {
			msgs[d.Field] = d.Message
		}
	}
	return msgs
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}
