package services

import "fmt"

// FieldError is a single validation violation. The full list travels in the
// response envelope's errors field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ServiceError struct {
	Status  int
	Message string
	Errors  []FieldError
}

func (e ServiceError) Error() string {
	return e.Message
}

func ErrNotFound(msg string) error {
	return ServiceError{Status: 404, Message: msg}
}

func ErrUnauthorized(msg string) error {
	return ServiceError{Status: 401, Message: msg}
}

func ErrUnprocessable(msg string) error {
	return ServiceError{Status: 422, Message: msg}
}

func ErrValidation(errs []FieldError) error {
	return ServiceError{Status: 422, Message: "Validation error", Errors: errs}
}

func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
