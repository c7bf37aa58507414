package models

// Result is the envelope every endpoint responds with. Data is a pointer so
// an absent payload serializes as JSON null rather than a zero value.
type Result[T any] struct {
	Message string `json:"message"`
	Data    *T     `json:"data"`
}

// NewResult wraps a payload with an outcome message.
func NewResult[T any](message string, data T) Result[T] {
	return Result[T]{Message: message, Data: &data}
}

// EmptyResult builds an envelope with no payload.
func EmptyResult[T any](message string) Result[T] {
	return Result[T]{Message: message}
}
