package graph

import "github.com/gofiber/fiber/v2"

// FieldError is one entry of a validation failure list.
type FieldError struct {
	Message string `json:"message"`
}

// Error is a resolver error carrying the HTTP-ish status and optional
// validation data through the GraphQL boundary.
type Error struct {
	Message string
	Status  int
	Data    []FieldError
}

func (e *Error) Error() string { return e.Message }

// Extensions lets graph-gophers attach status and data to the wire error.
func (e *Error) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"status": e.Status}
	if len(e.Data) > 0 {
		ext["data"] = e.Data
	}
	return ext
}

func errUnauthenticated() *Error {
	return &Error{Message: "Not authenticated!", Status: fiber.StatusUnauthorized}
}

func errNotAuthorized() *Error {
	return &Error{Message: "Not authorized!", Status: fiber.StatusForbidden}
}

func errNotFound(msg string) *Error {
	return &Error{Message: msg, Status: fiber.StatusNotFound}
}

func errInvalid(data []FieldError) *Error {
	return &Error{Message: "Invalid input.", Status: fiber.StatusUnprocessableEntity, Data: data}
}

func errUnauthorizedMsg(msg string) *Error {
	return &Error{Message: msg, Status: fiber.StatusUnauthorized}
}

func errUnprocessable(msg string) *Error {
	return &Error{Message: msg, Status: fiber.StatusUnprocessableEntity}
}
