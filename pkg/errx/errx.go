package errx

import (
	"fmt"
	"net/http"
)

// Type categorizes an error for logging and HTTP mapping.
type Type string

const (
	TypeValidation    Type = "VALIDATION"
	TypeNotFound      Type = "NOT_FOUND"
	TypeConflict      Type = "CONFLICT"
	TypeBusiness      Type = "BUSINESS"
	TypeAuthorization Type = "AUTHORIZATION"
	TypeInternal      Type = "INTERNAL"
	TypeExternal      Type = "EXTERNAL"
)

// Code identifies a registered error within a registry.
type Code string

// definition is the registered template for a code.
type definition struct {
	Type       Type
	HTTPStatus int
	Message    string
}

// Registry holds the error definitions for one domain, namespaced by prefix.
type Registry struct {
	prefix string
	defs   map[Code]definition
}

// NewRegistry creates a registry whose codes are prefixed with the given
// domain name (e.g. "JOB" -> "JOB.NOT_FOUND").
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		defs:   make(map[Code]definition),
	}
}

// Register adds an error definition and returns its fully-qualified code.
func (r *Registry) Register(code string, typ Type, httpStatus int, message string) Code {
	full := Code(r.prefix + "." + code)
	r.defs[full] = definition{
		Type:       typ,
		HTTPStatus: httpStatus,
		Message:    message,
	}
	return full
}

// New instantiates an error for a previously registered code.
func (r *Registry) New(code Code) *Error {
	def, ok := r.defs[code]
	if !ok {
		return &Error{
			Code:       code,
			Type:       TypeInternal,
			HTTPStatus: http.StatusInternalServerError,
			Message:    "Unregistered error code",
		}
	}
	return &Error{
		Code:       code,
		Type:       def.Type,
		HTTPStatus: def.HTTPStatus,
		Message:    def.Message,
	}
}

// NewWithCause instantiates an error for a registered code with its cause attached.
func (r *Registry) NewWithCause(code Code, cause error) *Error {
	return r.New(code).WithCause(cause)
}

// Error is a domain error with an HTTP mapping and structured details.
type Error struct {
	Code       Code           `json:"code"`
	Type       Type           `json:"type"`
	HTTPStatus int            `json:"-"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetail attaches a key/value pair to the error and returns it for chaining.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithDetails merges a map of key/value pairs into the error's details.
func (e *Error) WithDetails(details map[string]any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any, len(details))
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithCause attaches the underlying error.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// ToHTTPResponse returns the JSON-serializable body for the HTTP layer.
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"code":    e.Code,
		"type":    e.Type,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}

// Wrap converts an arbitrary error into an *Error of the given type.
func Wrap(err error, message string, typ Type) *Error {
	status := http.StatusInternalServerError
	if typ == TypeExternal {
		status = http.StatusBadGateway
	}
	return &Error{
		Code:       Code(string(typ) + ".WRAPPED"),
		Type:       typ,
		HTTPStatus: status,
		Message:    message,
		cause:      err,
	}
}
