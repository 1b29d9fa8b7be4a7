package apperrors

// AppError is a deliberate business-rule rejection carrying the HTTP status
// code the boundary should answer with. The message is safe to expose verbatim.
type AppError struct {
	Message    string
	StatusCode int
}

// New creates an AppError with the given message and HTTP status code.
func New(message string, statusCode int) *AppError {
	return &AppError{
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) Error() string {
	return e.Message
}

// FieldError describes a single violated rule on a single input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated field of one payload, not just the
// first, so the responder can return the complete list to the client.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return "validation error"
}

// NewValidationError creates a ValidationError from a list of field violations.
func NewValidationError(fields []FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}
