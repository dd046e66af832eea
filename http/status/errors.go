package status

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrBadRequest          = NewError(BadRequest, "bad request")
	ErrInvalidTarget       = NewError(BadRequest, "invalid request URI")
	ErrNotFound            = NewError(NotFound, "not found")
	ErrMethodNotAllowed    = NewError(MethodNotAllowed, "method not allowed")
	ErrTooLarge            = NewError(RequestEntityTooLarge, "request too large")
	ErrInternalServerError = NewError(InternalServerError, "internal server error")
)
