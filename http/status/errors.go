package status

import "errors"

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
	// ErrMalformedRequest is reported when the request line can't be split into a method
	// and a path, or the path can't be decoded. It is answered just like a disallowed
	// method, so the code is MethodNotAllowed
	ErrMalformedRequest = NewError(MethodNotAllowed, "malformed request")
	ErrMethodNotAllowed = NewError(MethodNotAllowed, "method not allowed")
	ErrForbidden        = NewError(Forbidden, "forbidden")
	ErrNotFound         = NewError(NotFound, "not found")
)

// ErrShutdown is returned by acceptors stopped on purpose.
var ErrShutdown = errors.New("shutdown")

// CodeOf extracts the status code carried by err. Errors which aren't HTTPError
// are reported as MethodNotAllowed, as every request which fails to parse is.
func CodeOf(err error) Code {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return MethodNotAllowed
}
