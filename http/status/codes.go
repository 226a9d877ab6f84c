package status

type (
	Code   uint16
	Status string
)

// HTTP status codes the server is able to respond with.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	OK               Code = 200 // RFC 9110, 15.3.1
	Forbidden        Code = 403 // RFC 9110, 15.5.4
	NotFound         Code = 404 // RFC 9110, 15.5.5
	MethodNotAllowed Code = 405 // RFC 9110, 15.5.6
)

// KnownCodes lists every code Text knows a reason phrase for.
var KnownCodes = []Code{OK, Forbidden, NotFound, MethodNotAllowed}

// Text returns a text for the HTTP status code. It returns the empty
// string if the code is unknown.
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case Forbidden:
		return "Forbidden"
	case NotFound:
		return "Not Found"
	case MethodNotAllowed:
		return "Method Not Allowed"
	}

	return ""
}
