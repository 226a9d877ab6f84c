package http

import (
	"github.com/indigo-web/httpd/http/method"
)

// Request is the request line of a single connection. It's built once out of the
// received bytes and is never mutated afterwards.
type Request struct {
	Method method.Method
	// Token is the method exactly as it was received. Kept for logging, as Method
	// collapses every unrecognised token into method.Unknown
	Token string
	// Path is the percent-decoded path with query and fragment cut off. It usually
	// begins with a slash.
	Path string
}
