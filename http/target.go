package http

import (
	"github.com/indigo-web/httpd/http/method"
	"github.com/indigo-web/httpd/http/status"
)

// Target is the decision on what (if anything) is served in response to a request.
type Target struct {
	Code   status.Code
	Method method.Method
	// File is the path of the file to be served. It is empty unless Code is status.OK
	File string
}

// Serve returns a target pointing at an existing file.
func Serve(m method.Method, file string) Target {
	return Target{
		Code:   status.OK,
		Method: m,
		File:   file,
	}
}

// Reject returns a target carrying no file.
func Reject(m method.Method, code status.Code) Target {
	return Target{
		Code:   code,
		Method: m,
	}
}

// HasFile reports whether there's a file to be served.
func (t Target) HasFile() bool {
	return t.Code == status.OK && len(t.File) > 0
}
