// Package simple adapts plain functions to the router interface.
package simple

import (
	"github.com/indigo-web/fileserve/http"
	"github.com/indigo-web/fileserve/router"
)

type (
	Handler      func(*http.Request) *http.Response
	ErrorHandler func(*http.Request, error) *http.Response
)

type simpleRouter struct {
	handler    Handler
	errHandler ErrorHandler
}

// New returns a router calling the handler for every request. A nil errHandler results
// in the plain-text error responses of http.Error.
func New(handler Handler, errHandler ErrorHandler) router.Router {
	if errHandler == nil {
		errHandler = http.Error
	}

	return simpleRouter{
		handler:    handler,
		errHandler: errHandler,
	}
}

func (r simpleRouter) OnRequest(request *http.Request) *http.Response {
	return r.handler(request)
}

func (r simpleRouter) OnError(request *http.Request, err error) *http.Response {
	return r.errHandler(request, err)
}
