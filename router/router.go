package router

import (
	"github.com/indigo-web/fileserve/http"
)

// Router produces responses for the requests. It's shared by all the connections, so
// implementations must be safe for concurrent use.
type Router interface {
	// OnRequest handles a complete request.
	OnRequest(request *http.Request) *http.Response
	// OnError produces the response for a request that failed before it could be handled.
	// The request is nil if it couldn't be parsed at all.
	OnError(request *http.Request, err error) *http.Response
}
