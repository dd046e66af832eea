// Package static serves files from a directory.
package static

import (
	"errors"
	"io"
	"os"
	"syscall"

	"github.com/indigo-web/fileserve/http"
	"github.com/indigo-web/fileserve/http/method"
	"github.com/indigo-web/fileserve/http/mime"
	"github.com/indigo-web/fileserve/http/status"
	"github.com/indigo-web/fileserve/http/target"
	"github.com/indigo-web/fileserve/internal/resolve"
	"github.com/indigo-web/fileserve/logging"
	"github.com/indigo-web/fileserve/router"
)

const allowedMethods = "GET, HEAD"

type Handler struct {
	resolver *resolve.Resolver
	log      logging.Logger
}

var _ router.Router = (*Handler)(nil)

// New returns a handler serving the files under root. Directories are served by their
// first existing index file.
func New(root string, index []string, log logging.Logger) (*Handler, error) {
	resolver, err := resolve.New(root, index...)
	if err != nil {
		return nil, err
	}

	return &Handler{
		resolver: resolver,
		log:      log,
	}, nil
}

func (h *Handler) OnRequest(request *http.Request) *http.Response {
	switch request.Method {
	case method.GET, method.HEAD:
	default:
		return http.Error(request, status.ErrMethodNotAllowed).Header("allow", allowedMethods)
	}

	uri, ok := request.Target.(target.URI)
	if !ok {
		return http.Error(request, status.ErrInvalidTarget)
	}

	path, err := h.resolver.Resolve(uri)
	if err != nil {
		return notFound(request, uri)
	}

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return notFound(request, uri)
	case err != nil:
		h.log.Errorf("stat %s: %v", path, err)
		return http.Error(request, status.ErrInternalServerError)
	case !info.Mode().IsRegular():
		return notFound(request, uri)
	}

	response := request.Respond().
		ContentType(mime.ByExtension(path)).
		ContentLength(info.Size())

	if request.Method == method.HEAD {
		return response
	}

	return response.Stream(func() (io.ReadCloser, error) {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}

		return file, nil
	})
}

func (h *Handler) OnError(request *http.Request, err error) *http.Response {
	return http.Error(request, err)
}

func notFound(request *http.Request, uri target.URI) *http.Response {
	return http.Error(request, status.NewError(status.NotFound, "path "+uri.Path()+" not found"))
}
