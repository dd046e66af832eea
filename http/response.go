package http

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	"github.com/indigo-web/fileserve/http/headers"
	"github.com/indigo-web/fileserve/http/mime"
	"github.com/indigo-web/fileserve/http/proto"
	"github.com/indigo-web/fileserve/http/status"
)

// Body lazily produces the response body. The serializer calls it exactly once and
// closes the returned stream after the transfer, no matter how it ended.
type Body func() (io.ReadCloser, error)

// Bytes returns a producer of an in-memory body.
func Bytes(b []byte) Body {
	return func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(b)), nil
	}
}

type Response struct {
	Proto   proto.Proto
	Status  status.Status
	Headers *headers.Headers
	// Body is nil if the response has no body at all, which is different from an
	// empty body.
	Body Body
}

// NewResponse returns a 200 OK response without a body.
func NewResponse(p proto.Proto) *Response {
	if p == proto.Unknown {
		p = proto.HTTP11
	}

	return &Response{
		Proto:   p,
		Status:  status.Of(status.OK),
		Headers: headers.NewPrealloc(4),
	}
}

// Code sets the status code with its catalog reason phrase.
func (r *Response) Code(code status.Code) *Response {
	r.Status = status.Of(code)
	return r
}

// WithStatus sets an arbitrary status.
func (r *Response) WithStatus(s status.Status) *Response {
	r.Status = s
	return r
}

// Header sets the header, replacing the previous value if any.
func (r *Response) Header(name, value string) *Response {
	r.Headers.Set(name, value)
	return r
}

// ContentType sets the content-type header.
func (r *Response) ContentType(t mime.Type) *Response {
	return r.Header("content-type", t.String())
}

// ContentLength sets the content-length header.
func (r *Response) ContentLength(n int64) *Response {
	return r.Header("content-length", strconv.FormatInt(n, 10))
}

// Stream sets the body producer.
func (r *Response) Stream(body Body) *Response {
	r.Body = body
	return r
}

// String sets a plain-text body.
func (r *Response) String(body string) *Response {
	return r.
		ContentType(mime.New(mime.Plain)).
		ContentLength(int64(len(body))).
		Stream(Bytes([]byte(body)))
}

// Error builds a plain-text error response. An instance of status.HTTPError determines the
// code and the message, any other error results in 500 Internal Server Error without
// disclosing the error itself.
func Error(request *Request, err error) *Response {
	var httpErr status.HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = status.ErrInternalServerError.(status.HTTPError)
	}

	return respondTo(request).
		Code(httpErr.Code).
		String(httpErr.Message)
}

func respondTo(request *Request) *Response {
	if request == nil {
		return NewResponse(proto.HTTP11)
	}

	return request.Respond()
}
