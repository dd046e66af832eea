package http

import (
	"net"
	"strconv"

	"github.com/indigo-web/fileserve/http/headers"
	"github.com/indigo-web/fileserve/http/method"
	"github.com/indigo-web/fileserve/http/proto"
	"github.com/indigo-web/fileserve/http/target"
)

// Request represents a parsed HTTP request. It's constructed once per connection and
// never modified afterward.
type Request struct {
	// Method is either one of the predefined methods or an extension token.
	Method method.Method
	// Target is either target.Asterisk or target.URI.
	Target target.Target
	// Proto is HTTP/1.0 or HTTP/1.1, nothing else passes the parser.
	Proto proto.Proto
	// Headers are normalized and merged by the parser.
	Headers *headers.Headers
	// Body is everything that followed the headers section.
	Body []byte
	// Remote holds the remote address of the connection, if known.
	Remote net.Addr
}

func NewRequest(m method.Method, t target.Target, p proto.Proto, h *headers.Headers, body []byte) *Request {
	if h == nil {
		h = headers.New()
	}

	return &Request{
		Method:  m,
		Target:  t,
		Proto:   p,
		Headers: h,
		Body:    body,
	}
}

// ContentLength returns the declared body length. ok is false if the header is missing
// or malformed.
func (r *Request) ContentLength() (length int64, ok bool) {
	value, found := r.Headers.Get("content-length")
	if !found {
		return 0, false
	}

	length, err := strconv.ParseInt(value, 10, 64)
	if err != nil || length < 0 {
		return 0, false
	}

	return length, true
}

// Respond returns a new 200 OK response of the same protocol version.
func (r *Request) Respond() *Response {
	return NewResponse(r.Proto)
}

func (r *Request) String() string {
	return r.Method.String() + " " + r.Target.String() + " " + r.Proto.String()
}

// Negotiation decomposes the content negotiation headers of the request.
func (r *Request) Negotiation() Negotiation {
	return Negotiate(r.Headers)
}
