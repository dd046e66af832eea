package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/indigo-web/fileserve/config"
	"github.com/indigo-web/fileserve/http"
	"github.com/indigo-web/fileserve/http/status"
	"github.com/indigo-web/fileserve/internal/protocol/http1"
	"github.com/indigo-web/fileserve/internal/scanner"
	"github.com/indigo-web/fileserve/internal/server/tcp"
	"github.com/indigo-web/fileserve/internal/strutil"
	"github.com/indigo-web/fileserve/logging"
	"github.com/indigo-web/fileserve/router"
)

var (
	// ErrEmptyConnection means the peer closed the connection without sending a byte.
	ErrEmptyConnection = errors.New("connection closed before any data")
	ErrTooLarge        = errors.New("request exceeds the size limit")
	ErrHandlerPanic    = errors.New("handler panicked")
)

const headTerminator = "\r\n\r\n"

// Server drives every connection through a single request-response exchange. It holds
// nothing mutable, so one instance serves all the connections.
type Server struct {
	cfg    *config.Config
	router router.Router
	log    logging.Logger
}

func NewServer(cfg *config.Config, r router.Router, log logging.Logger) *Server {
	return &Server{
		cfg:    cfg,
		router: r,
		log:    log,
	}
}

// Serve handles the connection and closes it. The returned state is either Closed or
// Failed. A panic escaping the exchange, e.g. from a body producer, fails only this
// connection.
func (s *Server) Serve(conn net.Conn) (state State) {
	client := tcp.NewClient(
		conn, s.cfg.NET.ReadTimeout, s.cfg.NET.WriteTimeout, make([]byte, s.cfg.NET.ReadBufferSize),
	)
	defer func() {
		_ = client.Close()
	}()

	c := connection{
		server:     s,
		client:     client,
		remote:     strutil.Address(client.Remote()),
		serializer: http1.NewSerializer(s.cfg.Headers.Default, s.cfg.NET.FileBufferSize),
		state:      Accepted,
	}
	s.log.Debugf("accepted connection from %s", c.remote)

	defer func() {
		if r := recover(); r != nil {
			s.log.Errorf("%s: panic in state %s: %v", c.remote, c.state, r)
			state = c.fail()
		}
	}()

	return c.run()
}

type connection struct {
	server     *Server
	client     tcp.Client
	remote     string
	serializer *http1.Serializer
	state      State
}

func (c *connection) run() State {
	c.state = Parsing
	request, err := c.readRequest()
	if err != nil {
		return c.onParseError(err)
	}

	c.state = Handling
	response, err := c.handle(request)
	if err != nil {
		c.server.log.Errorf("%s: %s: %v", c.remote, request, err)
		if werr := c.write(http.Error(request, status.ErrInternalServerError)); werr != nil {
			c.server.log.Debugf("%s: failed to report the error: %v", c.remote, werr)
		}

		return c.fail()
	}

	if response == nil {
		response = request.Respond()
	}

	c.state = Responding
	if err = c.write(response); err != nil {
		c.server.log.Errorf("%s: failed to respond to %s: %v", c.remote, request, err)
		return c.fail()
	}

	c.server.log.Printf("%s %s -> %s", c.remote, request, response.Status)
	c.state = Closed
	return c.state
}

// handle calls the router. A panic in the handler is turned into an error, the connection
// is failed and the rest of the server keeps running.
func (c *connection) handle(request *http.Request) (response *http.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			response, err = nil, fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}
	}()

	return c.server.router.OnRequest(request), nil
}

func (c *connection) readRequest() (*http.Request, error) {
	data, err := c.readHead()
	if err != nil {
		return nil, err
	}

	request, err := http1.Parse(scanner.New(data))
	if err != nil {
		return nil, err
	}

	request.Remote = c.client.Remote()
	if request.Body, err = c.completeBody(request.Body, len(data)-len(request.Body), request); err != nil {
		return request, err
	}

	return request, nil
}

// readHead reads until the headers terminator, the end of the stream or the size limit,
// whatever comes first. Whitespace preceding the request line isn't searched for the
// terminator.
func (c *connection) readHead() ([]byte, error) {
	var (
		data  []byte
		start int
		limit = c.server.cfg.NET.MaxRequestSize
	)

	for {
		chunk, err := c.client.Read()
		// the terminator may begin in the tail of what was already searched
		from := max(len(data)-len(headTerminator)+1, 0)
		data = append(data, chunk...)

		for start < len(data) && scanner.IsLWS(data[start]) {
			start++
		}

		if bytes.Contains(data[max(start, from):], []byte(headTerminator)) {
			return data, nil
		}

		if limit > 0 && len(data) > limit {
			return nil, ErrTooLarge
		}

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			if len(bytes.TrimLeft(data, " \t\r\n")) == 0 {
				return nil, ErrEmptyConnection
			}

			return data, nil
		default:
			return nil, err
		}
	}
}

// completeBody reads the rest of the body if the request declared a content length greater
// than what already arrived. A stream ending prematurely leaves the body short. The declared
// length isn't trusted for allocation, the buffer grows as the bytes arrive.
func (c *connection) completeBody(body []byte, headLen int, request *http.Request) ([]byte, error) {
	length, ok := request.ContentLength()
	if !ok || int64(len(body)) >= length {
		return body, nil
	}

	if limit := c.server.cfg.NET.MaxRequestSize; limit > 0 && int64(headLen)+length > int64(limit) {
		return nil, ErrTooLarge
	}

	full := make([]byte, len(body), min(length, int64(len(body)+c.server.cfg.NET.ReadBufferSize)))
	copy(full, body)

	for int64(len(full)) < length {
		chunk, err := c.client.Read()
		full = append(full, chunk[:min(int64(len(chunk)), length-int64(len(full)))]...)

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			c.server.log.Debugf("%s: body is %d bytes short", c.remote, length-int64(len(full)))
			return full, nil
		default:
			return nil, fmt.Errorf("read body: %w", err)
		}
	}

	return full, nil
}

func (c *connection) onParseError(err error) State {
	switch {
	case errors.Is(err, ErrEmptyConnection):
		c.server.log.Debugf("%s: closed without sending anything", c.remote)
		c.state = Closed
		return c.state
	case errors.Is(err, ErrTooLarge):
		c.server.log.Errorf("%s: %v", c.remote, err)
		c.respondError(status.ErrTooLarge)
	case http1.IsBadRequest(err):
		c.server.log.Errorf("%s: bad request: %v", c.remote, err)
		c.respondError(fmt.Errorf("%w: %w", status.ErrBadRequest, err))
	default:
		c.server.log.Errorf("%s: malformed request: %v", c.remote, err)
	}

	return c.fail()
}

// respondError makes an attempt to tell the client what went wrong. The connection is
// closed right after, so a failure here has no consequences.
func (c *connection) respondError(err error) {
	response := c.server.router.OnError(nil, err)
	if response == nil {
		response = http.Error(nil, err)
	}

	if werr := c.write(response); werr != nil {
		c.server.log.Debugf("%s: failed to report the error: %v", c.remote, werr)
	}
}

func (c *connection) write(response *http.Response) error {
	w, err := c.client.Writer()
	if err != nil {
		return err
	}

	return c.serializer.Write(w, response)
}

func (c *connection) fail() State {
	c.state = Failed
	return c.state
}
