package http

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	stdhttp "net/http"
	"strings"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/fileserve/config"
	"github.com/indigo-web/fileserve/http"
	"github.com/indigo-web/fileserve/http/status"
	"github.com/indigo-web/fileserve/internal/server/tcp/dummy"
	"github.com/indigo-web/fileserve/logging"
	"github.com/indigo-web/fileserve/router/simple"
	"github.com/stretchr/testify/require"
)

func echoServer(cfg *config.Config, seen **http.Request) *Server {
	r := simple.New(func(request *http.Request) *http.Response {
		*seen = request
		return request.Respond().String(string(request.Body))
	}, nil)

	return NewServer(cfg, r, logging.Nop())
}

func readResponse(t *testing.T, data []byte) *stdhttp.Response {
	resp, err := stdhttp.ReadResponse(bufio.NewReader(bytes.NewReader(data)), nil)
	require.NoError(t, err)
	return resp
}

func TestServer_Serve(t *testing.T) {
	cfg := config.Default()
	cfg.NET.ReadBufferSize = 16

	t.Run("simple request", func(t *testing.T) {
		var seen *http.Request
		conn := dummy.NewConnString("GET /index.html HTTP/1.1\r\nHost: localhost\r\n\r\n")
		require.Equal(t, Closed, echoServer(cfg, &seen).Serve(conn))
		require.True(t, conn.Closed())

		require.NotNil(t, seen)
		require.Equal(t, "localhost", seen.Headers.Value("host"))
		require.Equal(t, conn.RemoteAddr(), seen.Remote)

		resp := readResponse(t, conn.Written())
		require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
		require.Equal(t, "fileserve", resp.Header.Get("Server"))
		require.NotEmpty(t, resp.Header.Get("Date"))
	})

	t.Run("request in many chunks", func(t *testing.T) {
		var seen *http.Request
		raw := "POST / HTTP/1.1\r\nContent-Length: 5\r\nX-Long: " + uniuri.NewLen(100) + "\r\n\r\nhello"
		var chunks [][]byte
		for i := 0; i < len(raw); i += 7 {
			chunks = append(chunks, []byte(raw[i:min(i+7, len(raw))]))
		}

		conn := dummy.NewConn(chunks...)
		require.Equal(t, Closed, echoServer(cfg, &seen).Serve(conn))
		require.Equal(t, "hello", string(seen.Body))
	})

	t.Run("body completion", func(t *testing.T) {
		var seen *http.Request
		body := uniuri.NewLen(200)
		conn := dummy.NewConn(
			[]byte("PUT /file HTTP/1.1\r\nContent-Length: 200\r\n\r\n"+body[:10]),
			[]byte(body[10:150]),
			[]byte(body[150:]+"trailing garbage"),
		)
		require.Equal(t, Closed, echoServer(cfg, &seen).Serve(conn))
		require.Equal(t, body, string(seen.Body))
	})

	t.Run("body ends prematurely", func(t *testing.T) {
		var seen *http.Request
		conn := dummy.NewConnString("PUT /file HTTP/1.1\r\nContent-Length: 100\r\n\r\nshort")
		require.Equal(t, Closed, echoServer(cfg, &seen).Serve(conn))
		require.Equal(t, "short", string(seen.Body))
	})

	t.Run("no headers terminator", func(t *testing.T) {
		var seen *http.Request
		conn := dummy.NewConnString("GET / HTTP/1.0\r\n")
		require.Equal(t, Closed, echoServer(cfg, &seen).Serve(conn))
		require.NotNil(t, seen)
		require.True(t, strings.HasPrefix(string(conn.Written()), "HTTP/1.0 200 OK\r\n"))
	})

	t.Run("leading blank lines", func(t *testing.T) {
		var seen *http.Request
		conn := dummy.NewConn([]byte("\r\n\r\n"), []byte("GET / HTTP/1.1\r\n\r\n"))
		require.Equal(t, Closed, echoServer(cfg, &seen).Serve(conn))
		require.NotNil(t, seen)
	})

	t.Run("empty connection", func(t *testing.T) {
		var seen *http.Request
		conn := dummy.NewConn()
		require.Equal(t, Closed, echoServer(cfg, &seen).Serve(conn))
		require.Nil(t, seen)
		require.Empty(t, conn.Written())
		require.True(t, conn.Closed())
	})

	t.Run("garbage is dropped silently", func(t *testing.T) {
		var seen *http.Request
		conn := dummy.NewConnString("hello there")
		require.Equal(t, Failed, echoServer(cfg, &seen).Serve(conn))
		require.Nil(t, seen)
		require.Empty(t, conn.Written())
		require.True(t, conn.Closed())
	})

	t.Run("unsupported version", func(t *testing.T) {
		var seen *http.Request
		conn := dummy.NewConnString("GET / HTTP/2.0\r\n\r\n")
		require.Equal(t, Failed, echoServer(cfg, &seen).Serve(conn))
		require.Nil(t, seen)

		resp := readResponse(t, conn.Written())
		require.Equal(t, stdhttp.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))
	})

	t.Run("too large", func(t *testing.T) {
		cfg := config.Default()
		cfg.NET.ReadBufferSize = 16
		cfg.NET.MaxRequestSize = 64

		var seen *http.Request
		conn := dummy.NewConnString("GET / HTTP/1.1\r\nX-Big: " + uniuri.NewLen(100) + "\r\n\r\n")
		require.Equal(t, Failed, echoServer(cfg, &seen).Serve(conn))
		require.Nil(t, seen)
		require.Equal(t, stdhttp.StatusRequestEntityTooLarge, readResponse(t, conn.Written()).StatusCode)

		conn = dummy.NewConnString("POST / HTTP/1.1\r\nContent-Length: 1000\r\n\r\n")
		require.Equal(t, Failed, echoServer(cfg, &seen).Serve(conn))
		require.Nil(t, seen)
		require.Equal(t, stdhttp.StatusRequestEntityTooLarge, readResponse(t, conn.Written()).StatusCode)
	})

	t.Run("huge content length without limit", func(t *testing.T) {
		cfg := config.Default()
		cfg.NET.ReadBufferSize = 16
		cfg.NET.MaxRequestSize = 0

		var seen *http.Request
		conn := dummy.NewConnString("POST / HTTP/1.1\r\nContent-Length: 9223372036854775807\r\n\r\nx")
		require.Equal(t, Closed, echoServer(cfg, &seen).Serve(conn))
		require.NotNil(t, seen)
		require.Equal(t, "x", string(seen.Body))
		require.True(t, conn.Closed())
	})

	t.Run("head terminator split across chunks", func(t *testing.T) {
		cfg := config.Default()
		cfg.NET.MaxRequestSize = 0

		for split := 1; split < len(headTerminator); split++ {
			var seen *http.Request
			conn := dummy.NewConn(
				[]byte("\r\n"),
				[]byte("GET / HTTP/1.1\r\nHost: a"+headTerminator[:split]),
				[]byte(headTerminator[split:]),
			)
			require.Equal(t, Closed, echoServer(cfg, &seen).Serve(conn))
			require.NotNil(t, seen)
			require.Equal(t, "a", seen.Headers.Value("host"))
		}
	})

	t.Run("handler panic", func(t *testing.T) {
		r := simple.New(func(*http.Request) *http.Response {
			panic("something went wrong")
		}, nil)

		conn := dummy.NewConnString("GET / HTTP/1.1\r\n\r\n")
		require.NotPanics(t, func() {
			require.Equal(t, Failed, NewServer(cfg, r, logging.Nop()).Serve(conn))
		})
		require.True(t, conn.Closed())
		require.Equal(t, stdhttp.StatusInternalServerError, readResponse(t, conn.Written()).StatusCode)
	})

	t.Run("body producer panic", func(t *testing.T) {
		r := simple.New(func(request *http.Request) *http.Response {
			return request.Respond().Stream(func() (io.ReadCloser, error) {
				panic("something went wrong")
			})
		}, nil)

		conn := dummy.NewConnString("GET / HTTP/1.1\r\n\r\n")
		require.NotPanics(t, func() {
			require.Equal(t, Failed, NewServer(cfg, r, logging.Nop()).Serve(conn))
		})
		require.True(t, conn.Closed())
	})

	t.Run("read error", func(t *testing.T) {
		var seen *http.Request
		conn := dummy.NewConnString("GET / HT").WithReadError(errors.New("connection reset"))
		require.Equal(t, Failed, echoServer(cfg, &seen).Serve(conn))
		require.Nil(t, seen)
		require.Empty(t, conn.Written())
	})

	t.Run("write error", func(t *testing.T) {
		var seen *http.Request
		conn := dummy.NewConnString("GET / HTTP/1.1\r\n\r\n").WithWriteError(errors.New("broken pipe"))
		require.Equal(t, Failed, echoServer(cfg, &seen).Serve(conn))
		require.NotNil(t, seen)
		require.True(t, conn.Closed())
	})

	t.Run("nil response", func(t *testing.T) {
		r := simple.New(func(*http.Request) *http.Response {
			return nil
		}, nil)
		conn := dummy.NewConnString("GET / HTTP/1.1\r\n\r\n")
		require.Equal(t, Closed, NewServer(cfg, r, logging.Nop()).Serve(conn))
		require.Equal(t, stdhttp.StatusOK, readResponse(t, conn.Written()).StatusCode)
	})

	t.Run("custom error handler", func(t *testing.T) {
		r := simple.New(nil, func(request *http.Request, err error) *http.Response {
			require.Nil(t, request)
			require.ErrorIs(t, err, status.ErrBadRequest)
			return http.NewResponse(0).Code(status.BadRequest).String("nope")
		})
		conn := dummy.NewConnString("GET / HTTP/3.0\r\n\r\n")
		require.Equal(t, Failed, NewServer(cfg, r, logging.Nop()).Serve(conn))
		require.True(t, strings.HasSuffix(string(conn.Written()), "\r\n\r\nnope"))
	})
}

func TestState_String(t *testing.T) {
	for state, name := range map[State]string{
		Accepted:   "accepted",
		Parsing:    "parsing",
		Handling:   "handling",
		Responding: "responding",
		Closed:     "closed",
		Failed:     "failed",
		State(99):  "unknown",
	} {
		require.Equal(t, name, state.String())
	}
}
