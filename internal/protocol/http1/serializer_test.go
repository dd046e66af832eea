package http1

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	stdhttp "net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/fileserve/http"
	"github.com/indigo-web/fileserve/http/proto"
	"github.com/indigo-web/fileserve/http/status"
	"github.com/stretchr/testify/require"
)

func readResponse(t *testing.T, data []byte, method string) *stdhttp.Response {
	stdreq, err := stdhttp.NewRequest(method, "/", nil)
	require.NoError(t, err)
	resp, err := stdhttp.ReadResponse(bufio.NewReader(bytes.NewReader(data)), stdreq)
	require.NoError(t, err)
	return resp
}

type trackingCloser struct {
	io.Reader
	closed int
}

func (t *trackingCloser) Close() error {
	t.closed++
	return nil
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestSerializer_Write(t *testing.T) {
	defaults := map[string]string{"Server": "fileserve", "x-empty": ""}

	t.Run("no body", func(t *testing.T) {
		out := new(bytes.Buffer)
		s := NewSerializer(defaults, 16)
		require.NoError(t, s.Write(out, http.NewResponse(proto.HTTP11).Code(status.NotModified)))

		require.True(t, strings.HasPrefix(out.String(), "HTTP/1.1 304 Not Modified\r\n"))
		require.True(t, strings.HasSuffix(out.String(), "\r\n\r\n"))
		resp := readResponse(t, out.Bytes(), stdhttp.MethodGet)
		require.Equal(t, 304, resp.StatusCode)
		require.Equal(t, "fileserve", resp.Header.Get("Server"))
		require.NotEmpty(t, resp.Header.Get("Date"))
		require.Equal(t, "application/octet-stream", resp.Header.Get("Content-Type"))
		require.NotContains(t, resp.Header, "X-Empty")
	})

	t.Run("explicit headers win over defaults", func(t *testing.T) {
		out := new(bytes.Buffer)
		s := NewSerializer(defaults, 16)
		response := http.NewResponse(proto.HTTP10).
			Header("Server", "custom").
			Header("Date", "Sun, 06 Nov 1994 08:49:37 GMT").
			String("hello")
		require.NoError(t, s.Write(out, response))

		resp := readResponse(t, out.Bytes(), stdhttp.MethodGet)
		require.Equal(t, 1, resp.ProtoMajor)
		require.Equal(t, 0, resp.ProtoMinor)
		require.Equal(t, []string{"custom"}, resp.Header["Server"])
		require.Equal(t, []string{"Sun, 06 Nov 1994 08:49:37 GMT"}, resp.Header["Date"])
		require.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Equal(t, "hello", string(body))
	})

	t.Run("custom status", func(t *testing.T) {
		out := new(bytes.Buffer)
		s := NewSerializer(nil, 16)
		require.NoError(t, s.Write(out, http.NewResponse(proto.HTTP11).WithStatus(status.New(599, "Custom"))))
		require.True(t, strings.HasPrefix(out.String(), "HTTP/1.1 599 Custom\r\n"))
	})

	t.Run("headers are flushed before the body is produced", func(t *testing.T) {
		out := new(bytes.Buffer)
		s := NewSerializer(nil, 16)
		var seen string
		response := http.NewResponse(proto.HTTP11).ContentLength(2).Stream(func() (io.ReadCloser, error) {
			seen = out.String()
			return io.NopCloser(strings.NewReader("ok")), nil
		})
		require.NoError(t, s.Write(out, response))
		require.True(t, strings.HasSuffix(seen, "\r\n\r\n"))
		require.Equal(t, seen+"ok", out.String())
	})

	t.Run("stream is closed once", func(t *testing.T) {
		stream := &trackingCloser{Reader: strings.NewReader("data")}
		calls := 0
		response := http.NewResponse(proto.HTTP11).ContentLength(4).Stream(func() (io.ReadCloser, error) {
			calls++
			return stream, nil
		})

		require.NoError(t, NewSerializer(nil, 16).Write(new(bytes.Buffer), response))
		require.Equal(t, 1, calls)
		require.Equal(t, 1, stream.closed)
	})

	t.Run("stream is closed on producer failure", func(t *testing.T) {
		stream := &trackingCloser{Reader: strings.NewReader("")}
		response := http.NewResponse(proto.HTTP11).Stream(func() (io.ReadCloser, error) {
			return stream, errors.New("gone")
		})

		require.Error(t, NewSerializer(nil, 16).Write(new(bytes.Buffer), response))
		require.Equal(t, 1, stream.closed)
	})

	t.Run("body isn't produced if the headers failed", func(t *testing.T) {
		calls := 0
		response := http.NewResponse(proto.HTTP11).Stream(func() (io.ReadCloser, error) {
			calls++
			return io.NopCloser(strings.NewReader("")), nil
		})

		require.Error(t, NewSerializer(nil, 16).Write(failingWriter{}, response))
		require.Zero(t, calls)
	})
}

func TestSerializer_Files(t *testing.T) {
	const bufferSize = 64
	dir := t.TempDir()

	for _, tc := range []struct {
		Name string
		Size int
	}{
		{"empty", 0},
		{"smaller than buffer", bufferSize / 2},
		{"exactly a buffer", bufferSize},
		{"several buffers", bufferSize*10 + 7},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			content := uniuri.NewLen(tc.Size)
			if tc.Size == 0 {
				content = ""
			}

			path := filepath.Join(dir, strings.ReplaceAll(tc.Name, " ", "_"))
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			response := http.NewResponse(proto.HTTP11).
				ContentLength(int64(len(content))).
				Stream(func() (io.ReadCloser, error) {
					return os.Open(path)
				})

			out := new(bytes.Buffer)
			require.NoError(t, NewSerializer(nil, bufferSize).Write(out, response))

			resp := readResponse(t, out.Bytes(), stdhttp.MethodGet)
			require.EqualValues(t, len(content), resp.ContentLength)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			require.Equal(t, content, string(body))
			require.True(t, strings.HasSuffix(out.String(), "\r\n\r\n"+content))
		})
	}
}
