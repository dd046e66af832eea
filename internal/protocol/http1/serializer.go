package http1

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/indigo-web/fileserve/http"
	"github.com/indigo-web/fileserve/http/headers"
	"github.com/indigo-web/fileserve/http/mime"
	"github.com/indigo-web/fileserve/http/proto"
	"github.com/indigo-web/fileserve/internal/timer"
	"github.com/valyala/bytebufferpool"
)

const (
	crlf                    = "\r\n"
	defaultStreamBufferSize = 32 * 1024
)

// Serializer writes responses onto the wire. It owns the body transfer buffer, therefore
// must not be shared among connections.
type Serializer struct {
	defaultHeaders []headers.Pair
	streamBuff     []byte
}

// NewSerializer returns a serializer filling in the default headers unless the response
// sets them explicitly. The date header is always filled in.
func NewSerializer(defaultHeaders map[string]string, streamBufferSize int) *Serializer {
	if streamBufferSize <= 0 {
		streamBufferSize = defaultStreamBufferSize
	}

	defaults := make([]headers.Pair, 0, len(defaultHeaders))
	for _, key := range slices.Sorted(maps.Keys(defaultHeaders)) {
		if value := defaultHeaders[key]; len(value) > 0 {
			defaults = append(defaults, headers.Pair{Key: headers.Normalize(key), Value: value})
		}
	}

	return &Serializer{
		defaultHeaders: defaults,
		streamBuff:     make([]byte, streamBufferSize),
	}
}

// Write renders the status line and the headers, flushes them and only then transfers the
// body, if there's any. The body stream is closed on every path once it was produced.
func (s *Serializer) Write(w io.Writer, response *http.Response) error {
	buff := bytebufferpool.Get()
	defer bytebufferpool.Put(buff)

	s.appendHead(buff, response)
	if _, err := w.Write(buff.B); err != nil {
		return fmt.Errorf("write headers: %w", err)
	}

	if response.Body == nil {
		return nil
	}

	return s.writeBody(w, response.Body)
}

func (s *Serializer) appendHead(buff *bytebufferpool.ByteBuffer, response *http.Response) {
	protocol := response.Proto
	if protocol == proto.Unknown {
		protocol = proto.HTTP11
	}

	buff.B = append(buff.B, protocol.String()...)
	buff.B = append(buff.B, ' ')
	buff.B = append(buff.B, response.Status.String()...)
	buff.B = append(buff.B, crlf...)

	for key, value := range response.Headers.Pairs() {
		appendHeader(buff, key, value)
	}

	for _, header := range s.defaultHeaders {
		if !response.Headers.Has(header.Key) {
			appendHeader(buff, header.Key, header.Value)
		}
	}

	if !response.Headers.Has("content-type") {
		appendHeader(buff, "content-type", mime.OctetStream)
	}

	if !response.Headers.Has("date") {
		appendHeader(buff, "date", timer.Date())
	}

	buff.B = append(buff.B, crlf...)
}

func appendHeader(buff *bytebufferpool.ByteBuffer, key, value string) {
	buff.B = append(buff.B, key...)
	buff.B = append(buff.B, ':', ' ')
	buff.B = append(buff.B, value...)
	buff.B = append(buff.B, crlf...)
}

func (s *Serializer) writeBody(w io.Writer, body http.Body) (err error) {
	stream, err := body()
	if stream != nil {
		defer func() {
			if cerr := stream.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close body: %w", cerr)
			}
		}()
	}

	if err != nil {
		return fmt.Errorf("produce body: %w", err)
	}

	if _, err = io.CopyBuffer(w, stream, s.streamBuff); err != nil {
		return fmt.Errorf("transfer body: %w", err)
	}

	return nil
}
