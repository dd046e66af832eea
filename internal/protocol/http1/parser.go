package http1

import (
	"errors"
	"fmt"

	"github.com/indigo-web/fileserve/http"
	"github.com/indigo-web/fileserve/http/headers"
	"github.com/indigo-web/fileserve/http/method"
	"github.com/indigo-web/fileserve/http/proto"
	"github.com/indigo-web/fileserve/http/target"
	"github.com/indigo-web/fileserve/internal/scanner"
	"github.com/indigo-web/fileserve/internal/strutil"
	"github.com/indigo-web/utils/uf"
)

var (
	ErrUnsupportedVersion = errors.New("unsupported protocol version")
	ErrBadTarget          = errors.New("malformed request target")
	ErrRequestLine        = errors.New("malformed request line")
	ErrHeader             = errors.New("malformed header field")
)

// IsBadRequest reports whether the client deserves a 400 Bad Request for the parsing error.
// Any other error means the stream isn't an HTTP message at all.
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrUnsupportedVersion) || errors.Is(err, ErrBadTarget)
}

// Parse reads a complete request from the scanner. Everything after the headers becomes the
// body, which aliases the scanned buffer.
func Parse(s *scanner.Scanner) (*http.Request, error) {
	m, t, p, err := parseRequestLine(s)
	if err != nil {
		return nil, err
	}

	hdrs, err := parseHeaders(s)
	if err != nil {
		return nil, err
	}

	return http.NewRequest(m, t, p, hdrs, uf.S2B(s.Remainder())), nil
}

func parseRequestLine(s *scanner.Scanner) (m method.Method, t target.Target, p proto.Proto, err error) {
	s.SkipLWS()
	rawMethod, err := s.ReadUntilLWS()
	if err != nil {
		return "", nil, 0, fmt.Errorf("method: %w", errors.Join(ErrRequestLine, err))
	}

	s.SkipLWS()
	rawTarget, err := s.ReadUntilLWS()
	if err != nil {
		return "", nil, 0, fmt.Errorf("target: %w", errors.Join(ErrRequestLine, err))
	}

	t, err = target.Parse(rawTarget)
	if err != nil {
		return "", nil, 0, fmt.Errorf("%w: %w", ErrBadTarget, err)
	}

	s.SkipLWS()
	rawProto, err := s.Read(proto.TokenLength)
	if err != nil {
		return "", nil, 0, fmt.Errorf("version: %w", errors.Join(ErrRequestLine, err))
	}

	if p = proto.Parse(rawProto); p == proto.Unknown {
		return "", nil, 0, fmt.Errorf("%q: %w", rawProto, ErrUnsupportedVersion)
	}

	// trailing whitespace and the line's own CRLF only. The blank line terminating the
	// headers must stay in place
	s.SkipWS()
	if !s.SkipCRLF() && s.IsReadable(1) {
		return "", nil, 0, fmt.Errorf("after version: %w", ErrRequestLine)
	}

	return method.Parse(rawMethod), t, p, nil
}

func parseHeaders(s *scanner.Scanner) (*headers.Headers, error) {
	hdrs := headers.New()

	for s.IsReadable(1) {
		if s.SkipCRLF() {
			break
		}

		name, err := s.ReadUntil(':')
		if err != nil {
			return nil, fmt.Errorf("header name: %w", errors.Join(ErrHeader, err))
		}

		if name = strutil.StripWS(name); len(name) == 0 {
			return nil, fmt.Errorf("empty header name: %w", ErrHeader)
		}

		_ = s.Skip(1)
		s.SkipWS()
		value, err := readValue(s)
		if err != nil {
			return nil, fmt.Errorf("header %q: %w", name, errors.Join(ErrHeader, err))
		}

		hdrs.Add(name, value)
	}

	return hdrs, nil
}

// readValue reads the value with all its continuation lines. Every physical line is stripped
// of trailing whitespace, continuation lines of the leading one as well, and the pieces are
// joined by a single space.
func readValue(s *scanner.Scanner) (string, error) {
	line, err := s.ReadSingleLine()
	if err != nil {
		return "", err
	}

	value := strutil.RStripWS(line)
	for isContinuation(s) {
		s.SkipWS()
		line, err = s.ReadSingleLine()
		if err != nil {
			return "", err
		}

		switch line = strutil.RStripWS(line); {
		case len(line) == 0:
		case len(value) == 0:
			value = line
		default:
			value += " " + line
		}
	}

	return value, nil
}

func isContinuation(s *scanner.Scanner) bool {
	c, err := s.PeekByte()
	return err == nil && scanner.IsWS(c)
}
