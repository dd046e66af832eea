// Package scanner implements a cursor over a complete in-memory HTTP message. The cursor
// only moves forward; callers that need to look ahead use Peek instead of rewinding.
package scanner

import (
	"errors"
	"fmt"

	"github.com/indigo-web/utils/uf"
)

var (
	ErrTruncated           = errors.New("unexpected end of input")
	ErrDelimiterNotFound   = errors.New("delimiter not found")
	ErrUnexpectedLineEnd   = errors.New("line ends before the delimiter")
	ErrMalformedLineEnding = errors.New("malformed line ending")
)

const (
	cr = '\r'
	lf = '\n'
	sp = ' '
	ht = '\t'
)

// IsLWS reports whether the char is a linear whitespace: SP, HT, CR or LF.
func IsLWS(c byte) bool {
	switch c {
	case sp, ht, cr, lf:
		return true
	default:
		return false
	}
}

// IsWS reports whether the char is a whitespace within a single line: SP or HT.
func IsWS(c byte) bool {
	return c == sp || c == ht
}

type Scanner struct {
	data string
	pos  int
}

func New(data []byte) *Scanner {
	return NewString(uf.B2S(data))
}

func NewString(data string) *Scanner {
	return &Scanner{data: data}
}

// Pos returns the current offset of the cursor.
func (s *Scanner) Pos() int {
	return s.pos
}

// IsReadable reports whether at least n more chars are left.
func (s *Scanner) IsReadable(n int) bool {
	return len(s.data)-s.pos >= n
}

// Peek returns the next n chars without advancing the cursor.
func (s *Scanner) Peek(n int) (string, error) {
	if !s.IsReadable(n) {
		return "", fmt.Errorf("peek %d chars, %d left: %w", n, len(s.data)-s.pos, ErrTruncated)
	}

	return s.data[s.pos : s.pos+n], nil
}

// PeekByte returns the next char without advancing the cursor.
func (s *Scanner) PeekByte() (byte, error) {
	if !s.IsReadable(1) {
		return 0, ErrTruncated
	}

	return s.data[s.pos], nil
}

// Skip advances the cursor by n chars.
func (s *Scanner) Skip(n int) error {
	if !s.IsReadable(n) {
		return fmt.Errorf("skip %d chars, %d left: %w", n, len(s.data)-s.pos, ErrTruncated)
	}

	s.pos += n
	return nil
}

// Read consumes exactly n chars.
func (s *Scanner) Read(n int) (string, error) {
	str, err := s.Peek(n)
	if err != nil {
		return "", err
	}

	s.pos += n
	return str, nil
}

// ReadUntil consumes chars up to, but not including, the delimiter. The delimiter must
// appear on the current line, otherwise ErrUnexpectedLineEnd is returned. Nothing is
// consumed on error.
func (s *Scanner) ReadUntil(delim byte) (string, error) {
	for i := s.pos; i < len(s.data); i++ {
		switch c := s.data[i]; c {
		case delim:
			token := s.data[s.pos:i]
			s.pos = i
			return token, nil
		case cr, lf:
			return "", fmt.Errorf("looking for %q: %w", delim, ErrUnexpectedLineEnd)
		}
	}

	return "", fmt.Errorf("looking for %q: %w", delim, ErrDelimiterNotFound)
}

// ReadUntilLWS consumes chars up to the first linear whitespace. Nothing is consumed
// on error.
func (s *Scanner) ReadUntilLWS() (string, error) {
	for i := s.pos; i < len(s.data); i++ {
		if IsLWS(s.data[i]) {
			token := s.data[s.pos:i]
			s.pos = i
			return token, nil
		}
	}

	return "", fmt.Errorf("looking for whitespace: %w", ErrDelimiterNotFound)
}

// ReadSingleLine consumes the line including its CRLF and returns it without the line
// terminator. If the input ends before any line terminator, the rest of the input is
// returned as the last line.
func (s *Scanner) ReadSingleLine() (string, error) {
	for i := s.pos; i < len(s.data); i++ {
		switch s.data[i] {
		case cr:
			if i+1 >= len(s.data) || s.data[i+1] != lf {
				return "", fmt.Errorf("CR not followed by LF: %w", ErrMalformedLineEnding)
			}

			line := s.data[s.pos:i]
			s.pos = i + 2
			return line, nil
		case lf:
			return "", fmt.Errorf("LF without preceding CR: %w", ErrMalformedLineEnding)
		}
	}

	line := s.data[s.pos:]
	s.pos = len(s.data)
	return line, nil
}

// SkipLWS skips all the linear whitespace, including line terminators. Returns whether
// anything was skipped.
func (s *Scanner) SkipLWS() bool {
	start := s.pos
	for s.pos < len(s.data) && IsLWS(s.data[s.pos]) {
		s.pos++
	}

	return s.pos > start
}

// SkipWS skips spaces and tabs, never leaving the current line.
func (s *Scanner) SkipWS() bool {
	start := s.pos
	for s.pos < len(s.data) && IsWS(s.data[s.pos]) {
		s.pos++
	}

	return s.pos > start
}

// SkipCRLF consumes exactly one CRLF, if it's right at the cursor.
func (s *Scanner) SkipCRLF() bool {
	if s.AtCRLF() {
		s.pos += 2
		return true
	}

	return false
}

// AtCRLF reports whether the cursor points at a CRLF.
func (s *Scanner) AtCRLF() bool {
	return s.IsReadable(2) && s.data[s.pos] == cr && s.data[s.pos+1] == lf
}

// Remainder consumes and returns everything left.
func (s *Scanner) Remainder() string {
	rest := s.data[s.pos:]
	s.pos = len(s.data)
	return rest
}
