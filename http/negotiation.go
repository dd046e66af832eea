package http

import (
	"strconv"
	"strings"

	"github.com/indigo-web/fileserve/http/headers"
	"github.com/indigo-web/fileserve/http/mime"
)

// Coding is a transfer coding name, as used in the TE and Transfer-Encoding headers.
type Coding string

const (
	Compress Coding = "compress"
	Deflate  Coding = "deflate"
	GZIP     Coding = "gzip"
	Trailers Coding = "trailers"
)

// ParseCoding returns the known coding matching the token case-insensitively.
func ParseCoding(token string) (Coding, bool) {
	switch c := Coding(strings.ToLower(token)); c {
	case Compress, Deflate, GZIP, Trailers:
		return c, true
	default:
		return "", false
	}
}

// TransferCoding is a coding with its optional quality value.
type TransferCoding struct {
	Coding Coding
	// Quality is meaningful only if HasQuality is set.
	Quality    float64
	HasQuality bool
}

func parseTransferCoding(value headers.Parameterized) (TransferCoding, bool) {
	coding, ok := ParseCoding(value.Value)
	if !ok {
		return TransferCoding{}, false
	}

	tc := TransferCoding{Coding: coding}
	if q, found := value.Param("q"); found {
		quality, err := strconv.ParseFloat(q, 64)
		if err == nil {
			tc.Quality, tc.HasQuality = quality, true
		}
	}

	return tc, true
}

// Negotiation holds the content negotiation attributes of a request.
type Negotiation struct {
	// AllowedCodings are the codings listed in TE, keyed by the coding. The last
	// occurrence of a coding wins.
	AllowedCodings map[Coding]TransferCoding
	// TransferEncoding is nil when the header is missing or names an unknown coding.
	TransferEncoding *TransferCoding
	// ContentType is nil when the header is missing or malformed.
	ContentType *mime.Type
	Accept      []mime.Type
}

// Negotiate derives the negotiation attributes from the headers.
func Negotiate(h *headers.Headers) Negotiation {
	n := Negotiation{
		AllowedCodings: make(map[Coding]TransferCoding),
	}

	for _, value := range h.ParameterizedList("te") {
		if tc, ok := parseTransferCoding(value); ok {
			n.AllowedCodings[tc.Coding] = tc
		}
	}

	if value, found := h.Parameterized("transfer-encoding"); found {
		if tc, ok := parseTransferCoding(value); ok {
			n.TransferEncoding = &tc
		}
	}

	if value, found := h.Parameterized("content-type"); found {
		if t, ok := mime.Parse(value); ok {
			n.ContentType = &t
		}
	}

	for _, value := range h.ParameterizedList("accept") {
		if t, ok := mime.Parse(value); ok {
			n.Accept = append(n.Accept, t)
		}
	}

	return n
}

// Allows reports whether the client accepts the coding.
func (n Negotiation) Allows(c Coding) bool {
	_, found := n.AllowedCodings[c]
	return found
}

// Accepts reports whether any of the accepted types matches the MIME. A request without
// the Accept header accepts everything.
func (n Negotiation) Accepts(m mime.MIME) bool {
	if len(n.Accept) == 0 {
		return true
	}

	for _, t := range n.Accept {
		if t.Matches(m) {
			return true
		}
	}

	return false
}
