package strutil

import "strings"

// LStripWS strips leading spaces and tabs.
func LStripWS(str string) string {
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case ' ', '\t':
		default:
			return str[i:]
		}
	}

	return ""
}

// RStripWS strips trailing spaces and tabs.
func RStripWS(str string) string {
	for i := len(str); i > 0; i-- {
		switch str[i-1] {
		case ' ', '\t':
		default:
			return str[:i]
		}
	}

	return ""
}

// StripWS strips spaces and tabs on both sides.
func StripWS(str string) string {
	return RStripWS(LStripWS(str))
}

// CutHeader separates the header value from its parameters. Leading whitespace of the
// parameters is stripped.
func CutHeader(header string) (value, params string) {
	sep := strings.IndexByte(header, ';')
	if sep == -1 {
		return header, ""
	}

	return header[:sep], LStripWS(header[sep+1:])
}

// Unquote strips a leading and a trailing quote, single or double. Each side is handled
// on its own, so an unbalanced quote is stripped as well.
func Unquote(str string) string {
	if len(str) > 0 && isQuote(str[0]) {
		str = str[1:]
	}

	if len(str) > 0 && isQuote(str[len(str)-1]) {
		str = str[:len(str)-1]
	}

	return str
}

func isQuote(c byte) bool {
	return c == '"' || c == '\''
}
