package strutil

import (
	"iter"
	"strings"
)

// WalkKV iterates over semicolon-separated key=value pairs. Both sides are stripped of
// whitespace and the value is unquoted. A segment without the equality sign is reported
// with an empty value, empty segments are skipped.
func WalkKV(data string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for len(data) > 0 {
			var segment string
			segment, data, _ = strings.Cut(data, ";")
			segment = StripWS(segment)
			if len(segment) == 0 {
				continue
			}

			key, value, _ := strings.Cut(segment, "=")
			if !yield(RStripWS(key), Unquote(LStripWS(value))) {
				return
			}
		}
	}
}

// SplitList iterates over comma-separated list elements. Commas inside quoted strings
// don't split. Elements are stripped of whitespace, empty ones are skipped.
func SplitList(data string) iter.Seq[string] {
	return func(yield func(string) bool) {
		var quote byte
		start := 0

		for i := 0; i <= len(data); i++ {
			if i < len(data) {
				c := data[i]
				switch {
				case quote != 0:
					if c == quote {
						quote = 0
					}
					continue
				case c == '"':
					quote = c
					continue
				case c != ',':
					continue
				}
			}

			if elem := StripWS(data[start:i]); len(elem) > 0 {
				if !yield(elem) {
					return
				}
			}

			start = i + 1
		}
	}
}
