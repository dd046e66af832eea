package headers

import (
	"maps"
	"slices"
	"strings"

	"github.com/indigo-web/fileserve/internal/strutil"
)

// Parameterized is a header value in the form of `token; key=value; key2="value2"`, as
// used by Accept, TE, Transfer-Encoding and Content-Type.
type Parameterized struct {
	Value string
	// Params keys are lower-cased, values are stripped of their quotes.
	Params map[string]string
}

// ParseParameterized decomposes the raw value. Segments are separated by semicolons and
// trimmed, each parameter is split around the first equality sign and its value is
// stripped of a leading and a trailing quote.
func ParseParameterized(raw string) Parameterized {
	value, params := strutil.CutHeader(raw)
	p := Parameterized{
		Value: strutil.StripWS(value),
	}

	for key, val := range strutil.WalkKV(params) {
		if len(key) == 0 {
			continue
		}

		if p.Params == nil {
			p.Params = make(map[string]string)
		}

		p.Params[strings.ToLower(key)] = val
	}

	return p
}

// ParseParameterizedList decomposes every element of a comma-separated list.
func ParseParameterizedList(raw string) (list []Parameterized) {
	for elem := range strutil.SplitList(raw) {
		list = append(list, ParseParameterized(elem))
	}

	return list
}

// Param returns the parameter by its case-insensitive key.
func (p Parameterized) Param(key string) (string, bool) {
	value, found := p.Params[strings.ToLower(key)]
	return value, found
}

func (p Parameterized) String() string {
	if len(p.Params) == 0 {
		return p.Value
	}

	var b strings.Builder
	b.WriteString(p.Value)
	for _, key := range slices.Sorted(maps.Keys(p.Params)) {
		b.WriteString("; ")
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(p.Params[key])
	}

	return b.String()
}
