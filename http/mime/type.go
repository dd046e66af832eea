package mime

import (
	"maps"
	"slices"
	"strings"

	"github.com/indigo-web/fileserve/http/headers"
)

const wildcard = "*"

// Type is a media type with its parameters, e.g. text/html; charset=utf-8.
type Type struct {
	Type, Subtype string
	Params        map[string]string
}

// New splits the MIME into type and subtype and attaches the default charset, if the MIME
// has one.
func New(mime MIME) Type {
	typ, subtype, _ := strings.Cut(mime, "/")
	t := Type{Type: typ, Subtype: subtype}
	if charset, found := DefaultCharset[mime]; found {
		t.Params = map[string]string{"charset": charset}
	}

	return t
}

// Parse decomposes a Content-Type or Accept element. ok is false if the value isn't in the
// type/subtype form.
func Parse(value headers.Parameterized) (t Type, ok bool) {
	typ, subtype, found := strings.Cut(value.Value, "/")
	if !found || len(typ) == 0 || len(subtype) == 0 {
		return Type{}, false
	}

	return Type{
		Type:    strings.ToLower(typ),
		Subtype: strings.ToLower(subtype),
		Params:  value.Params,
	}, true
}

// MIME returns the type/subtype pair without parameters.
func (t Type) MIME() MIME {
	return t.Type + "/" + t.Subtype
}

// IsAnyType reports whether the type is */*.
func (t Type) IsAnyType() bool {
	return t.Type == wildcard && t.Subtype == wildcard
}

// IsAnySubtype reports whether the subtype is a wildcard, e.g. text/*.
func (t Type) IsAnySubtype() bool {
	return t.Subtype == wildcard
}

// Matches reports whether the type, possibly containing wildcards, covers the concrete
// MIME. Parameters are ignored.
func (t Type) Matches(mime MIME) bool {
	if t.IsAnyType() {
		return true
	}

	typ, subtype, _ := strings.Cut(mime, "/")
	if !strings.EqualFold(t.Type, typ) {
		return false
	}

	return t.IsAnySubtype() || strings.EqualFold(t.Subtype, subtype)
}

func (t Type) String() string {
	if len(t.Params) == 0 {
		return t.MIME()
	}

	var b strings.Builder
	b.WriteString(t.MIME())
	for _, key := range slices.Sorted(maps.Keys(t.Params)) {
		b.WriteString("; ")
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(t.Params[key])
	}

	return b.String()
}
