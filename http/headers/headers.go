// Package headers implements the header model: names are case-insensitive and stored
// lower-cased, every name maps to a single value, and repeated names are merged into a
// comma-separated list as RFC 2616, section 4.2 allows.
package headers

import (
	"iter"
	"strings"

	"github.com/indigo-web/utils/strcomp"
)

type Pair struct {
	Key, Value string
}

// Headers is an associative structure of header names and values. It uses linear search,
// which is more efficient than a map on the small number of entries a request usually has.
// The insertion order is preserved, merging keeps the position of the first occurrence.
type Headers struct {
	pairs []Pair
}

func New() *Headers {
	return new(Headers)
}

// NewPrealloc returns an instance of Headers with pre-allocated underlying storage.
func NewPrealloc(n int) *Headers {
	return &Headers{
		pairs: make([]Pair, 0, n),
	}
}

// FromMap returns headers consisting of the map's entries. If the map contains the same
// name in different cases, the values are merged in an unspecified order.
func FromMap(m map[string]string) *Headers {
	h := NewPrealloc(len(m))
	for key, value := range m {
		h.Add(key, value)
	}

	return h
}

// Normalize brings the header name into its canonical lower-cased form.
func Normalize(name string) string {
	return strings.ToLower(name)
}

// Add inserts a new entry. If the name is already presented, the value is joined to the
// existing one with a comma. Empty values are never stored.
func (h *Headers) Add(name, value string) *Headers {
	if len(value) == 0 {
		return h
	}

	if i := h.index(name); i != -1 {
		h.pairs[i].Value += "," + value
		return h
	}

	h.pairs = append(h.pairs, Pair{Key: Normalize(name), Value: value})
	return h
}

// Set replaces the value of the name. Setting an empty value deletes the entry.
func (h *Headers) Set(name, value string) *Headers {
	i := h.index(name)

	switch {
	case len(value) == 0:
		if i != -1 {
			h.pairs = append(h.pairs[:i], h.pairs[i+1:]...)
		}
	case i != -1:
		h.pairs[i].Value = value
	default:
		h.pairs = append(h.pairs, Pair{Key: Normalize(name), Value: value})
	}

	return h
}

// SetDefault sets the value only if the name isn't presented yet.
func (h *Headers) SetDefault(name, value string) *Headers {
	if !h.Has(name) {
		h.Set(name, value)
	}

	return h
}

// Get returns the value and whether the name is presented at all.
func (h *Headers) Get(name string) (value string, found bool) {
	if i := h.index(name); i != -1 {
		return h.pairs[i].Value, true
	}

	return "", false
}

// Value returns the value of the name or an empty string.
func (h *Headers) Value(name string) string {
	value, _ := h.Get(name)
	return value
}

// Has indicates whether there's an entry of the name.
func (h *Headers) Has(name string) bool {
	return h.index(name) != -1
}

// Len returns the number of distinct names.
func (h *Headers) Len() int {
	return len(h.pairs)
}

// Pairs iterates over the entries in their insertion order.
func (h *Headers) Pairs() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, pair := range h.pairs {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Parameterized decomposes the value of the name.
func (h *Headers) Parameterized(name string) (Parameterized, bool) {
	value, found := h.Get(name)
	if !found {
		return Parameterized{}, false
	}

	return ParseParameterized(value), true
}

// ParameterizedList decomposes every element of the comma-separated value of the name.
func (h *Headers) ParameterizedList(name string) []Parameterized {
	return ParseParameterizedList(h.Value(name))
}

// Clone creates a deep copy of the entries.
func (h *Headers) Clone() *Headers {
	clone := NewPrealloc(len(h.pairs))
	clone.pairs = append(clone.pairs, h.pairs...)
	return clone
}

func (h *Headers) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, pair := range h.pairs {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(pair.Key)
		b.WriteString(": ")
		b.WriteString(pair.Value)
	}
	b.WriteByte('}')

	return b.String()
}

func (h *Headers) index(name string) int {
	for i, pair := range h.pairs {
		if strcomp.EqualFold(name, pair.Key) {
			return i
		}
	}

	return -1
}
