package method

import "strings"

// Method is a request method. Besides the predefined ones, any extension token is a
// valid method, so methods are compared by their exact (case-sensitive) spelling.
type Method string

// Methods defined by RFC 2616, section 5.1.1
const (
	OPTIONS Method = "OPTIONS"
	GET     Method = "GET"
	HEAD    Method = "HEAD"
	POST    Method = "POST"
	PUT     Method = "PUT"
	DELETE  Method = "DELETE"
	TRACE   Method = "TRACE"
	CONNECT Method = "CONNECT"
)

// List contains all the predefined methods.
var List = []Method{OPTIONS, GET, HEAD, POST, PUT, DELETE, TRACE, CONNECT}

// Parse returns one of the predefined methods if str spells it, otherwise an extension
// method is returned. The extension method never references the memory of str.
func Parse(str string) Method {
	switch len(str) {
	case 3:
		if str == "GET" {
			return GET
		} else if str == "PUT" {
			return PUT
		}
	case 4:
		if str == "POST" {
			return POST
		} else if str == "HEAD" {
			return HEAD
		}
	case 5:
		if str == "TRACE" {
			return TRACE
		}
	case 6:
		if str == "DELETE" {
			return DELETE
		}
	case 7:
		if str == "CONNECT" {
			return CONNECT
		} else if str == "OPTIONS" {
			return OPTIONS
		}
	}

	return Method(strings.Clone(str))
}

// IsKnown reports whether the method is one of the predefined ones.
func (m Method) IsKnown() bool {
	for _, known := range List {
		if m == known {
			return true
		}
	}

	return false
}

func (m Method) String() string {
	return string(m)
}
