package proto

// Proto is a protocol version. Only HTTP/1.0 and HTTP/1.1 are supported.
type Proto uint8

const (
	Unknown Proto = iota
	HTTP10
	HTTP11
)

const (
	// TokenLength is the length of a version literal, e.g. "HTTP/1.1"
	TokenLength = len("HTTP/x.x")

	http10 = "HTTP/1.0"
	http11 = "HTTP/1.1"
)

func (p Proto) String() string {
	switch p {
	case HTTP10:
		return http10
	case HTTP11:
		return http11
	default:
		return ""
	}
}

// Parse matches the version literal exactly. Anything but HTTP/1.0 and HTTP/1.1 results
// in Unknown.
func Parse(str string) Proto {
	switch str {
	case http10:
		return HTTP10
	case http11:
		return HTTP11
	default:
		return Unknown
	}
}
