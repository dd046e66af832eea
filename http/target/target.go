// Package target models the request target: either the asterisk, addressing the server
// as a whole, or a URI.
package target

import (
	"errors"
	"fmt"
	"net/url"
)

var ErrEmpty = errors.New("empty request target")

// Target is a closed set of two variants: Asterisk and URI. Consumers are expected to
// switch over both of them.
type Target interface {
	fmt.Stringer
	isTarget()
}

const asterisk = "*"

// Asterisk is the `*` target, used e.g. by OPTIONS requests.
type Asterisk struct{}

func (Asterisk) isTarget() {}

func (Asterisk) String() string {
	return asterisk
}

// URI is any target but the asterisk: origin-form (/path?query) or absolute-form
// (http://host/path).
type URI struct {
	URL *url.URL
}

func (URI) isTarget() {}

// Path returns the percent-decoded path component.
func (u URI) Path() string {
	return u.URL.Path
}

func (u URI) String() string {
	return u.URL.String()
}

// Parse returns Asterisk for the `*` literal and a URI otherwise.
func Parse(raw string) (Target, error) {
	switch raw {
	case "":
		return nil, ErrEmpty
	case asterisk:
		return Asterisk{}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}

	return URI{URL: u}, nil
}
