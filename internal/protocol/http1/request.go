package http1

import (
	"github.com/indigo-web/fileserve/http"
)

// AppendRequest renders the request in the wire format, which Parse reads back.
func AppendRequest(buff []byte, request *http.Request) []byte {
	buff = append(buff, request.Method.String()...)
	buff = append(buff, ' ')
	buff = append(buff, request.Target.String()...)
	buff = append(buff, ' ')
	buff = append(buff, request.Proto.String()...)
	buff = append(buff, crlf...)

	for key, value := range request.Headers.Pairs() {
		buff = append(buff, key...)
		buff = append(buff, ':', ' ')
		buff = append(buff, value...)
		buff = append(buff, crlf...)
	}

	buff = append(buff, crlf...)
	return append(buff, request.Body...)
}
