package http

import (
	"testing"

	"github.com/indigo-web/fileserve/http/headers"
	"github.com/indigo-web/fileserve/http/mime"
	"github.com/stretchr/testify/require"
)

func TestNegotiate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		n := Negotiate(headers.New())
		require.Empty(t, n.AllowedCodings)
		require.Nil(t, n.TransferEncoding)
		require.Nil(t, n.ContentType)
		require.Empty(t, n.Accept)
		require.True(t, n.Accepts(mime.HTML))
	})

	t.Run("TE", func(t *testing.T) {
		h := headers.New().Add("TE", "GZIP;q=0.5, trailers, br;q=1, deflate;q=abc")
		n := Negotiate(h)
		require.Len(t, n.AllowedCodings, 3)

		gzip := n.AllowedCodings[GZIP]
		require.True(t, gzip.HasQuality)
		require.InDelta(t, 0.5, gzip.Quality, 1e-9)
		require.False(t, n.AllowedCodings[Trailers].HasQuality)
		require.False(t, n.AllowedCodings[Deflate].HasQuality)
		require.True(t, n.Allows(Trailers))
		require.False(t, n.Allows(Compress))
	})

	t.Run("transfer encoding", func(t *testing.T) {
		n := Negotiate(headers.New().Add("Transfer-Encoding", "compress"))
		require.NotNil(t, n.TransferEncoding)
		require.Equal(t, Compress, n.TransferEncoding.Coding)

		n = Negotiate(headers.New().Add("Transfer-Encoding", "chunked"))
		require.Nil(t, n.TransferEncoding)
	})

	t.Run("content type", func(t *testing.T) {
		n := Negotiate(headers.New().Add("Content-Type", "text/html; charset=utf-8"))
		require.NotNil(t, n.ContentType)
		require.Equal(t, "text", n.ContentType.Type)
		require.Equal(t, "html", n.ContentType.Subtype)
		require.Equal(t, map[string]string{"charset": "utf-8"}, n.ContentType.Params)

		n = Negotiate(headers.New().Add("Content-Type", "garbage"))
		require.Nil(t, n.ContentType)
	})

	t.Run("accept", func(t *testing.T) {
		h := headers.New().
			Add("Accept", "text/*;q=0.3, application/json").
			Add("Accept", "nonsense")
		n := Negotiate(h)
		require.Len(t, n.Accept, 2)
		require.True(t, n.Accept[0].IsAnySubtype())
		require.Equal(t, "0.3", n.Accept[0].Params["q"])
		require.True(t, n.Accepts(mime.CSS))
		require.True(t, n.Accepts(mime.JSON))
		require.False(t, n.Accepts(mime.PNG))
	})
}

func TestParseCoding(t *testing.T) {
	for _, token := range []string{"compress", "Deflate", "GZIP", "trailers"} {
		_, ok := ParseCoding(token)
		require.True(t, ok, token)
	}

	_, ok := ParseCoding("chunked")
	require.False(t, ok)
}
