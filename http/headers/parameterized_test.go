package headers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseParameterized(t *testing.T) {
	t.Run("content type", func(t *testing.T) {
		p := ParseParameterized("text/html; charset=utf-8")
		require.Equal(t, "text/html", p.Value)
		require.Equal(t, map[string]string{"charset": "utf-8"}, p.Params)
	})

	t.Run("no params", func(t *testing.T) {
		p := ParseParameterized(" gzip ")
		require.Equal(t, "gzip", p.Value)
		require.Empty(t, p.Params)
		_, found := p.Param("q")
		require.False(t, found)
	})

	t.Run("quoted values", func(t *testing.T) {
		p := ParseParameterized(`multipart/form-data; boundary="abc"; name='file'; broken="x`)
		require.Equal(t, "abc", p.Params["boundary"])
		require.Equal(t, "file", p.Params["name"])
		require.Equal(t, "x", p.Params["broken"])
	})

	t.Run("quotes are stripped from the value only", func(t *testing.T) {
		p := ParseParameterized(`text/plain; "key"="value"`)
		require.Equal(t, "value", p.Params[`"key"`])
	})

	t.Run("whitespace around the segments", func(t *testing.T) {
		p := ParseParameterized("text/plain ;  Charset = UTF-8 ;q=0.5 ; ")
		require.Equal(t, "text/plain", p.Value)
		value, found := p.Param("CHARSET")
		require.True(t, found)
		require.Equal(t, "UTF-8", value)
		require.Equal(t, "0.5", p.Params["q"])
		require.Len(t, p.Params, 2)
	})

	t.Run("string", func(t *testing.T) {
		p := ParseParameterized("text/html;level=1; charset=utf-8")
		require.Equal(t, "text/html; charset=utf-8; level=1", p.String())
		require.Equal(t, "gzip", ParseParameterized("gzip").String())
	})
}

func TestParseParameterizedList(t *testing.T) {
	list := ParseParameterizedList("text/html, application/xhtml+xml;q=0.9, */*;q=0.8")
	require.Len(t, list, 3)
	require.Equal(t, "text/html", list[0].Value)
	require.Equal(t, "application/xhtml+xml", list[1].Value)
	require.Equal(t, "0.9", list[1].Params["q"])
	require.Equal(t, "*/*", list[2].Value)

	h := New().Add("TE", "trailers").Add("te", "deflate;q=0.5")
	list = h.ParameterizedList("te")
	require.Len(t, list, 2)
	require.Equal(t, "trailers", list[0].Value)
	require.Equal(t, "0.5", list[1].Params["q"])

	require.Empty(t, h.ParameterizedList("accept"))

	p, found := New().Add("Content-Type", "text/plain; charset=utf-8").Parameterized("content-type")
	require.True(t, found)
	require.Equal(t, "text/plain", p.Value)
	_, found = h.Parameterized("content-type")
	require.False(t, found)
}
