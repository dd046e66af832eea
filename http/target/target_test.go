package target

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("asterisk", func(t *testing.T) {
		tgt, err := Parse("*")
		require.NoError(t, err)
		require.Equal(t, Asterisk{}, tgt)
		require.Equal(t, "*", tgt.String())
	})

	t.Run("origin form", func(t *testing.T) {
		tgt, err := Parse("/static/index.html?lang=en")
		require.NoError(t, err)
		uri, ok := tgt.(URI)
		require.True(t, ok)
		require.Equal(t, "/static/index.html", uri.Path())
		require.Equal(t, "lang=en", uri.URL.RawQuery)
		require.Equal(t, "/static/index.html?lang=en", uri.String())
	})

	t.Run("absolute form", func(t *testing.T) {
		tgt, err := Parse("http://example.com:8080/a%20b")
		require.NoError(t, err)
		uri := tgt.(URI)
		require.Equal(t, "http", uri.URL.Scheme)
		require.Equal(t, "example.com:8080", uri.URL.Host)
		require.Equal(t, "/a b", uri.Path())
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Parse("/%zz")
		require.Error(t, err)

		_, err = Parse("")
		require.ErrorIs(t, err, ErrEmpty)
	})
}
