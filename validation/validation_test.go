package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeText(t *testing.T) {
	text, err := DecodeText("q.sql", []byte("SELECT 'é' FROM rdb$database;"))
	require.NoError(t, err)
	assert.Equal(t, "SELECT 'é' FROM rdb$database;", text)

	_, err = DecodeText("bin.sql", []byte{0xff, 0xfe, 0x00})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidEncoding))
	assert.Contains(t, err.Error(), "bin.sql")
}

func TestBaseName(t *testing.T) {
	cases := map[string]string{
		"orders.sql":        "orders",
		"orders":            "orders",
		"report.v2.sql":     "report.v2",
		"../../etc/passwd":  "passwd",
		"dir/sub/query.SQL": "query",
		`C:\tmp\win.sql`:    "win",
		".hidden":           ".hidden",
		".env.sql":          ".env",
		"":                  "",
	}
	for in, want := range cases {
		assert.Equal(t, want, BaseName(in), "BaseName(%q)", in)
	}
}

func TestIsValidPrompt(t *testing.T) {
	assert.True(t, IsValidPrompt("explain this"))
	assert.False(t, IsValidPrompt("   \n"))
}
