package friendcode

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`^[0-9A-Z]{6}$`)

func TestGenerate(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		code := Generate()
		assert.Regexp(t, codePattern, code)
		seen[code] = struct{}{}
	}
	// 36^6 possibilities; 200 draws colliding heavily would mean a broken source
	assert.Greater(t, len(seen), 190)
}

func TestNormalize(t *testing.T) {
	code, err := Normalize("  fe3490 ")
	require.NoError(t, err)
	assert.Equal(t, "FE3490", code)

	code, err = Normalize("any-Opaque-code")
	require.NoError(t, err)
	assert.Equal(t, "ANY-OPAQUE-CODE", code)

	_, err = Normalize("   ")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestQR(t *testing.T) {
	png, err := QR("FE3490", 0)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")))

	_, err = QR("", 128)
	assert.ErrorIs(t, err, ErrEmpty)
}
