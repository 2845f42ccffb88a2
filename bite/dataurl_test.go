package bite

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeDataURL(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff}
	b64 := base64.StdEncoding.EncodeToString(raw)

	data, mime, err := DecodeDataURL("data:image/png;base64," + b64)
	assert.NoError(t, err)
	assert.Equal(t, raw, data)
	assert.Equal(t, "image/png", mime)

	data, mime, err = DecodeDataURL("  base64," + b64 + "\n")
	assert.NoError(t, err)
	assert.Equal(t, raw, data)
	assert.Equal(t, "", mime)

	data, _, err = DecodeDataURL("data:image/jpeg;base64," + base64.RawURLEncoding.EncodeToString(raw))
	assert.NoError(t, err)
	assert.Equal(t, raw, data)
}

func TestDecodeDataURLErrors(t *testing.T) {
	for _, s := range []string{"", "data:image/png,abc", "data:image/png;base64,", "https://example.com/x.png"} {
		_, _, err := DecodeDataURL(s)
		assert.Equal(t, ErrNoImage, err, s)
	}

	_, _, err := DecodeDataURL("data:image/png;base64,@@@@")
	assert.True(t, IsImageDecodeError(err))
}
