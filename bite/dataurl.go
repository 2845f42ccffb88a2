package bite

import (
	"encoding/base64"
	"strings"
)

const base64Marker = "base64,"

// DecodeDataURL extracts the payload of a base64 data URL such as
// "data:image/png;base64,iVBOR...". It also returns the mime type when the
// prefix names one. Strings without a base64 payload yield ErrNoImage.
func DecodeDataURL(s string) ([]byte, string, error) {
	s = strings.TrimSpace(s)

	idx := strings.Index(s, base64Marker)
	if idx < 0 {
		return nil, "", ErrNoImage
	}

	var mime string
	if meta := s[:idx]; strings.HasPrefix(meta, "data:") {
		meta = strings.TrimPrefix(meta, "data:")
		if semi := strings.IndexByte(meta, ';'); semi >= 0 {
			meta = meta[:semi]
		}
		mime = meta
	}

	payload := strings.TrimSpace(s[idx+len(base64Marker):])
	if payload == "" {
		return nil, mime, ErrNoImage
	}

	// standard first, then URL-safe and unpadded variants
	for _, enc := range []*base64.Encoding{base64.StdEncoding, base64.URLEncoding, base64.RawStdEncoding, base64.RawURLEncoding} {
		if b, err := enc.DecodeString(payload); err == nil {
			return b, mime, nil
		}
	}
	_, err := base64.StdEncoding.DecodeString(payload)
	return nil, mime, &ImageDecodeError{Size: len(payload), Err: err}
}
