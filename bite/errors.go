package bite

import (
	"errors"
	"fmt"
)

var (
	ErrNoImage = errors.New("no image provided")

	// ErrImageTooLarge is wrapped by an ImageDecodeError when the declared
	// dimensions exceed the pixel limit.
	ErrImageTooLarge = errors.New("image dimensions exceed the pixel limit")
)

// ImageDecodeError reports bytes that are not a decodable raster image.
type ImageDecodeError struct {
	Size int
	Err  error
}

func (e *ImageDecodeError) Error() string {
	return fmt.Sprintf("cannot decode image of %d bytes: %s", e.Size, e.Err)
}

func (e *ImageDecodeError) Unwrap() error {
	return e.Err
}

// IsImageDecodeError reports whether err is, or wraps, an ImageDecodeError.
func IsImageDecodeError(err error) bool {
	var decodeErr *ImageDecodeError
	return errors.As(err, &decodeErr)
}

// IsImageTooLarge reports whether err rejects an image by its dimensions.
func IsImageTooLarge(err error) bool {
	return errors.Is(err, ErrImageTooLarge)
}
