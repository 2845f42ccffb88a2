package bite

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const (
	// MaxWidth is the width images are downscaled to before analysis.
	MaxWidth = 200

	// DefaultMaxPixels bounds width*height of an image before it is decoded.
	DefaultMaxPixels = 40000000
)

// Decode decodes any registered raster format into an opaque NRGBA image.
// Alpha is dropped without compositing. The header is read first and images
// declaring more than maxPixels pixels are rejected before any raster is
// allocated; maxPixels <= 0 means DefaultMaxPixels.
func Decode(data []byte, maxPixels int) (*image.NRGBA, string, error) {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", &ImageDecodeError{Size: len(data), Err: err}
	}
	if int64(cfg.Width)*int64(cfg.Height) > int64(maxPixels) {
		return nil, "", &ImageDecodeError{
			Size: len(data),
			Err:  fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height),
		}
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", &ImageDecodeError{Size: len(data), Err: err}
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, "", &ImageDecodeError{Size: len(data), Err: image.ErrFormat}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	opaque(dst)
	return dst, format, nil
}

// downscale shrinks img to MaxWidth with bilinear sampling, keeping the
// aspect ratio. Narrower images are returned as is.
func downscale(img *image.NRGBA) *image.NRGBA {
	w0, h0 := img.Bounds().Dx(), img.Bounds().Dy()
	if w0 <= MaxWidth {
		return img
	}

	ratio := float64(MaxWidth) / float64(w0)
	h := int(float64(h0) * ratio)
	if h < 1 {
		h = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, MaxWidth, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

func opaque(img *image.NRGBA) {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
}
