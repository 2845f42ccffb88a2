package store

import (
	"image"
	"image/color"
	"image/jpeg"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileImageStoreSaveBiteImage(t *testing.T) {
	dir, err := ioutil.TempDir("", "bites")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	img := image.NewNRGBA(image.Rect(0, 0, 32, 24))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(3, 3, color.NRGBA{200, 30, 30, 255})

	s := NewFileImageStore(filepath.Join(dir, "uploads", "bites"), "/uploads/bites")
	url, size, err := s.SaveBiteImage("abc", img)
	assert.NoError(t, err)
	assert.Equal(t, "/uploads/bites/abc.jpg", url)

	f, err := os.Open(filepath.Join(dir, "uploads", "bites", "abc.jpg"))
	if !assert.NoError(t, err) {
		return
	}
	defer f.Close()

	info, _ := f.Stat()
	assert.Equal(t, int64(size), info.Size())

	decoded, err := jpeg.Decode(f)
	assert.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}
