package store

import (
	"bytes"
	"image"
	"image/jpeg"
	"io/ioutil"
	"os"
	"path"
	"path/filepath"
)

const biteImageQuality = 92

// ImageStore keeps uploaded bite photos.
type ImageStore interface {
	SaveBiteImage(id string, img image.Image) (url string, size int, err error)
}

// FileImageStore writes JPEG files into a directory served under urlPrefix.
type FileImageStore struct {
	dir       string
	urlPrefix string
}

func NewFileImageStore(dir, urlPrefix string) *FileImageStore {
	return &FileImageStore{
		dir:       dir,
		urlPrefix: urlPrefix,
	}
}

// SaveBiteImage re-encodes img as JPEG and returns its public url and size.
func (s *FileImageStore) SaveBiteImage(id string, img image.Image) (string, int, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", 0, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: biteImageQuality}); err != nil {
		return "", 0, err
	}

	name := id + ".jpg"
	if err := ioutil.WriteFile(filepath.Join(s.dir, name), buf.Bytes(), 0644); err != nil {
		return "", 0, err
	}

	return path.Join(s.urlPrefix, name), buf.Len(), nil
}
