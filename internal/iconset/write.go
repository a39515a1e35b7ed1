package iconset

import (
	"bytes"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"
)

// File describes one written icon
type File struct {
	Path string
	Slot string
	Size int
	Data []byte
}

// Recorder receives every file after it has been written
type Recorder interface {
	Record(f File) error
}

// ensureDir creates dir and any missing parents
func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &Error{Kind: IOFailure, Path: dir, Err: err}
	}
	return nil
}

func encodePNG(path string, img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, &Error{Kind: EncodeFailure, Path: path, Err: err}
	}
	return buf.Bytes(), nil
}

func encodeICO(path string, img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := ico.Encode(&buf, img); err != nil {
		return nil, &Error{Kind: EncodeFailure, Path: path, Err: err}
	}
	return buf.Bytes(), nil
}

// writeFile writes data to path. The parent directory must already exist.
func writeFile(path string, data []byte) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return &Error{Kind: IOFailure, Path: path, Err: err}
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return &Error{Kind: IOFailure, Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &Error{Kind: IOFailure, Path: path, Err: err}
	}
	return nil
}
