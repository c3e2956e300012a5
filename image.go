package seamcarver

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrInputUnavailable is returned when the source image cannot be decoded.
var ErrInputUnavailable = errors.New("input unavailable")

// Decode decodes the source image, applying the EXIF orientation if present,
// and converts it to *image.NRGBA with the min-point at (0, 0).
func Decode(r io.Reader) (*image.NRGBA, error) {
	src, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	return imaging.Clone(src), nil
}

// Encode encodes the image into the writer. Files are encoded according to their extension,
// any other writer (like a pipe) receives a JPEG image.
func Encode(w io.Writer, img image.Image) error {
	if f, ok := w.(*os.File); ok {
		return encodeExt(w, img, filepath.Ext(f.Name()))
	}
	return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(100))
}

// encodeExt encodes the image in the format matching the file extension.
func encodeExt(w io.Writer, img image.Image, ext string) error {
	switch ext = strings.ToLower(ext); ext {
	case "", ".jpg", ".jpeg":
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(100))
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		format, err := imaging.FormatFromExtension(ext)
		if err != nil {
			return fmt.Errorf("unsupported image format: %q", ext)
		}
		return imaging.Encode(w, img, format)
	}
}
