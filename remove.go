package seamcarver

import (
	"errors"
	"image"
)

// ErrTooNarrow is returned when removing a seam would leave an image without columns.
var ErrTooNarrow = errors.New("image is too narrow to remove a seam")

// RemoveSeam returns a new image one column narrower than img, where every row
// misses the pixel located at the seam column. The source image is left untouched.
// The seam is validated first, so a broken seam results in a *SeamError instead of a corrupted image.
func RemoveSeam(img *image.NRGBA, seam Seam, workers int) (*image.NRGBA, error) {
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	if width < 2 {
		return nil, ErrTooNarrow
	}
	if err := seam.Validate(width, height); err != nil {
		return nil, err
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width-1, height))
	parallelRows(height, workers, func(start, end int) {
		for y := start; y < end; y++ {
			src := img.Pix[y*img.Stride : y*img.Stride+width*4]
			row := dst.Pix[y*dst.Stride : y*dst.Stride+(width-1)*4]

			cut := seam[y] * 4
			copy(row, src[:cut])
			copy(row[cut:], src[cut+4:])
		}
	})
	return dst, nil
}
