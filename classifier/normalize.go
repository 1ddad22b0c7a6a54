package classifier

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
)

// Normalized input dimensions expected by the model.
const (
	NormalizedWidth  = 300
	NormalizedHeight = 300
)

// Decode reads and decodes an uploaded image. The format is detected
// from the stream, not the filename.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Normalize resizes an image to the fixed model input size. The result
// is always a 300x300 NRGBA image regardless of source format.
func Normalize(img image.Image) *image.NRGBA {
	return imaging.Resize(img, NormalizedWidth, NormalizedHeight, imaging.Lanczos)
}
