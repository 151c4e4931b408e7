package icons

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func uniform(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestKeyDarkThresholdBoundary(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 100, G: 100, B: 99, A: 255})  // sum 299
	img.SetNRGBA(1, 0, color.NRGBA{R: 100, G: 100, B: 100, A: 255}) // sum 300

	converted := keyDark(img, 300)
	assert.Equal(t, 1, converted, "only the pixel strictly below the threshold converts")

	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(0, 0), "converted pixel should be transparent black")
	assert.Equal(t, color.NRGBA{R: 100, G: 100, B: 100, A: 255}, img.NRGBAAt(1, 0),
		"pixel at exactly the threshold stays opaque")
}

func TestKeyDarkZeroThreshold(t *testing.T) {
	img := uniform(4, 4, color.NRGBA{A: 255}) // pure black, sum 0

	converted := keyDark(img, 0)
	assert.Equal(t, 0, converted, "0 < 0 is false, so pure black survives a zero threshold")
	assert.Equal(t, color.NRGBA{A: 255}, img.NRGBAAt(0, 0))
}

func TestKeyDarkCount(t *testing.T) {
	img := uniform(4, 4, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 10, B: 10, A: 255})
	img.SetNRGBA(2, 3, color.NRGBA{R: 0, G: 30, B: 40, A: 255})

	converted := keyDark(img, 250)
	assert.Equal(t, 2, converted)
	assert.Equal(t, uint8(0), img.NRGBAAt(1, 1).A)
	assert.Equal(t, uint8(0), img.NRGBAAt(2, 3).A)
	assert.Equal(t, uint8(255), img.NRGBAAt(0, 0).A, "bright pixels untouched")
}

func TestKeyDarkMaxThreshold(t *testing.T) {
	img := uniform(2, 2, color.NRGBA{R: 255, G: 255, B: 255, A: 255}) // sum 765

	converted := keyDark(img, maxThreshold)
	assert.Equal(t, 0, converted, "pure white sits exactly at the inclusive upper bound")
}

// keyDark must honor the bounds of a cropped sub-image, not the backing
// buffer of its parent.
func TestKeyDarkOnCroppedImage(t *testing.T) {
	img := uniform(8, 4, color.NRGBA{R: 10, G: 10, B: 10, A: 255})
	cropped := cropSquare(img)

	converted := keyDark(cropped, 250)
	assert.Equal(t, 16, converted, "only the 4x4 crop window should be visited")

	bounds := cropped.Bounds()
	assert.Equal(t, uint8(0), cropped.NRGBAAt(bounds.Min.X, bounds.Min.Y).A)
	assert.Equal(t, uint8(255), img.NRGBAAt(0, 0).A, "pixels outside the crop stay untouched")
}
