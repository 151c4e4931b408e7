package icons

import "image"

// cropSquare crops img to a centered square with side min(width, height).
// Offsets are computed with integer floor division, so the crop box is
// the same on every run even for odd margins. Square images are returned
// unchanged.
func cropSquare(img *image.NRGBA) *image.NRGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == h {
		return img
	}

	side := min(w, h)
	left := bounds.Min.X + (w-side)/2
	top := bounds.Min.Y + (h-side)/2

	return img.SubImage(image.Rect(left, top, left+side, top+side)).(*image.NRGBA)
}
