package icons

import "image"

// keyDark replaces every pixel whose R+G+B channel sum is strictly below
// threshold with fully transparent black. Alpha does not participate in
// the predicate, and each pixel is judged on its own, with no spatial
// logic. Returns the number of converted pixels.
func keyDark(img *image.NRGBA, threshold int) int {
	bounds := img.Bounds()

	var converted int
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := img.PixOffset(x, y)
			sum := int(img.Pix[i]) + int(img.Pix[i+1]) + int(img.Pix[i+2])
			if sum < threshold {
				img.Pix[i+0] = 0
				img.Pix[i+1] = 0
				img.Pix[i+2] = 0
				img.Pix[i+3] = 0
				converted++
			}
		}
	}

	return converted
}
