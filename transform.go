package snap

// RotateLeft rotates the image 90 degrees counterclockwise.
// Width and height swap; a no-op on zero-sized images.
func (img *Image) RotateLeft() {
	if img.width == 0 || img.height == 0 {
		return
	}
	width, height := img.width, img.height

	newRed := NewMatrix[int](height, width)
	newGreen := NewMatrix[int](height, width)
	newBlue := NewMatrix[int](height, width)

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			newRow := width - 1 - col
			newCol := row
			newRed.SetAt(newRow, newCol, img.red.At(row, col))
			newGreen.SetAt(newRow, newCol, img.green.At(row, col))
			newBlue.SetAt(newRow, newCol, img.blue.At(row, col))
		}
	}
	img.commit(newRed, newGreen, newBlue)
}

// RotateRight rotates the image 90 degrees clockwise.
// Width and height swap; a no-op on zero-sized images.
func (img *Image) RotateRight() {
	if img.width == 0 || img.height == 0 {
		return
	}
	width, height := img.width, img.height

	newRed := NewMatrix[int](height, width)
	newGreen := NewMatrix[int](height, width)
	newBlue := NewMatrix[int](height, width)

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			newRow := col
			newCol := height - 1 - row
			newRed.SetAt(newRow, newCol, img.red.At(row, col))
			newGreen.SetAt(newRow, newCol, img.green.At(row, col))
			newBlue.SetAt(newRow, newCol, img.blue.At(row, col))
		}
	}
	img.commit(newRed, newGreen, newBlue)
}

// MirrorX mirrors the image about the horizontal axis.
func (img *Image) MirrorX() {
	img.red.MirrorX()
	img.green.MirrorX()
	img.blue.MirrorX()
}

// MirrorY mirrors the image about the vertical axis.
func (img *Image) MirrorY() {
	img.red.MirrorY()
	img.green.MirrorY()
	img.blue.MirrorY()
}

// Transpose transposes the pixel grid, swapping width and height.
func (img *Image) Transpose() {
	img.red.Transpose()
	img.green.Transpose()
	img.blue.Transpose()
	img.width, img.height = img.height, img.width
}

// Flip rotates the image 180 degrees.
func (img *Image) Flip() {
	img.MirrorX()
	img.MirrorY()
}
