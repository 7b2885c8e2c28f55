package snap

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrShapeMismatch is returned when a matrix or an image is constructed
// from parts whose dimensions do not agree.
var ErrShapeMismatch = errors.New("snap: dimensions do not match the backing data")

// Matrix is a generic two dimensional grid stored in row-major order.
// The backing slice always holds exactly width*height elements; a cell is
// addressed by (row, col) with row in [0, height) and col in [0, width).
type Matrix[T constraints.Ordered] struct {
	width  int
	height int
	data   []T
}

// NewMatrix creates a width x height matrix with all cells set to the
// zero value of T.
func NewMatrix[T constraints.Ordered](width, height int) *Matrix[T] {
	return &Matrix[T]{
		width:  width,
		height: height,
		data:   make([]T, width*height),
	}
}

// NewFilledMatrix creates a width x height matrix with all cells set to value.
func NewFilledMatrix[T constraints.Ordered](width, height int, value T) *Matrix[T] {
	m := NewMatrix[T](width, height)
	m.Fill(value)
	return m
}

// MatrixFromSlice wraps a flat row-major slice into a matrix.
// The slice is retained, not copied. It returns ErrShapeMismatch
// if the slice length differs from width*height.
func MatrixFromSlice[T constraints.Ordered](width, height int, data []T) (*Matrix[T], error) {
	if len(data) != width*height {
		return nil, ErrShapeMismatch
	}
	return &Matrix[T]{width: width, height: height, data: data}, nil
}

// Width returns the number of columns.
func (m *Matrix[T]) Width() int { return m.width }

// Height returns the number of rows.
func (m *Matrix[T]) Height() int { return m.height }

// Get returns the value stored at (row, col).
// The second return value is false when the cell is out of range.
func (m *Matrix[T]) Get(row, col int) (T, bool) {
	if row < 0 || row >= m.height || col < 0 || col >= m.width {
		var zero T
		return zero, false
	}
	return m.data[row*m.width+col], true
}

// Set stores value at (row, col) and reports whether the cell was in range.
func (m *Matrix[T]) Set(row, col int, value T) bool {
	if row < 0 || row >= m.height || col < 0 || col >= m.width {
		return false
	}
	m.data[row*m.width+col] = value
	return true
}

// At returns the value stored at (row, col) without bounds checking.
// The caller guarantees the indices are valid.
func (m *Matrix[T]) At(row, col int) T {
	return m.data[row*m.width+col]
}

// SetAt stores value at (row, col) without bounds checking.
// The caller guarantees the indices are valid.
func (m *Matrix[T]) SetAt(row, col int, value T) {
	m.data[row*m.width+col] = value
}

// Fill overwrites every cell with value.
func (m *Matrix[T]) Fill(value T) {
	for i := range m.data {
		m.data[i] = value
	}
}

// FillBorder overwrites the first and last row and the first and last
// column with value.
func (m *Matrix[T]) FillBorder(value T) {
	if m.width == 0 || m.height == 0 {
		return
	}
	for col := 0; col < m.width; col++ {
		m.SetAt(0, col, value)
		m.SetAt(m.height-1, col, value)
	}
	for row := 0; row < m.height; row++ {
		m.SetAt(row, 0, value)
		m.SetAt(row, m.width-1, value)
	}
}

// Min returns the smallest element of the matrix.
func (m *Matrix[T]) Min() (T, bool) {
	if len(m.data) == 0 {
		var zero T
		return zero, false
	}
	min := m.data[0]
	for _, v := range m.data[1:] {
		if v < min {
			min = v
		}
	}
	return min, true
}

// Max returns the largest element of the matrix.
func (m *Matrix[T]) Max() (T, bool) {
	if len(m.data) == 0 {
		var zero T
		return zero, false
	}
	max := m.data[0]
	for _, v := range m.data[1:] {
		if v > max {
			max = v
		}
	}
	return max, true
}

// MinInRow returns the column index and value of the smallest element in row.
func (m *Matrix[T]) MinInRow(row int) (int, T, bool) {
	return m.MinInRowRange(row, 0, m.width)
}

// MinInRowRange returns the column index and value of the smallest element
// in row, scanning columns [start, end) left to right. Ties resolve to the
// smallest column index; the seam search depends on this determinism.
func (m *Matrix[T]) MinInRowRange(row, start, end int) (int, T, bool) {
	if row < 0 || row >= m.height || start < 0 || start >= end || end > m.width {
		var zero T
		return 0, zero, false
	}
	minCol := start
	minVal := m.At(row, start)
	for col := start + 1; col < end; col++ {
		if v := m.At(row, col); v < minVal {
			minVal = v
			minCol = col
		}
	}
	return minCol, minVal, true
}

// TrimWidth truncates every row to its first newWidth columns,
// preserving the row-major layout.
func (m *Matrix[T]) TrimWidth(newWidth int) {
	if newWidth > m.width {
		panic("snap: trim width exceeds matrix width")
	}
	data := make([]T, 0, m.height*newWidth)
	for row := 0; row < m.height; row++ {
		start := row * m.width
		data = append(data, m.data[start:start+newWidth]...)
	}
	m.data = data
	m.width = newWidth
}

// truncateRows drops all rows past newHeight.
func (m *Matrix[T]) truncateRows(newHeight int) {
	if newHeight > m.height {
		panic("snap: truncate height exceeds matrix height")
	}
	m.data = m.data[:newHeight*m.width]
	m.height = newHeight
}

// Transpose swaps rows and columns so that new(col, row) = old(row, col).
func (m *Matrix[T]) Transpose() {
	data := make([]T, len(m.data))
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			data[col*m.height+row] = m.At(row, col)
		}
	}
	m.width, m.height = m.height, m.width
	m.data = data
}

// MirrorX mirrors the matrix about the horizontal axis, swapping rows
// symmetrically about the center.
func (m *Matrix[T]) MirrorX() {
	for col := 0; col < m.width; col++ {
		for row := 0; row < m.height/2; row++ {
			top := row*m.width + col
			bottom := (m.height-1-row)*m.width + col
			m.data[top], m.data[bottom] = m.data[bottom], m.data[top]
		}
	}
}

// MirrorY mirrors the matrix about the vertical axis, swapping columns
// symmetrically about the center.
func (m *Matrix[T]) MirrorY() {
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width/2; col++ {
			left := row*m.width + col
			right := row*m.width + (m.width - 1 - col)
			m.data[left], m.data[right] = m.data[right], m.data[left]
		}
	}
}
