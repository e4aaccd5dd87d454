package core

import "gonum.org/v1/gonum/spatial/r2"

// Area represents a rectangular region in terminal cells
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions (minimum 1x1)
}

// Contains checks if cell is within area
func (a Area) Contains(x, y int) bool {
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}

// Viewport is the layout container in layout units
type Viewport struct {
	Width, Height float64
}

// Area returns container area, zero for degenerate sizes
func (v Viewport) Area() float64 {
	if v.Width <= 0 || v.Height <= 0 {
		return 0
	}
	return v.Width * v.Height
}

// Center returns the container midpoint
func (v Viewport) Center() r2.Vec {
	return r2.Vec{X: v.Width / 2, Y: v.Height / 2}
}

// MinSide returns the shorter container dimension
func (v Viewport) MinSide() float64 {
	if v.Width < v.Height {
		return v.Width
	}
	return v.Height
}

// Aspect returns width/height, 1 for degenerate heights
func (v Viewport) Aspect() float64 {
	if v.Height <= 0 {
		return 1
	}
	return v.Width / v.Height
}
