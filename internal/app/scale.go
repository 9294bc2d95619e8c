package app

import "canvas-toys/internal/core"

// targetHeight is the canvas height FitScale aims for, in screen pixels.
const targetHeight = 500

// FitScale picks an integer pixel scale so the sim is roughly targetHeight
// pixels tall. A positive requested scale wins.
func FitScale(requested int, size core.Size) int {
	if requested > 0 {
		return requested
	}
	if size.H <= 0 {
		return 1
	}
	s := targetHeight / size.H
	if s < 1 {
		s = 1
	}
	return s
}
