package runner

import (
	"strings"

	"github.com/retroenv/chip8go/chip8"
)

const (
	pixelSet   = '#'
	pixelClear = ' '
)

// Render returns the display buffer as text, one character per pixel
// and one line per display row.
func Render(display chip8.DisplayBuffer) string {
	var sb strings.Builder
	sb.Grow(chip8.DisplayHeight * (chip8.DisplayWidth + 1))

	for y := range chip8.DisplayHeight {
		for x := range chip8.DisplayWidth {
			if display[y][x] {
				sb.WriteByte(pixelSet)
			} else {
				sb.WriteByte(pixelClear)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
