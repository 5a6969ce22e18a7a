// Package colour provides pixel filtering, colour frequency counting and
// ranking for colours extracted from images.
package colour

import (
	"fmt"
	"image/color"
)

// RGB represents a colour in 8-bit RGB format.
// It is comparable and used directly as a map key when counting.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Tuple returns the channels as "(r, g, b)".
func (rgb RGB) Tuple() string {
	return fmt.Sprintf("(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lowercase hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Spread returns the difference between the largest and smallest channel.
func (rgb RGB) Spread() int {
	hi := max(rgb.R, rgb.G, rgb.B)
	lo := min(rgb.R, rgb.G, rgb.B)
	return int(hi) - int(lo)
}

// RGBA implements color.Color.
func (rgb RGB) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 0xff}.RGBA()
}

// ToRGB converts a color.Color to RGB, discarding alpha.
// The channels are taken from the non-premultiplied value so that
// semi-transparent pixels keep their stored colour.
func ToRGB(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}
