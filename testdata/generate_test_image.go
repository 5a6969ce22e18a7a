//go:build ignore

// Generates testdata/logo-med.png: a logo-like image with a white
// background, a black outline, a gray drop shadow and two brand colours.
// Run with: go run testdata/generate_test_image.go
package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

func main() {
	const size = 200
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.NRGBA{R: 5, G: 5, B: 5, A: 255}
	shadow := color.NRGBA{R: 128, G: 128, B: 132, A: 255}
	brand := color.NRGBA{R: 200, G: 50, B: 50, A: 255}
	accent := color.NRGBA{R: 10, G: 10, B: 200, A: 255}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := white
			if inside(x, y, 40, 170) {
				c = shadow
			}
			if inside(x, y, 30, 160) {
				c = black
			}
			if inside(x, y, 35, 155) {
				c = brand
			}
			if inside(x, y, 70, 120) {
				c = accent
			}
			img.SetNRGBA(x, y, c)
		}
	}

	file, err := os.Create("testdata/logo-med.png")
	if err != nil {
		panic(err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		panic(err)
	}

	println("Test image created: testdata/logo-med.png")
}

// inside reports whether (x, y) lies in the square [lo, hi) on both axes.
func inside(x, y, lo, hi int) bool {
	return x >= lo && x < hi && y >= lo && y < hi
}
