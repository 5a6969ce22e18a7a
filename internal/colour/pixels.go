package colour

import (
	"image"
	"image/color"
)

// Pixels returns every pixel of img as RGB in raster order: rows from top
// to bottom, each row from left to right.
func Pixels(img image.Image) []RGB {
	if img == nil {
		return nil
	}

	bounds := img.Bounds()
	pixels := make([]RGB, 0, bounds.Dx()*bounds.Dy())

	switch src := img.(type) {
	case *image.NRGBA:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			row := src.Pix[src.PixOffset(bounds.Min.X, y):src.PixOffset(bounds.Max.X, y)]
			for i := 0; i+3 < len(row); i += 4 {
				pixels = append(pixels, RGB{R: row[i], G: row[i+1], B: row[i+2]})
			}
		}
	case *image.RGBA:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			row := src.Pix[src.PixOffset(bounds.Min.X, y):src.PixOffset(bounds.Max.X, y)]
			for i := 0; i+3 < len(row); i += 4 {
				if row[i+3] == 0xff {
					pixels = append(pixels, RGB{R: row[i], G: row[i+1], B: row[i+2]})
					continue
				}
				pixels = append(pixels, ToRGB(color.RGBA{R: row[i], G: row[i+1], B: row[i+2], A: row[i+3]}))
			}
		}
	case *image.Paletted:
		lut := make([]RGB, len(src.Palette))
		for i, c := range src.Palette {
			lut[i] = ToRGB(c)
		}
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			row := src.Pix[src.PixOffset(bounds.Min.X, y):src.PixOffset(bounds.Max.X, y)]
			for _, idx := range row {
				if int(idx) < len(lut) {
					pixels = append(pixels, lut[idx])
				} else {
					// Out-of-range indices decode as opaque black.
					pixels = append(pixels, RGB{})
				}
			}
		}
	case *image.Gray:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			row := src.Pix[src.PixOffset(bounds.Min.X, y):src.PixOffset(bounds.Max.X, y)]
			for _, v := range row {
				pixels = append(pixels, RGB{R: v, G: v, B: v})
			}
		}
	default:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				pixels = append(pixels, ToRGB(img.At(x, y)))
			}
		}
	}

	return pixels
}
