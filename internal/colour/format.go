package colour

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NoColouredPixelsMessage is printed when the filter rejects every pixel.
const NoColouredPixelsMessage = "No colored pixels found"

// Formatter renders an analysis result.
type Formatter interface {
	Format(r *Result) (string, error)
}

// TextFormatter renders one line per colour:
//
//	RGB: (200, 50, 50), Hex: #c83232, Count: 2
type TextFormatter struct {
	// Preview prefixes each line with an ANSI colour swatch.
	Preview bool
}

// Format implements Formatter.
func (f TextFormatter) Format(r *Result) (string, error) {
	if r == nil {
		return "", fmt.Errorf("result cannot be nil")
	}
	if r.Empty() {
		return NoColouredPixelsMessage + "\n", nil
	}

	var sb strings.Builder
	sb.WriteString(r.Variant.Header())
	sb.WriteString("\n")
	for _, cc := range r.Colours {
		if f.Preview {
			sb.WriteString(ColourPreview(cc.Colour, 4))
			sb.WriteString(" ")
		}
		sb.WriteString(FormatColourCount(cc))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// FormatColourCount renders a single ranked colour line without a newline.
func FormatColourCount(cc ColourCount) string {
	return fmt.Sprintf("RGB: %s, Hex: %s, Count: %d", cc.Colour.Tuple(), cc.Colour.Hex(), cc.Count)
}

// ColourJSON represents a ranked colour in JSON output format.
type ColourJSON struct {
	Hex   string  `json:"hex"`
	RGB   RGB     `json:"rgb"`
	Count int     `json:"count"`
	Share float64 `json:"share"`
}

// ResultJSON represents an analysis result in JSON output format.
type ResultJSON struct {
	Filter        FilterVariant `json:"filter"`
	TopK          int           `json:"top_k"`
	TotalPixels   int           `json:"total_pixels"`
	CountedPixels int           `json:"counted_pixels"`
	Distinct      int           `json:"distinct_colours"`
	Colours       []ColourJSON  `json:"colours"`
}

// JSONFormatter renders the result as indented JSON. An empty result has an
// empty colours array.
type JSONFormatter struct{}

// Format implements Formatter.
func (JSONFormatter) Format(r *Result) (string, error) {
	if r == nil {
		return "", fmt.Errorf("result cannot be nil")
	}

	colours := make([]ColourJSON, len(r.Colours))
	for i, cc := range r.Colours {
		colours[i] = ColourJSON{
			Hex:   cc.Colour.Hex(),
			RGB:   cc.Colour,
			Count: cc.Count,
			Share: Share(cc.Count, r.CountedPixels),
		}
	}

	data, err := json.MarshalIndent(ResultJSON{
		Filter:        r.Variant,
		TopK:          r.TopK,
		TotalPixels:   r.TotalPixels,
		CountedPixels: r.CountedPixels,
		Distinct:      r.Distinct,
		Colours:       colours,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to convert to JSON: %w", err)
	}
	return string(data) + "\n", nil
}

// Share returns count as a fraction of total, or 0 when total is 0.
func Share(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total)
}
