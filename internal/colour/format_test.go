package colour

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTextFormatter(t *testing.T) {
	result, err := Analyse([]RGB{white, black, red, red, blue}, Options{Variant: FilterBasic})
	if err != nil {
		t.Fatalf("Analyse() error = %v", err)
	}

	got, err := TextFormatter{}.Format(result)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "Most common colors:\n" +
		"RGB: (200, 50, 50), Hex: #c83232, Count: 2\n" +
		"RGB: (10, 10, 200), Hex: #0a0ac8, Count: 1\n"
	if got != want {
		t.Errorf("Format() =\n%s\nwant\n%s", got, want)
	}
}

func TestTextFormatterRefinedHeader(t *testing.T) {
	result, err := Analyse([]RGB{red}, Options{Variant: FilterRefined})
	if err != nil {
		t.Fatalf("Analyse() error = %v", err)
	}

	got, err := TextFormatter{}.Format(result)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasPrefix(got, "Most common non-gray colors:\n") {
		t.Errorf("unexpected header in %q", got)
	}
}

func TestTextFormatterEmpty(t *testing.T) {
	result, err := Analyse([]RGB{white}, Options{Variant: FilterBasic})
	if err != nil {
		t.Fatalf("Analyse() error = %v", err)
	}

	got, err := TextFormatter{Preview: true}.Format(result)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got != "No colored pixels found\n" {
		t.Errorf("Format() = %q", got)
	}
}

func TestTextFormatterPreview(t *testing.T) {
	result, err := Analyse([]RGB{red}, Options{Variant: FilterBasic})
	if err != nil {
		t.Fatalf("Analyse() error = %v", err)
	}

	got, err := TextFormatter{Preview: true}.Format(result)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(got, "\033[48;2;200;50;50m") {
		t.Errorf("missing swatch escape in %q", got)
	}
	if !strings.Contains(got, "RGB: (200, 50, 50), Hex: #c83232, Count: 1") {
		t.Errorf("missing colour line in %q", got)
	}
}

func TestFormattersRejectNil(t *testing.T) {
	if _, err := (TextFormatter{}).Format(nil); err == nil {
		t.Error("TextFormatter accepted nil result")
	}
	if _, err := (JSONFormatter{}).Format(nil); err == nil {
		t.Error("JSONFormatter accepted nil result")
	}
}

func TestJSONFormatter(t *testing.T) {
	result, err := Analyse([]RGB{white, red, red, blue}, Options{Variant: FilterBasic})
	if err != nil {
		t.Fatalf("Analyse() error = %v", err)
	}

	out, err := JSONFormatter{}.Format(result)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded ResultJSON
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if decoded.Filter != FilterBasic || decoded.TopK != 5 {
		t.Errorf("filter/top_k = %q/%d", decoded.Filter, decoded.TopK)
	}
	if decoded.TotalPixels != 4 || decoded.CountedPixels != 3 {
		t.Errorf("pixels = %d/%d, want 4/3", decoded.TotalPixels, decoded.CountedPixels)
	}
	if len(decoded.Colours) != 2 {
		t.Fatalf("colours = %d, want 2", len(decoded.Colours))
	}
	first := decoded.Colours[0]
	if first.Hex != "#c83232" || first.RGB != red || first.Count != 2 {
		t.Errorf("first colour = %+v", first)
	}
}

func TestShare(t *testing.T) {
	if got := Share(1, 4); got != 0.25 {
		t.Errorf("Share(1, 4) = %v", got)
	}
	if got := Share(1, 0); got != 0 {
		t.Errorf("Share(1, 0) = %v", got)
	}
}
