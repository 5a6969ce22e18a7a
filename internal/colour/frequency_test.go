package colour

import (
	"context"
	"errors"
	"slices"
	"testing"
)

var (
	red   = RGB{R: 200, G: 50, B: 50}
	blue  = RGB{R: 10, G: 10, B: 200}
	green = RGB{R: 30, G: 180, B: 40}
	white = RGB{R: 255, G: 255, B: 255}
	black = RGB{R: 0, G: 0, B: 0}
)

func TestCountExact(t *testing.T) {
	pixels := []RGB{red, blue, red, {R: 200, G: 50, B: 51}, red, blue}
	table := Count(pixels, nil)

	if table.Len() != 3 {
		t.Errorf("Len() = %d, want 3", table.Len())
	}
	if table.Total() != len(pixels) {
		t.Errorf("Total() = %d, want %d", table.Total(), len(pixels))
	}

	for _, p := range pixels {
		want := 0
		for _, q := range pixels {
			if p == q {
				want++
			}
		}
		if got := table.Get(p); got != want {
			t.Errorf("Get(%v) = %d, want %d", p, got, want)
		}
	}
	if got := table.Get(green); got != 0 {
		t.Errorf("Get(absent) = %d, want 0", got)
	}
}

func TestCountAppliesFilter(t *testing.T) {
	pixels := []RGB{white, black, red, red, blue}
	table := Count(pixels, NewBasicFilter())

	want := []ColourCount{{Colour: red, Count: 2}, {Colour: blue, Count: 1}}
	if got := table.Entries(); !slices.Equal(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}
	if table.Total() != 3 {
		t.Errorf("Total() = %d, want 3", table.Total())
	}
}

func TestEntriesFirstOccurrenceOrder(t *testing.T) {
	table := Count([]RGB{blue, red, blue, green, red}, nil)

	var got []RGB
	for _, e := range table.Entries() {
		got = append(got, e.Colour)
	}
	want := []RGB{blue, red, green}
	if !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestTopKStableTies(t *testing.T) {
	// green and red tie at 2 and blue is first seen but only once.
	table := Count([]RGB{blue, green, red, green, red}, nil)

	want := []ColourCount{
		{Colour: green, Count: 2},
		{Colour: red, Count: 2},
		{Colour: blue, Count: 1},
	}
	if got := table.TopK(3); !slices.Equal(got, want) {
		t.Errorf("TopK(3) = %v, want %v", got, want)
	}
	if got := table.TopK(1); !slices.Equal(got, want[:1]) {
		t.Errorf("TopK(1) = %v, want %v", got, want[:1])
	}
}

func TestTopKProperties(t *testing.T) {
	var pixels []RGB
	for i := range 40 {
		c := RGB{R: uint8(i % 13), G: 100, B: uint8(i % 7)}
		for range i % 5 {
			pixels = append(pixels, c)
		}
		pixels = append(pixels, c)
	}
	table := Count(pixels, nil)

	t.Run("size at most k returns everything", func(t *testing.T) {
		got := table.TopK(table.Len() + 3)
		if len(got) != table.Len() {
			t.Fatalf("len = %d, want %d", len(got), table.Len())
		}
		for _, e := range table.Entries() {
			if !slices.Contains(got, e) {
				t.Errorf("missing entry %v", e)
			}
		}
	})

	t.Run("size greater than k truncates by count", func(t *testing.T) {
		const k = 5
		got := table.TopK(k)
		if len(got) != k {
			t.Fatalf("len = %d, want %d", len(got), k)
		}
		minIncluded := got[len(got)-1].Count
		for i := 1; i < len(got); i++ {
			if got[i].Count > got[i-1].Count {
				t.Errorf("not descending at %d: %v", i, got)
			}
		}
		for _, e := range table.Entries() {
			if !slices.Contains(got, e) && e.Count > minIncluded {
				t.Errorf("excluded %v outranks included minimum %d", e, minIncluded)
			}
		}
	})

	t.Run("non-positive k returns everything", func(t *testing.T) {
		if got := table.TopK(0); len(got) != table.Len() {
			t.Errorf("TopK(0) len = %d, want %d", len(got), table.Len())
		}
	})
}

func TestEntriesReturnsCopy(t *testing.T) {
	table := Count([]RGB{red}, nil)
	entries := table.Entries()
	entries[0].Count = 99
	if table.Get(red) != 1 {
		t.Error("mutating Entries() changed the table")
	}
}

func TestCountContext(t *testing.T) {
	pixels := []RGB{white, red, red, blue}

	table, err := CountContext(context.Background(), pixels, NewBasicFilter())
	if err != nil {
		t.Fatalf("CountContext() error = %v", err)
	}
	if !slices.Equal(table.Entries(), Count(pixels, NewBasicFilter()).Entries()) {
		t.Error("CountContext and Count disagree")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := CountContext(ctx, pixels, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("CountContext() error = %v, want context.Canceled", err)
	}
}
