package colour

import (
	"cmp"
	"context"
	"slices"
)

// cancelCheckInterval is how many pixels CountContext processes between
// context checks.
const cancelCheckInterval = 1 << 16

// ColourCount pairs a colour with the number of pixels that have it.
type ColourCount struct {
	Colour RGB `json:"colour"`
	Count  int `json:"count"`
}

// FrequencyTable counts exact RGB occurrences, remembering the order in
// which each colour was first seen.
type FrequencyTable struct {
	entries []ColourCount
	index   map[RGB]int
	total   int
}

// NewFrequencyTable creates an empty FrequencyTable.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{
		index: make(map[RGB]int),
	}
}

// Count builds a FrequencyTable from the pixels accepted by filter.
// A nil filter accepts every pixel.
func Count(pixels []RGB, filter Filter) *FrequencyTable {
	table, _ := CountContext(context.Background(), pixels, filter)
	return table
}

// CountContext is Count with cancellation. It returns ctx.Err() if ctx is
// done before every pixel has been counted.
func CountContext(ctx context.Context, pixels []RGB, filter Filter) (*FrequencyTable, error) {
	table := NewFrequencyTable()
	for i, p := range pixels {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if filter != nil && !filter.Significant(p) {
			continue
		}
		table.Add(p)
	}
	return table, nil
}

// Add records one occurrence of p.
func (t *FrequencyTable) Add(p RGB) {
	t.total++
	if i, ok := t.index[p]; ok {
		t.entries[i].Count++
		return
	}
	t.index[p] = len(t.entries)
	t.entries = append(t.entries, ColourCount{Colour: p, Count: 1})
}

// Len returns the number of distinct colours.
func (t *FrequencyTable) Len() int {
	return len(t.entries)
}

// Total returns the number of pixels counted.
func (t *FrequencyTable) Total() int {
	return t.total
}

// Get returns the count for p, or 0 if it was never added.
func (t *FrequencyTable) Get(p RGB) int {
	if i, ok := t.index[p]; ok {
		return t.entries[i].Count
	}
	return 0
}

// Entries returns a copy of the table in first-occurrence order.
func (t *FrequencyTable) Entries() []ColourCount {
	return slices.Clone(t.entries)
}

// TopK returns at most k entries ordered by descending count. Colours with
// equal counts keep their first-occurrence order. k <= 0 returns every entry.
func (t *FrequencyTable) TopK(k int) []ColourCount {
	ranked := slices.Clone(t.entries)
	slices.SortStableFunc(ranked, func(a, b ColourCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if k > 0 && len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
