package colour

import (
	"context"
	"errors"
	"fmt"
)

// MaxTopK is the largest number of colours a single analysis reports.
const MaxTopK = 256

// ErrInvalidTopK is returned when the requested number of colours is out of range.
var ErrInvalidTopK = errors.New("invalid top-k")

// Options controls a single analysis.
type Options struct {
	// Variant selects the filter and the default TopK.
	Variant FilterVariant

	// TopK is the number of colours to report. Zero uses the variant default.
	TopK int
}

// Validate checks the options.
func (o Options) Validate() error {
	if o.TopK < 0 {
		return fmt.Errorf("%w: must be between 1 and %d (0 selects the filter default), got %d",
			ErrInvalidTopK, MaxTopK, o.TopK)
	}
	if o.TopK > MaxTopK {
		return fmt.Errorf("%w: %d (maximum: %d)", ErrInvalidTopK, o.TopK, MaxTopK)
	}
	if _, err := ParseFilterVariant(string(o.Variant)); err != nil {
		return err
	}
	return nil
}

func (o Options) resolved() (FilterVariant, int) {
	variant, _ := ParseFilterVariant(string(o.Variant))
	k := o.TopK
	if k == 0 {
		k = variant.DefaultTopK()
	}
	return variant, k
}

// Result is the ranked outcome of an analysis.
type Result struct {
	Variant       FilterVariant `json:"filter"`
	TopK          int           `json:"top_k"`
	TotalPixels   int           `json:"total_pixels"`
	CountedPixels int           `json:"counted_pixels"`
	Distinct      int           `json:"distinct_colours"`
	Colours       []ColourCount `json:"colours"`
}

// Empty reports whether no pixel survived the filter.
func (r *Result) Empty() bool {
	return r.CountedPixels == 0
}

// Len returns the number of ranked colours.
func (r *Result) Len() int {
	return len(r.Colours)
}

// Analyse filters pixels, counts the survivors and ranks the most frequent
// colours. It has no side effects; the same input always gives the same result.
func Analyse(pixels []RGB, opts Options) (*Result, error) {
	return AnalyseContext(context.Background(), pixels, opts)
}

// AnalyseContext is Analyse with cancellation. Counting stops with ctx.Err()
// once ctx is done.
func AnalyseContext(ctx context.Context, pixels []RGB, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	variant, k := opts.resolved()
	table, err := CountContext(ctx, pixels, variant.Filter())
	if err != nil {
		return nil, err
	}

	return &Result{
		Variant:       variant,
		TopK:          k,
		TotalPixels:   len(pixels),
		CountedPixels: table.Total(),
		Distinct:      table.Len(),
		Colours:       table.TopK(k),
	}, nil
}
