package colour

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Default thresholds shared by the filter variants.
const (
	DefaultWhiteAbove = 240
	DefaultBlackBelow = 15
	DefaultMinSpread  = 20
)

// ErrUnknownFilter is returned when a filter variant name is not recognised.
var ErrUnknownFilter = errors.New("unknown filter variant")

// Filter decides whether a pixel takes part in the colour count.
type Filter interface {
	// Significant reports whether the pixel should be counted.
	Significant(p RGB) bool

	// Name returns the filter variant name.
	Name() string
}

// BasicFilter discards near-white and near-black pixels.
type BasicFilter struct {
	// WhiteAbove discards pixels whose channels are all strictly greater.
	WhiteAbove uint8
	// BlackBelow discards pixels whose channels are all strictly smaller.
	BlackBelow uint8
}

// NewBasicFilter returns a BasicFilter with the default thresholds.
func NewBasicFilter() BasicFilter {
	return BasicFilter{
		WhiteAbove: DefaultWhiteAbove,
		BlackBelow: DefaultBlackBelow,
	}
}

// Significant implements Filter.
func (f BasicFilter) Significant(p RGB) bool {
	if p.R > f.WhiteAbove && p.G > f.WhiteAbove && p.B > f.WhiteAbove {
		return false
	}
	if p.R < f.BlackBelow && p.G < f.BlackBelow && p.B < f.BlackBelow {
		return false
	}
	return true
}

// Name implements Filter.
func (f BasicFilter) Name() string {
	return string(FilterBasic)
}

// RefinedFilter additionally discards shades of gray: pixels whose channel
// spread is below MinSpread.
type RefinedFilter struct {
	BasicFilter
	MinSpread int
}

// NewRefinedFilter returns a RefinedFilter with the default thresholds.
func NewRefinedFilter() RefinedFilter {
	return RefinedFilter{
		BasicFilter: NewBasicFilter(),
		MinSpread:   DefaultMinSpread,
	}
}

// Significant implements Filter.
func (f RefinedFilter) Significant(p RGB) bool {
	if p.Spread() < f.MinSpread {
		return false
	}
	return f.BasicFilter.Significant(p)
}

// Name implements Filter.
func (f RefinedFilter) Name() string {
	return string(FilterRefined)
}

// FilterVariant selects one of the built-in filters.
type FilterVariant string

const (
	// FilterBasic rejects near-white and near-black pixels.
	FilterBasic FilterVariant = "basic"

	// FilterRefined also rejects near-gray pixels.
	FilterRefined FilterVariant = "refined"
)

var _ pflag.Value = (*FilterVariant)(nil)

// ValidFilterVariants returns the recognised variants in display order.
func ValidFilterVariants() []FilterVariant {
	return []FilterVariant{FilterBasic, FilterRefined}
}

// ParseFilterVariant parses a variant name, case-insensitively.
// An empty name selects FilterBasic.
func ParseFilterVariant(name string) (FilterVariant, error) {
	switch FilterVariant(strings.ToLower(strings.TrimSpace(name))) {
	case "", FilterBasic:
		return FilterBasic, nil
	case FilterRefined:
		return FilterRefined, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: %v)", ErrUnknownFilter, name, ValidFilterVariants())
	}
}

// Filter returns the predicate for the variant with default thresholds.
func (v FilterVariant) Filter() Filter {
	if v == FilterRefined {
		return NewRefinedFilter()
	}
	return NewBasicFilter()
}

// DefaultTopK returns how many colours the variant reports by default.
func (v FilterVariant) DefaultTopK() int {
	if v == FilterRefined {
		return 10
	}
	return 5
}

// Header returns the heading printed above the ranked colours.
func (v FilterVariant) Header() string {
	if v == FilterRefined {
		return "Most common non-gray colors:"
	}
	return "Most common colors:"
}

// Description returns a one-line summary of the rules the variant applies.
func (v FilterVariant) Description() string {
	if v == FilterRefined {
		return fmt.Sprintf("drops grays (spread < %d), near-white (all > %d) and near-black (all < %d)",
			DefaultMinSpread, DefaultWhiteAbove, DefaultBlackBelow)
	}
	return fmt.Sprintf("drops near-white (all > %d) and near-black (all < %d)",
		DefaultWhiteAbove, DefaultBlackBelow)
}

// String implements pflag.Value.
func (v *FilterVariant) String() string {
	if v == nil || *v == "" {
		return string(FilterBasic)
	}
	return string(*v)
}

// Set implements pflag.Value.
func (v *FilterVariant) Set(name string) error {
	parsed, err := ParseFilterVariant(name)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Type implements pflag.Value.
func (v *FilterVariant) Type() string {
	return "filter"
}
