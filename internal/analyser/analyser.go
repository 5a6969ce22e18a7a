// Package analyser runs a full colour frequency analysis: it loads an image,
// extracts its pixels and ranks the most common significant colours.
package analyser

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/huecount/internal/colour"
	"github.com/jmylchreest/huecount/internal/image"
)

// Stage identifies where a ProcessingError happened.
type Stage string

const (
	StageLoad    Stage = "load"
	StageAnalyse Stage = "analyse"
)

// ProcessingError reports that an image could not be loaded, decoded or
// analysed. Its message is the underlying failure description.
type ProcessingError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *ProcessingError) Error() string {
	return e.Err.Error()
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// IsProcessingError reports whether err is, or wraps, a ProcessingError.
func IsProcessingError(err error) bool {
	var pe *ProcessingError
	return errors.As(err, &pe)
}

// Request describes a single analysis.
type Request struct {
	ImagePath string
	Variant   colour.FilterVariant
	TopK      int
}

// Options converts the request to colour analysis options.
func (r Request) Options() colour.Options {
	return colour.Options{Variant: r.Variant, TopK: r.TopK}
}

// Analyser loads images and analyses their colours.
type Analyser struct {
	loader image.Loader
	logger hclog.Logger
}

// New creates an Analyser. A nil loader uses image.NewSmartLoader and a nil
// logger discards all output.
func New(loader image.Loader, logger hclog.Logger) *Analyser {
	if loader == nil {
		loader = image.NewSmartLoader()
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Analyser{
		loader: loader,
		logger: logger,
	}
}

// Run loads the requested image and returns its ranked colours.
// Invalid options are returned as plain errors; every failure after that is
// a *ProcessingError. An image with no significant pixels is not an error:
// the result reports Empty.
func (a *Analyser) Run(ctx context.Context, req Request) (*colour.Result, error) {
	opts := req.Options()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	log := a.logger.With("path", req.ImagePath)
	log.Debug("loading image")

	img, err := a.loader.Load(ctx, req.ImagePath)
	if err != nil {
		log.Debug("load failed", "error", err)
		return nil, &ProcessingError{Stage: StageLoad, Path: req.ImagePath, Err: err}
	}

	bounds := img.Bounds()
	log.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	pixels := colour.Pixels(img)
	result, err := colour.AnalyseContext(ctx, pixels, opts)
	if err != nil {
		log.Debug("analysis stopped", "error", err)
		return nil, &ProcessingError{Stage: StageAnalyse, Path: req.ImagePath, Err: err}
	}

	log.Debug("analysis complete",
		"filter", result.Variant,
		"top_k", result.TopK,
		"pixels", result.TotalPixels,
		"counted", result.CountedPixels,
		"distinct", result.Distinct,
	)
	if result.Empty() {
		log.Info("no colored pixels found")
	}

	return result, nil
}
