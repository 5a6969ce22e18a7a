package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger returns the diagnostic logger. Diagnostics go to w (stderr),
// never to the result stream.
func newLogger(w io.Writer, g *globalOptions) hclog.Logger {
	level := hclog.Warn
	switch {
	case g.verbose:
		level = hclog.Debug
	case g.quiet:
		level = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "huecount",
		Output: w,
		Level:  level,
	})
}
