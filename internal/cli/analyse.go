package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huecount/internal/analyser"
	"github.com/jmylchreest/huecount/internal/colour"
	"github.com/jmylchreest/huecount/internal/config"
	"github.com/jmylchreest/huecount/internal/image"
)

// analyseOptions holds the analyse flags. Values are read back through
// viper so that config files and the environment can supply them too.
type analyseOptions struct {
	topK    int
	filter  colour.FilterVariant
	format  string
	output  string
	preview bool
	strict  bool
}

// flagKeys maps configuration keys to the flags that override them.
var flagKeys = map[string]string{
	config.KeyTopK:          "top",
	config.KeyFilterVariant: "filter",
	config.KeyFormat:        "format",
	config.KeyOutput:        "output",
	config.KeyPreview:       "preview",
	config.KeyStrict:        "strict",
}

func addAnalyseFlags(cmd *cobra.Command, o *analyseOptions) {
	o.filter = colour.FilterBasic

	flags := cmd.Flags()
	flags.IntVarP(&o.topK, "top", "k", 0, "number of colours to report (default: 5 for basic, 10 for refined)")
	flags.VarP(&o.filter, "filter", "F", "pixel filter (basic, refined)")
	flags.StringVarP(&o.format, "format", "f", config.FormatText, "output format (text, json, table)")
	flags.StringVarP(&o.output, "output", "o", "", "output file (default: stdout)")
	flags.BoolVar(&o.preview, "preview", false, "show colour swatches when writing to a terminal")
	flags.BoolVar(&o.strict, "strict", false, "exit with status 1 when the image cannot be processed")
}

func newAnalyseCmd(g *globalOptions) *cobra.Command {
	opts := &analyseOptions{}

	cmd := &cobra.Command{
		Use:     "analyse [image]",
		Aliases: []string{"analyze"},
		Short:   "Rank the most common significant colours in an image",
		Long: `Rank the most common colours in an image after discarding pixels that
carry no colour information.

Filters:
  basic    drops near-white and near-black pixels, reports 5 colours
  refined  also drops near-gray pixels, reports 10 colours

Colours are matched exactly; equal counts keep the order in which the
colours first appear in the image (top to bottom, left to right).

Examples:
  # Analyse the default logo
  huecount analyse

  # Ten most common non-gray colours
  huecount analyse --filter refined logo.png

  # Three colours as JSON
  huecount analyse -k 3 -f json logo.png

  # Fail the build if the logo cannot be read
  huecount analyse --strict public/logo-med.png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyse(cmd, g, args)
		},
	}

	addAnalyseFlags(cmd, opts)
	return cmd
}

// runAnalyse executes an analysis. Processing failures are reported on
// stdout as "Error: <message>" and only fail the command in strict mode.
func runAnalyse(cmd *cobra.Command, g *globalOptions, args []string) error {
	v := config.New()
	if err := config.BindFlags(v, cmd.Flags(), flagKeys); err != nil {
		return err
	}
	if len(args) == 1 {
		v.Set(config.KeyImagePath, args[0])
	}

	cfg, err := config.Load(v, g.configFile)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), g)
	logger.Debug("configuration resolved",
		"image_path", cfg.ImagePath,
		"filter_variant", cfg.FilterVariant,
		"top_k", cfg.EffectiveTopK(),
		"format", cfg.Format,
	)

	a := analyser.New(image.NewSmartLoader(), logger)
	result, err := a.Run(cmd.Context(), analyser.Request{
		ImagePath: cfg.ImagePath,
		Variant:   cfg.Variant(),
		TopK:      cfg.TopK,
	})
	if err != nil {
		if !analyser.IsProcessingError(err) {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Error: %s\n", err)
		if cfg.Strict {
			cmd.SilenceErrors = true
			return err
		}
		return nil
	}

	preview := cfg.Preview && cfg.Output == "" && colour.SupportsANSIColours(cmd.OutOrStdout())
	output, err := formatResult(result, cfg.Format, preview)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if cfg.Output != "" {
		logger.Debug("writing output", "file", cfg.Output)
		if err := os.WriteFile(cfg.Output, []byte(output), 0o644); err != nil { // #nosec G306 - Output is a user-readable report
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), output)
	return nil
}

// formatResult renders the result in the requested format.
func formatResult(result *colour.Result, format string, preview bool) (string, error) {
	switch format {
	case config.FormatText:
		return colour.TextFormatter{Preview: preview}.Format(result)
	case config.FormatJSON:
		return colour.JSONFormatter{}.Format(result)
	case config.FormatTable:
		return formatTable(result), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// formatTable renders the ranked colours as an aligned table.
func formatTable(result *colour.Result) string {
	if result.Empty() {
		return colour.NoColouredPixelsMessage + "\n"
	}

	table := NewTable([]string{"#", "RGB", "Hex", "Count", "Share"})
	table.AlignRight(0)
	table.AlignRight(3)
	table.AlignRight(4)
	for i, cc := range result.Colours {
		table.AddRow([]string{
			strconv.Itoa(i + 1),
			cc.Colour.Tuple(),
			cc.Colour.Hex(),
			strconv.Itoa(cc.Count),
			fmt.Sprintf("%.1f%%", 100*colour.Share(cc.Count, result.CountedPixels)),
		})
	}

	return result.Variant.Header() + "\n" + table.Render()
}
