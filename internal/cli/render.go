package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/qrgrid/pkg/errors"
	"github.com/matzehuels/qrgrid/pkg/pipeline"
	"github.com/matzehuels/qrgrid/pkg/render/sink"
)

// defaultBase names output files when -o does not.
const defaultBase = "qrcode"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string
	formats    string
	level      string
	engine     string
	scale      float64
	quietZone  int
	title      string
	crisp      bool
	invert     bool
	noCache    bool
	refresh    bool
	styleFlags styleFlags
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [text]",
		Short: "Encode text and render the QR code",
		Long: `Encode text as a QR code and render it as a grid of styled boxes.

The text comes from the argument, or from stdin when the argument is "-" or
missing. Without -o a single txt format prints to the terminal; everything
else is written to qrcode.<format> in the current directory.

Styles layer in this order, later winning: built-in defaults, the [style]
and [dot] sections of the config file, --preset, then individual flags.

Results are cached locally for faster subsequent runs.`,
		Example: `  qrgrid render https://example.com
  qrgrid render -f svg,png -o out/site "hello world" --dot-color "#1d4ed8" --dot-radius 1rem
  echo -n hello | qrgrid render -f txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			popts, err := c.pipelineOptions(cmd, content, &opts)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), popts, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json, txt (comma-separated)")
	cmd.Flags().StringVarP(&opts.level, "level", "l", "", "error correction level: L, M (default), Q, H")
	cmd.Flags().StringVar(&opts.engine, "engine", "", "encoder: rsc (default), skip2")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG scale factor (default 4)")
	cmd.Flags().IntVar(&opts.quietZone, "quiet-zone", 0, "terminal margin in modules (default 2)")
	cmd.Flags().StringVar(&opts.title, "title", "", "SVG title element")
	cmd.Flags().BoolVar(&opts.crisp, "crisp", false, "disable SVG anti-aliasing")
	cmd.Flags().BoolVar(&opts.invert, "invert", false, "swap light and dark in terminal output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts and re-render")
	opts.styleFlags.register(cmd)

	return cmd
}

// readContent takes the payload from args or, for "-" or no argument, from r.
// A single trailing newline from stdin is dropped.
func readContent(args []string, r io.Reader) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(io.LimitReader(r, errors.MaxContentBytes+2))
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// pipelineOptions merges config defaults with the flags the user set.
func (c *CLI) pipelineOptions(cmd *cobra.Command, content string, opts *renderOpts) (pipeline.Options, error) {
	cfg, err := c.config()
	if err != nil {
		return pipeline.Options{}, err
	}
	d := cfg.Defaults

	popts := pipeline.Options{
		Content:    content,
		Level:      d.Level,
		Engine:     d.Engine,
		Formats:    d.Formats,
		Scale:      d.Scale,
		RemSize:    d.RemSize,
		QuietZone:  d.QuietZone,
		Title:      opts.title,
		CrispEdges: opts.crisp,
		Refresh:    opts.refresh,
	}

	flags := cmd.Flags()
	if flags.Changed("level") {
		popts.Level = opts.level
	}
	if flags.Changed("engine") {
		popts.Engine = opts.engine
	}
	if flags.Changed("format") {
		popts.Formats = parseFormats(opts.formats)
	}
	if flags.Changed("scale") {
		popts.Scale = opts.scale
	}
	if flags.Changed("quiet-zone") {
		popts.QuietZone = opts.quietZone
	}

	if popts.Style, popts.DotStyle, err = opts.styleFlags.resolve(cfg); err != nil {
		return pipeline.Options{}, err
	}
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, err
	}
	return popts, nil
}

// runRender executes the pipeline and writes each artifact.
func (c *CLI) runRender(ctx context.Context, popts pipeline.Options, opts *renderOpts) error {
	toTerminal := opts.output == "" && len(popts.Formats) == 1 && popts.Formats[0] == pipeline.FormatText

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Rendering QR code...")
	if !toTerminal {
		spinner.Start()
	}

	result, err := runner.Execute(ctx, popts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %d format(s)", len(popts.Formats)))

	if toTerminal {
		return c.printCode(result, popts, opts.invert)
	}

	logger := loggerFromContext(ctx)
	paths := outputPaths(opts.output, popts.Formats)
	printSuccess("Rendered %s", StyleValue.Render(fmt.Sprintf("%q", truncate(popts.Content, 40))))
	printStats(result.Stats.Cols, popts.Level, result.CacheHits == len(popts.Formats))
	for _, format := range popts.Formats {
		path := paths[format]
		if err := writeArtifact(path, result.Artifacts[format]); err != nil {
			return err
		}
		logger.Debug("wrote artifact", "format", format, "path", path, "bytes", len(result.Artifacts[format]))
		printFile(path)
	}
	return nil
}

// printCode draws the code on c.Out, in colour when it is a terminal.
func (c *CLI) printCode(result *pipeline.Result, popts pipeline.Options, invert bool) error {
	textOpts := []sink.TextOption{
		sink.WithQuietZone(popts.QuietZone),
		sink.WithRenderer(lipgloss.NewRenderer(c.Out)),
	}
	if invert {
		textOpts = append(textOpts, sink.WithInvert())
	}
	_, err := fmt.Fprintln(c.Out, sink.RenderText(result.Tree, textOpts...))
	return err
}

// outputPaths maps each format to a file path. A single format writes to
// output as given; several formats share output as a base path with any
// format extension stripped.
func outputPaths(output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// basePath strips a known format extension from output, defaulting to
// defaultBase.
func basePath(output string) string {
	if output == "" {
		return defaultBase
	}
	ext := filepath.Ext(output)
	if pipeline.ValidateFormat(strings.TrimPrefix(ext, ".")) == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifact writes data to path, creating parent directories.
func writeArtifact(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
