package cli

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/bls2brs/pkg/buildinfo"
	"github.com/matzehuels/bls2brs/pkg/errors"
	"github.com/matzehuels/bls2brs/pkg/pipeline"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	output     string // output file (single input); base path when several formats are requested
	formatsStr string // comma-separated output formats
	mapName    string // map name stamped into the save
	author     string // author name stamped into the save
	noPrefix   bool   // keep the source description unchanged
	noCache    bool   // disable the conversion cache
	refresh    bool   // ignore cached results
	pause      bool   // wait for Enter before exiting

	formats []string
}

// bind registers the convert flags on cmd.
func (o *convertOpts) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.output, "output", "o", "", "output file (single input only)")
	f.StringVarP(&o.formatsStr, "format", "f", "", "output format(s): brs (default), json (comma-separated)")
	f.StringVar(&o.mapName, "map", "", "map name stored in the save (default \"Unknown\")")
	f.StringVar(&o.author, "author", "", "author name stored in the save (default \"Unknown\")")
	f.BoolVar(&o.noPrefix, "no-prefix", false, "do not prepend a \"Converted from\" line to the description")
	f.BoolVar(&o.noCache, "no-cache", false, "disable the conversion cache")
	f.BoolVar(&o.refresh, "refresh", false, "ignore cached results")
	f.BoolVar(&o.pause, "pause", false, "wait for Enter before exiting")
}

// resolve fills options left unset on the command line from cfg.
func (o *convertOpts) resolve(flags *pflag.FlagSet, cfg Config) {
	o.formats = parseFormats(o.formatsStr)
	if !flags.Changed("format") && len(cfg.Formats) > 0 {
		o.formats = cfg.Formats
	}
	if len(o.formats) == 0 {
		o.formats = []string{pipeline.DefaultFormat}
	}
	if !flags.Changed("map") {
		o.mapName = cfg.Map
	}
	if !flags.Changed("author") {
		o.author = cfg.Author
	}
	if !flags.Changed("no-prefix") {
		o.noPrefix = !cfg.prefixEnabled()
	}
}

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	opts := convertOpts{}

	cmd := &cobra.Command{
		Use:   "convert <file.bls>...",
		Short: "Convert Blockland saves to Brickadia saves",
		Long: `Convert Blockland .bls saves to Brickadia .brs saves.

Files without a .bls extension are skipped. Conversion stops at the first
save that cannot be read.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd, args, &opts)
		},
	}
	opts.bind(cmd)

	return cmd
}

// runConvert converts every file in order and prints a summary for each.
// With --pause, a failure is printed before the prompt so it stays readable
// in a console window that closes on exit.
func (c *CLI) runConvert(cmd *cobra.Command, files []string, opts *convertOpts) (err error) {
	opts.resolve(cmd.Flags(), c.Config)
	if opts.pause {
		defer func() {
			if err != nil {
				printError(c.Out, "%s", errors.UserMessage(err))
				err = reportedError{err}
			}
			c.waitForEnter()
		}()
	}

	if opts.output != "" && len(files) > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "--output needs a single input file, got %d", len(files))
	}
	if err := pipeline.ValidateFormats(opts.formats); err != nil {
		return err
	}

	printTitle(c.Out, buildinfo.Banner())

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	for _, file := range files {
		if err := errors.ValidateInputPath(file); err != nil {
			if errors.Is(err, errors.ErrCodeInvalidFormat) {
				printWarning(c.Out, "%s: extension is not %s, skipping", file, errors.SourceExt)
				continue
			}
			return err
		}
		if err := c.convertFile(cmd.Context(), runner, file, opts); err != nil {
			return err
		}
	}
	return nil
}

// convertFile runs the pipeline for one file and writes its artifacts.
func (c *CLI) convertFile(ctx context.Context, runner *pipeline.Runner, file string, opts *convertOpts) error {
	prog := newProgress(c.Logger, file)

	res, err := runner.Execute(ctx, pipeline.Options{
		Input:      file,
		Formats:    opts.formats,
		MapName:    opts.mapName,
		AuthorName: opts.author,
		NoPrefix:   opts.noPrefix,
		Refresh:    opts.refresh,
	})
	if err != nil {
		return err
	}

	var written []string
	for _, format := range opts.formats {
		path := outputPath(file, opts.output, format, len(opts.formats) > 1)
		if err := os.WriteFile(path, res.Artifacts[format], 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
		}
		written = append(written, path)
	}
	prog.done(res.Summary, res.CacheInfo.ConvertHit)

	printSummary(c.Out, res.Summary, res.CacheInfo.ConvertHit)
	for _, path := range written {
		printFile(c.Out, path)
	}
	return nil
}

// outputPath derives where the artifact of one format is written.
// Without an explicit output the input's extension is replaced. With several
// formats the explicit output is treated as a base path.
func outputPath(input, output, format string, multiple bool) string {
	if output == "" {
		return errors.OutputPath(input, pipeline.Extension(format))
	}
	if !multiple {
		return output
	}
	return basePath(output) + pipeline.Extension(format)
}

// basePath strips a known output extension from path.
func basePath(path string) string {
	ext := filepath.Ext(path)
	if pipeline.ValidFormats[strings.TrimPrefix(strings.ToLower(ext), ".")] {
		return strings.TrimSuffix(path, ext)
	}
	return path
}

// waitForEnter blocks until a line is read from the CLI's input.
func (c *CLI) waitForEnter() {
	printInline(c.Out, "Press Enter to exit...")
	_, _ = bufio.NewReader(c.In).ReadString('\n')
}
