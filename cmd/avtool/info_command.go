package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"avtool/internal/logging"
	"avtool/internal/probe"
	"avtool/internal/render"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	var exeFlag string
	var levelFlag string
	var inputArgs []string
	var outputArgs []string
	var streamsFlag string
	var noColor bool
	var rawData bool
	var formatFlag string
	var jsonPretty, pythonOut, kvOut, summaryOut bool

	cmd := &cobra.Command{
		Use:   "info [flags] PATH...",
		Short: "Probe media files and render format and stream details",
		Long: `Probe one or more media files by running an external probe executable
(ffprobe by default, see -e) and render the container format plus the
audio/video/other stream buckets in the selected output format.

Stream selection (-s) takes selector letters: "a" audio, "v" video,
"o" other (subtitles and anything unrecognized). Use "x" to drop all
stream buckets and keep only the format block.

Unless --raw-data is given, numeric-looking string fields (duration,
start_time, bit_rate, sample_rate, size, nb_frames) are converted to
numbers, and a missing nb_frames is derived from the duration and the
average frame rate. Values that do not parse keep their original string.

Each path is probed independently; a failing path is reported on stderr
and does not stop the remaining paths.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			format, err := render.ParseFormat(firstNonEmpty(formatFlag, cfg.Output.Format))
			if err != nil {
				return err
			}
			switch {
			case jsonPretty:
				format = render.FormatJSONPretty
			case pythonOut:
				format = render.FormatPython
			case kvOut:
				format = render.FormatKV
			case summaryOut:
				format = render.FormatSummary
			}

			sel := render.ParseSelection(firstNonEmpty(streamsFlag, cfg.Output.Streams))

			opts := probe.Options{
				Executable: firstNonEmpty(exeFlag, cfg.Probe.Executable),
				LogLevel:   firstNonEmpty(levelFlag, cfg.Probe.LogLevel),
				InputArgs:  inputArgs,
				OutputArgs: outputArgs,
				NoColor:    resolveNoColor(cfg.Probe.Color, noColor),
			}

			failed := 0
			for _, path := range args {
				if err := probeOne(cmd.Context(), cmd.OutOrStdout(), logger, opts, path, rawData, sel, format); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "avtool: %s: %v\n", path, err)
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d paths failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&exeFlag, "exe", "e", "", "Probe executable (default: configured, ffprobe)")
	cmd.Flags().StringVarP(&levelFlag, "log-level", "l", "", "Probe log level: "+strings.Join(probe.LogLevels, ", "))
	cmd.Flags().StringArrayVarP(&inputArgs, "iargs", "I", nil, "Extra probe argument inserted before the path (repeatable)")
	cmd.Flags().StringArrayVarP(&outputArgs, "oargs", "O", nil, "Extra probe argument appended after the path (repeatable)")
	cmd.Flags().StringVarP(&streamsFlag, "streams", "s", "", "Stream selection letters (a=audio, v=video, o=other, x=none)")
	cmd.Flags().BoolVarP(&noColor, "no-color", "C", false, "Disable color output from the probe executable")
	cmd.Flags().BoolVar(&rawData, "raw-data", false, "Keep probe values exactly as reported, no numeric conversion")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format: "+strings.Join(render.FormatNames(), ", "))
	cmd.Flags().BoolVarP(&jsonPretty, "json", "J", false, "Alias for -f json-pretty")
	cmd.Flags().BoolVarP(&pythonOut, "py", "P", false, "Alias for -f python")
	cmd.Flags().BoolVarP(&kvOut, "kv", "K", false, "Alias for -f kv")
	cmd.Flags().BoolVarP(&summaryOut, "sum", "S", false, "Alias for -f summary")
	cmd.MarkFlagsMutuallyExclusive("format", "json", "py", "kv", "sum")

	return cmd
}

// probeOne runs the probe against a single path and renders the report.
func probeOne(ctx context.Context, out io.Writer, logger *slog.Logger, opts probe.Options, path string, rawData bool, sel render.Selection, format render.Format) error {
	logger.Debug("probing", logging.String("path", path), logging.String("exe", opts.Executable))

	result, err := probe.Run(ctx, opts, path)
	if err != nil {
		return err
	}

	if declared, ok := result.DeclaredStreamCount(); ok && declared != len(result.Streams) {
		logger.Warn("nb_streams disagrees with the stream list",
			logging.String("path", path),
			logging.Int("declared", declared),
			logging.Int("actual", len(result.Streams)))
	}

	report := result.Classify()
	if !rawData {
		report.FixNumbers()
	}
	report.AnnotatePath(path)

	return render.Render(out, report, sel, format)
}

// resolveNoColor combines the configured color mode with the -C flag.
func resolveNoColor(mode string, noColorFlag bool) bool {
	if noColorFlag {
		return true
	}
	switch mode {
	case "always":
		return false
	case "never":
		return true
	default: // auto
		return !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}
