// Package cmd provides the root command and CLI setup for carve.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/carve-tools/carve/internal/adapter"
	"github.com/carve-tools/carve/internal/config"
	"github.com/carve-tools/carve/internal/controller"
	"github.com/carve-tools/carve/internal/domain"
	m "github.com/carve-tools/carve/internal/model"
)

// version is overridden by the release build via ldflags.
var version = "dev"

var (
	bytesFlag    string
	charsFlag    string
	fieldsFlag   string
	delimFlag    string
	encodingFlag string
	summaryFlag  bool
	configFlag   string
	verboseFlag  bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "carve [flags] [file...]",
		Short: "Cut out selected characters, bytes, or fields",
		Long: `Carve cuts out selected portions of each line of its inputs, in the
order the inputs are named, and writes every result to standard output.

Selections are 1-based positions or closed ranges, kept in the order
written and never merged:

  carve -f 1,3 data.tsv         fields 1 and 3, tab-delimited
  carve -d , -f 2-4 data.csv    fields 2 through 4, comma-delimited
  carve -c 1,3-5 names.txt      characters 1 and 3 through 5
  carve -b 2-3 glyphs.txt       bytes 2 and 3, decoded lossily

Standard input is read when no files are given, or where a file is -.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfigFile(cmd); err != nil {
				return err
			}

			extract, err := resolveExtract(cmd)
			if err != nil {
				return err
			}

			delimiter, err := resolveDelimiter(delimFlag)
			if err != nil {
				return err
			}

			opener, err := newOpener(encodingFlag)
			if err != nil {
				return err
			}

			files := args
			if len(files) == 0 {
				files = []string{adapter.StdinName}
			}

			driver := domain.NewDriver(
				opener,
				adapter.NewCSVRecordIO(delimiter),
				cmd.OutOrStdout(),
				newLogger(cmd.ErrOrStderr(), verboseFlag),
			)

			reports, err := driver.Run(files, extract)
			if err != nil {
				return err
			}

			if summaryFlag {
				controller.RenderSummary(cmd.ErrOrStderr(), reports)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&bytesFlag, "bytes", "b", "", "selected byte positions, e.g. \"1,3-5\"")
	cmd.Flags().StringVarP(&charsFlag, "chars", "c", "", "selected character positions, e.g. \"1,3-5\"")
	cmd.Flags().StringVarP(&fieldsFlag, "fields", "f", "", "selected field positions, e.g. \"1,3-5\"")
	cmd.Flags().StringVarP(&delimFlag, "delim", "d", "\t", "field delimiter, exactly one byte")
	cmd.Flags().StringVar(&encodingFlag, "input-encoding", "", "IANA charset name the inputs are transcoded from")
	cmd.Flags().BoolVar(&summaryFlag, "summary", false, "print a per-file summary table on stderr")
	cmd.Flags().StringVar(&configFlag, "config", "", "YAML defaults file (also via "+config.EnvVar+")")
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug diagnostics")
	cmd.MarkFlagsMutuallyExclusive("bytes", "chars", "fields")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "carve: %v\n", err)
		os.Exit(1)
	}
}

// applyConfigFile overlays defaults-file values onto flags the user did
// not set explicitly. Set flags always win.
func applyConfigFile(cmd *cobra.Command) error {
	path := config.Resolve(configFlag)
	if path == "" {
		return nil
	}

	fileCfg, err := config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()

	if !flags.Changed("delim") && fileCfg.Delimiter != "" {
		delimFlag = fileCfg.Delimiter
	}

	if !flags.Changed("input-encoding") && fileCfg.InputEncoding != "" {
		encodingFlag = fileCfg.InputEncoding
	}

	if !flags.Changed("summary") && fileCfg.Summary {
		summaryFlag = true
	}

	if !flags.Changed("verbose") && fileCfg.Verbose {
		verboseFlag = true
	}

	return nil
}

// resolveExtract picks the active mode from whichever selection flag was
// set and parses its list. Setting none of them is a configuration error.
func resolveExtract(cmd *cobra.Command) (m.Extract, error) {
	flags := cmd.Flags()

	var mode m.Mode
	var list string

	switch {
	case flags.Changed("fields"):
		mode, list = m.ModeFields, fieldsFlag
	case flags.Changed("bytes"):
		mode, list = m.ModeBytes, bytesFlag
	case flags.Changed("chars"):
		mode, list = m.ModeChars, charsFlag
	default:
		return m.Extract{}, errors.New("must have --fields, --bytes, or --chars")
	}

	selection, err := domain.ParseSelection(list)
	if err != nil {
		return m.Extract{}, err
	}

	return m.Extract{Mode: mode, Selection: selection}, nil
}

func resolveDelimiter(delim string) (byte, error) {
	if len(delim) != 1 {
		return 0, fmt.Errorf("--delim \"%s\" must be a single byte", delim)
	}

	return delim[0], nil
}

func newOpener(charset string) (adapter.InputOpener, error) {
	if charset == "" {
		return adapter.NewLocalInputOpener(), nil
	}

	return adapter.NewTranscodingInputOpener(charset)
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
