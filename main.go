// fznGen is a code generation tool that reads FlatZinc predicate declarations
// and produces the Rust builtin constraint types of a FlatZinc front end: one
// struct per predicate, the Constraint enum tying them together, and the
// module files wiring both.
//
// Usage:
//
//	fznGen [flags] <input> [output]
//
// <input> is a file, a doublestar glob, or "-" for standard input. <output>
// must be an existing empty directory unless --debug is set, in which case
// the files are printed to standard output instead.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mlwelles/fznGen/config"
	"github.com/mlwelles/fznGen/generator"
	"github.com/mlwelles/fznGen/model"
	"github.com/mlwelles/fznGen/parser"
	"github.com/mlwelles/fznGen/sink"
)

const appName = "fznGen"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}
}

// runOptions holds the resolved command-line arguments.
type runOptions struct {
	Input  string
	Output string
	Debug  bool
}

func newRootCmd() *cobra.Command {
	var (
		flagDebug   bool
		flagConfig  string
		flagVerbose bool

		cfg    config.Config
		logger *zap.Logger
	)

	cmd := &cobra.Command{
		Use:   appName + " [flags] <input> [output]",
		Short: "Generate Rust builtin constraints from FlatZinc predicates",
		Long: appName + " reads FlatZinc predicate declarations, one per line, and generates\n" +
			"a Rust struct per predicate plus the Constraint enum and module files.\n\n" +
			"Lines starting with % are comments. The output directory must exist and be empty.",
		Args: cobra.RangeArgs(1, 2),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(flagConfig)
			if err != nil {
				return err
			}
			logger, err = newLogger(cfg, flagVerbose)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := runOptions{Input: args[0], Debug: flagDebug}
			if len(args) == 2 {
				opts.Output = args[1]
			}
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), logger, cfg, opts)
		},
	}

	cmd.Flags().BoolVarP(&flagDebug, "debug", "d", false, "print files on stdout instead of writing them")
	cmd.Flags().StringVarP(&flagConfig, "config", "c", "", "path to a YAML config file")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return cmd
}

// run checks the output directory, parses every input source, generates the
// constraint files and writes or prints them. Nothing is written unless all
// inputs parse.
func run(stdin io.Reader, stdout io.Writer, logger *zap.Logger, cfg config.Config, opts runOptions) error {
	if !opts.Debug {
		if opts.Output == "" {
			return errors.New("output directory required unless --debug is set")
		}
		if err := sink.CheckOutputDir(opts.Output); err != nil {
			return err
		}
	}

	sources, err := readSources(stdin, opts.Input)
	if err != nil {
		return err
	}

	var preds []model.Predicate
	for _, src := range sources {
		logger.Debug("Parsing predicates", zap.String("source", src.Name))
		ps, err := parser.ParseFile(src.Text)
		if err != nil {
			return fmt.Errorf("%s: %w", src.Name, err)
		}
		preds = append(preds, ps...)
	}
	logger.Info("Parsed predicates", zap.Int("sources", len(sources)), zap.Int("predicates", len(preds)))

	units, err := generator.Generate(preds, cfg.GeneratorOptions())
	if err != nil {
		return fmt.Errorf("generation error: %w", err)
	}

	if opts.Debug {
		return sink.Print(stdout, opts.Output, units)
	}

	for _, u := range units {
		logger.Debug("Writing unit", zap.String("path", u.Path), zap.Int("bytes", len(u.Content)))
	}
	if err := sink.Write(opts.Output, units); err != nil {
		return err
	}
	logger.Info("Generated constraints", zap.String("output", opts.Output), zap.Int("files", len(units)))
	return nil
}
