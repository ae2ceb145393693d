package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// errInvalidOption makes the command exit with a failure status. The
// message itself has already been written by the time it is returned.
var errInvalidOption = errors.New("invalid option")

// appConfig is filled in by initConfig before the command runs.
var appConfig = Config{LogLevel: "error", LogFormat: "console"}

var rootCmd = newRootCmd(afero.NewOsFs())

// newRootCmd builds the wc command reading its inputs from fsys.
func newRootCmd(fsys afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wc [OPTION]... [FILE]...",
		Short: "Print newline, word, and character counts for each FILE.",
		Long: `wc prints newline, word, and character counts for each FILE, and a total
line if more than one FILE is specified. With no FILE, standard input is read.`,
		Args: cobra.ArbitraryArgs,
		// The flag grammar (combined short flags, first invalid token wins,
		// bare "-") is handled by ParseArgs, so cobra only passes args through.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			log := buildLogger(cmd.ErrOrStderr())
			defer log.Sync()
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), fsys, log, args)
		},
	}
	return cmd
}

func init() {
	cobra.OnInitialize(initConfig)
}

// initConfig reads the config file and GOWC_* environment variables.
func initConfig() {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", programName, err)
	}
	appConfig = cfg
}

// buildLogger returns the configured logger, or a no-op logger if the
// configuration is unusable.
func buildLogger(w io.Writer) *zap.Logger {
	log, err := newLogger(appConfig, w)
	if err != nil {
		fmt.Fprintf(w, "%s: %v\n", programName, err)
		return zap.NewNop()
	}
	return log
}

// run parses args and either prints help, prints the version, or counts the
// inputs. Only an invalid option produces an error.
func run(stdin io.Reader, out, errOut io.Writer, fsys afero.Fs, log *zap.Logger, args []string) error {
	opts := ParseArgs(args)
	log.Debug("parsed arguments",
		zap.Strings("paths", opts.Paths),
		zap.Bools("options", opts.Set[:]),
		zap.String("invalid", opts.Invalid))

	switch {
	case opts.HasInvalid:
		printInvalidOption(errOut, opts.Invalid)
		return fmt.Errorf("%w: %s", errInvalidOption, opts.Invalid)
	case opts.Has(OptHelp):
		printHelp(out)
		return nil
	case opts.Has(OptVersion):
		printVersion(out)
		return nil
	}

	summary := NewProcessor(fsys, stdin, out, errOut, log).Run(opts)
	log.Debug("run finished",
		zap.Int("processed", summary.Processed),
		zap.Int("failed", summary.Failed),
		zap.Any("total", summary.Total))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
