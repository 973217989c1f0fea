// Package cli implements the h5scalar command: open a container, read one
// integer dataset and print it.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scigolib/h5scalar"
	"github.com/scigolib/h5scalar/internal/logging"
)

// Exit statuses returned by Execute.
const (
	ExitOK      = 0
	ExitUsage   = 1
	ExitStorage = 2
	ExitOutput  = 3
)

// usageError is a problem with the command line itself.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

var errMissingFileName = &usageError{msg: "Missing file name"}

// outputError is a failure to write the value to stdout.
type outputError struct {
	cause error
}

func (e *outputError) Error() string {
	return fmt.Sprintf("write output: %v", e.cause)
}

func (e *outputError) Unwrap() error {
	return e.cause
}

type options struct {
	datasetPath string
	verbose     bool
}

// NewCommand builds the root command. Output goes to stdout, diagnostics
// and logs to stderr.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "h5scalar <file.h5>",
		Short: "Print the integer stored in an HDF5 dataset",
		Long: "Open an HDF5 file read-only, resolve a dataset path (default " +
			h5scalar.DefaultDatasetPath + ") and print its single integer value.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errMissingFileName
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(cmd.ErrOrStderr(), opts.verbose)
			defer func() { _ = logger.Sync() }()

			value, err := readValue(logger, args[0], opts.datasetPath)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), value); err != nil {
				return &outputError{cause: err}
			}
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.datasetPath, "dataset", "d", h5scalar.DefaultDatasetPath, "dataset path inside the file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log each step to stderr")

	return cmd
}

func readValue(logger *zap.Logger, filename, datasetPath string) (int32, error) {
	c, err := h5scalar.Open(filename)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := c.Close(); err != nil {
			logger.Warn("close failed", zap.String("file", filename), zap.Error(err))
		}
	}()
	logger.Debug("container opened",
		zap.String("file", filename),
		zap.Uint8("superblock", c.SuperblockVersion()))

	ds, err := c.Resolve(datasetPath)
	if err != nil {
		return 0, err
	}
	if info, err := ds.Info(); err == nil {
		logger.Debug("dataset resolved", zap.String("path", ds.Path()), zap.String("info", info))
	}

	value, err := ds.ReadInt()
	if err != nil {
		return 0, err
	}
	logger.Debug("value read", zap.String("path", ds.Path()), zap.Int32("value", value))
	return value, nil
}

// Execute runs the command with args (excluding the program name) and
// returns the process exit status. It never calls os.Exit.
func Execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	cmd := NewCommand(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}

	_, _ = fmt.Fprintln(stderr, err)
	return exitCode(err)
}

// exitCode maps storage failures to ExitStorage and stdout write failures to
// ExitOutput. Everything else, including cobra's flag parsing errors, is a
// usage error.
func exitCode(err error) int {
	if _, ok := h5scalar.StageOf(err); ok {
		return ExitStorage
	}
	var oerr *outputError
	if errors.As(err, &oerr) {
		return ExitOutput
	}
	return ExitUsage
}
