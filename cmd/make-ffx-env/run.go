package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/vertti/make-ffx-env/pkg/envfile"
	"github.com/vertti/make-ffx-env/pkg/output"
	"github.com/vertti/make-ffx-env/pkg/result"
)

var (
	verify  bool
	verbose bool
)

// fileSystem is swapped in tests.
var fileSystem envfile.FileSystem = &envfile.RealFileSystem{}

// ErrInitFailed is returned when the environment could not be written or verified.
var ErrInitFailed = errors.New("environment initialization failed")

func init() {
	rootCmd.Flags().BoolVar(&verify, "verify", false, "read the file back and check it holds an empty JSON object")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "report successful writes")
}

// Runner is implemented by the initializer and the verifier.
type Runner interface {
	Run() result.Result
}

func runInit(cmd *cobra.Command, args []string) error {
	path := args[0]

	if verify && path == envfile.StdoutPath {
		return errors.New("--verify cannot be used when writing to stdout")
	}

	steps := []Runner{
		&envfile.Initializer{Path: path, FS: fileSystem, Stdout: cmd.OutOrStdout()},
	}
	if verify {
		steps = append(steps, &envfile.Verifier{Path: path, FS: fileSystem})
	}

	for _, s := range steps {
		if err := runStep(cmd.ErrOrStderr(), s); err != nil {
			return err
		}
	}
	return nil
}

// runStep executes a step and prints its result when it failed or when verbose.
func runStep(w io.Writer, s Runner) error {
	r := s.Run()
	if verbose || !r.OK() {
		output.PrintResult(w, r)
	}
	if !r.OK() {
		return errors.Join(ErrInitFailed, r.Err)
	}
	return nil
}
