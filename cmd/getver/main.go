package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/indaco/getver/internal/cli"
	"github.com/indaco/getver/internal/config"
	"github.com/indaco/getver/internal/core"
	"github.com/indaco/getver/internal/printer"
	urfavecli "github.com/urfave/cli/v3"
)

// exitFatal is used for failures that are not usage or manifest-shape
// problems: unreadable files, syntax errors, bad configuration.
const exitFatal = 2

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(os.Stderr, err.Error())
		os.Exit(exitCode(err))
	}
}

// runCLI runs the root command with stdout and stderr bound to the
// process streams.
func runCLI(args []string) error {
	return runCLIWith(args, os.Stdout, os.Stderr)
}

func runCLIWith(args []string, stdout, stderr io.Writer) error {
	app := cli.New(config.LoadConfigFn, core.NewOSFileSystem())
	app.Writer = stdout
	app.ErrWriter = stderr

	return app.Run(context.Background(), args)
}

// exitCode maps an error returned by runCLI to a process exit status.
func exitCode(err error) int {
	var ec urfavecli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return exitFatal
}
