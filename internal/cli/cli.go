package cli

import (
	"context"
	"os"
	"strings"

	"github.com/indaco/getver/internal/commands/extract"
	"github.com/indaco/getver/internal/config"
	"github.com/indaco/getver/internal/core"
	"github.com/indaco/getver/internal/printer"
	"github.com/indaco/getver/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// New builds the root getver command. load supplies defaults for --field
// and --format and runs after --path has been checked; fs is where
// manifests are read from.
func New(load config.Loader, fs core.FileSystem) *urfavecli.Command {
	flags := extract.Flags()
	flags = append(flags, &urfavecli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable colored output",
	})

	return &urfavecli.Command{
		Name:      "getver",
		Version:   version.GetVersion(),
		Usage:     "Print the version declared in a package manifest",
		UsageText: "getver --path Cargo.toml [--field package.version] [--format auto] [--semver]",
		Flags:     flags,
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(cmd.Bool("no-color") || os.Getenv("NO_COLOR") != "")
			return ctx, nil
		},
		Action:       extract.Action(fs, load),
		OnUsageError: onUsageError,
		// main owns reporting and the exit status.
		ExitErrHandler: func(context.Context, *urfavecli.Command, error) {},
	}
}

// onUsageError replaces urfave's "Incorrect Usage" banner and help dump,
// which would land on stdout. A --path without a value is the same
// failure as no --path at all.
func onUsageError(_ context.Context, _ *urfavecli.Command, err error, _ bool) error {
	if isMissingPathValue(err) {
		return extract.ErrPathRequired
	}
	return err
}

// isMissingPathValue reports whether err is "flag needs an argument" for
// --path or -p, in any of the "--path", "-path", "--path=" spellings.
func isMissingPathValue(err error) bool {
	msg := err.Error()
	if !strings.Contains(msg, "needs an argument") {
		return false
	}

	i := strings.LastIndex(msg, ":")
	if i < 0 {
		return false
	}
	name := strings.TrimSpace(msg[i+1:])
	name = strings.TrimSuffix(strings.TrimLeft(name, "-"), "=")
	return name == "path" || name == "p"
}
