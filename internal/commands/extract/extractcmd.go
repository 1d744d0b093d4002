package extract

import (
	"context"
	"fmt"

	"github.com/indaco/getver/internal/config"
	"github.com/indaco/getver/internal/core"
	"github.com/indaco/getver/internal/manifest"
	"github.com/indaco/getver/internal/printer"
	"github.com/indaco/getver/internal/semver"
	"github.com/urfave/cli/v3"
)

// ExitValidation is the exit status for usage and manifest-shape failures.
const ExitValidation = 1

// ErrPathRequired is returned when no manifest path was given.
var ErrPathRequired = cli.Exit("path is required", ExitValidation)

// Flags returns the flags understood by the extract action.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "path",
			Aliases: []string{"p"},
			Usage:   "Path to the manifest file (e.g. Cargo.toml)",
			Sources: cli.EnvVars("GETVER_PATH"),
		},
		&cli.StringFlag{
			Name:    "field",
			Aliases: []string{"f"},
			Usage:   "Dot-notation path of the version field",
			Value:   manifest.DefaultField,
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "Manifest format: auto, toml, json or yaml",
			Value: manifest.FormatAuto.String(),
		},
		&cli.BoolFlag{
			Name:  "semver",
			Usage: "Fail unless the version is a valid semantic version",
		},
	}
}

// Action returns the action that prints the manifest version. load supplies
// defaults for flags left unset; nil means built-in defaults only.
func Action(fs core.FileSystem, load config.Loader) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		return runExtract(ctx, cmd, fs, load)
	}
}

// runExtract reads the manifest named by --path and writes its version to
// the command's stdout.
func runExtract(ctx context.Context, cmd *cli.Command, fs core.FileSystem, load config.Loader) error {
	path := cmd.String("path")
	if path == "" {
		return ErrPathRequired
	}

	field, rawFormat, err := resolveDefaults(cmd, load)
	if err != nil {
		return err
	}

	format := manifest.ParseFormat(rawFormat)
	if !format.IsValid() {
		return fmt.Errorf("unsupported format %q", rawFormat)
	}

	result, err := manifest.NewReader(fs).Read(ctx, manifest.Query{
		Path:   path,
		Format: format,
		Field:  field,
	})
	if err != nil {
		if manifest.IsSchemaError(err) {
			return cli.Exit(err.Error(), ExitValidation)
		}
		return err
	}

	if cmd.Bool("semver") {
		if err := semver.Validate(result.Version); err != nil {
			return cli.Exit(fmt.Sprintf("version %q is not a valid semantic version: %v", result.Version, err), ExitValidation)
		}
	}

	return printer.Println(cmd.Root().Writer, result.Version)
}

// resolveDefaults returns --field and --format, taking the config file value
// for whichever flag was not given on the command line.
func resolveDefaults(cmd *cli.Command, load config.Loader) (field, format string, err error) {
	field = cmd.String("field")
	format = cmd.String("format")
	if load == nil || (cmd.IsSet("field") && cmd.IsSet("format")) {
		return field, format, nil
	}

	cfg, err := load()
	if err != nil {
		return "", "", err
	}
	if cfg == nil {
		return field, format, nil
	}

	if !cmd.IsSet("field") && cfg.Field != "" {
		field = cfg.Field
	}
	if !cmd.IsSet("format") && cfg.Format != "" {
		format = cfg.Format
	}
	return field, format, nil
}
