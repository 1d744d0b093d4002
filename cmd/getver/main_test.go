package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	urfavecli "github.com/urfave/cli/v3"
)

// chdirTemp moves the test into a fresh directory so no stray .getver.yaml
// is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(orig) })
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunCLI(t *testing.T) {
	dir := chdirTemp(t)
	writeFile(t, filepath.Join(dir, "Cargo.toml"), "[package]\nname = \"app\"\nversion = \"1.2.3\"\n")
	writeFile(t, filepath.Join(dir, "workspace.toml"), "[workspace]\nmembers = [\"app\"]\n")
	writeFile(t, filepath.Join(dir, "bare.toml"), "[package]\nname = \"app\"\n")
	writeFile(t, filepath.Join(dir, "empty.toml"), "[package]\nversion = \"\"\n")
	writeFile(t, filepath.Join(dir, "broken.toml"), "[package\n")

	tests := []struct {
		name     string
		args     []string
		stdout   string
		errMsg   string
		wantCode int
	}{
		{name: "prints version", args: []string{"--path", "Cargo.toml"}, stdout: "1.2.3\n"},
		{name: "missing path flag", errMsg: "path is required", wantCode: 1},
		{name: "path with equals and no value", args: []string{"--path="}, errMsg: "path is required", wantCode: 1},
		{name: "trailing path flag", args: []string{"--path"}, errMsg: "path is required", wantCode: 1},
		{name: "unknown flag", args: []string{"--bogus", "--path", "Cargo.toml"}, wantCode: exitFatal},
		{name: "missing package section", args: []string{"--path", "workspace.toml"}, errMsg: "package is not found in the file", wantCode: 1},
		{name: "missing version", args: []string{"--path", "bare.toml"}, errMsg: "version is not found in the file", wantCode: 1},
		{name: "empty version", args: []string{"--path", "empty.toml"}, errMsg: "version is not found in the file", wantCode: 1},
		{name: "nonexistent file", args: []string{"--path", "missing.toml"}, wantCode: exitFatal},
		{name: "malformed manifest", args: []string{"--path", "broken.toml"}, wantCode: exitFatal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := runCLIWith(append([]string{"getver"}, tt.args...), &stdout, &stderr)

			if stdout.String() != tt.stdout {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.stdout)
			}

			if tt.wantCode == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := exitCode(err); got != tt.wantCode {
				t.Errorf("exitCode() = %d, want %d", got, tt.wantCode)
			}
			if tt.errMsg != "" && err.Error() != tt.errMsg {
				t.Errorf("error = %q, want %q", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestRunCLI_ConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	writeFile(t, filepath.Join(dir, ".getver.yaml"), "field: version\n")
	writeFile(t, filepath.Join(dir, "package.json"), `{"name": "app", "version": "0.5.0"}`)

	var stdout, stderr bytes.Buffer
	if err := runCLIWith([]string{"getver", "--path", "package.json"}, &stdout, &stderr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout.String() != "0.5.0\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunCLI_BadConfigIsFatal(t *testing.T) {
	dir := chdirTemp(t)
	writeFile(t, filepath.Join(dir, ".getver.yaml"), "format: xml\n")

	var stdout, stderr bytes.Buffer
	err := runCLIWith([]string{"getver", "--path", "Cargo.toml"}, &stdout, &stderr)
	if err == nil {
		t.Fatal("expected config error, got nil")
	}
	if got := exitCode(err); got != exitFatal {
		t.Errorf("exitCode() = %d, want %d", got, exitFatal)
	}
}

func TestRunCLI_BadConfigDoesNotMaskMissingPath(t *testing.T) {
	dir := chdirTemp(t)
	writeFile(t, filepath.Join(dir, ".getver.yaml"), "format: [broken\n")

	var stdout, stderr bytes.Buffer
	err := runCLIWith([]string{"getver"}, &stdout, &stderr)
	if err == nil || err.Error() != "path is required" {
		t.Fatalf("error = %v, want path is required", err)
	}
	if got := exitCode(err); got != 1 {
		t.Errorf("exitCode() = %d, want 1", got)
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no stdout, got %q", stdout.String())
	}
}

func TestRunCLI_MissingConfigEnvDoesNotMaskMissingPath(t *testing.T) {
	chdirTemp(t)
	t.Setenv("GETVER_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	var stdout, stderr bytes.Buffer
	err := runCLIWith([]string{"getver"}, &stdout, &stderr)
	if got := exitCode(err); got != 1 {
		t.Errorf("exitCode() = %d (%v), want 1", got, err)
	}
}

func TestRunCLI_Idempotent(t *testing.T) {
	dir := chdirTemp(t)
	writeFile(t, filepath.Join(dir, "Cargo.toml"), "[package]\nversion = \"0.1.0-rc.1\"\n")

	var first, second bytes.Buffer
	if err := runCLIWith([]string{"getver", "-p", "Cargo.toml"}, &first, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	if err := runCLIWith([]string{"getver", "-p", "Cargo.toml"}, &second, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Errorf("outputs differ: %q vs %q", first.String(), second.String())
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"exit coder", urfavecli.Exit("path is required", 1), 1},
		{"wrapped exit coder", fmt.Errorf("outer: %w", urfavecli.Exit("x", 3)), 3},
		{"plain error", errors.New("open Cargo.toml: no such file or directory"), exitFatal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
