package printer

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// colorError is used for diagnostics on stderr.
const colorError = lipgloss.Color("1") // Red

var noColor atomic.Bool

// SetNoColor disables (or re-enables) colored output for all writers.
func SetNoColor(v bool) {
	noColor.Store(v)
}

// NoColor reports whether colored output is disabled.
func NoColor() bool {
	return noColor.Load()
}

// rendererFor returns a lipgloss renderer for w. Color is only kept when w
// is a terminal and color has not been disabled.
func rendererFor(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if NoColor() || !isTerminal(w) {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Error returns text with error (red) styling.
func Error(w io.Writer, text string) string {
	return rendererFor(w).NewStyle().Foreground(colorError).Render(text)
}

// Println writes text unstyled. Used for machine-readable output.
func Println(w io.Writer, text string) error {
	_, err := fmt.Fprintln(w, text)
	return err
}

// PrintError writes text with error styling.
func PrintError(w io.Writer, text string) {
	fmt.Fprintln(w, Error(w, text))
}
