package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"refspec.dev/refspec/refspec"
)

// Palette for instruction kinds
var (
	fetchColor   = lipgloss.Color("#4ccbf1")
	pushColor    = lipgloss.Color("#4dca7d")
	excludeColor = lipgloss.Color("#f5c800")
	deleteColor  = lipgloss.Color("#f46251")
	dimColor     = lipgloss.Color("#808080")
)

// ColorEnabled reports whether w is a terminal that should receive colour.
// NO_COLOR disables colour everywhere.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Styles renders refspecs and instructions for one writer
type Styles struct {
	fetch   lipgloss.Style
	push    lipgloss.Style
	exclude lipgloss.Style
	delete  lipgloss.Style
	dim     lipgloss.Style
	name    lipgloss.Style
}

// NewStyles creates styles for w, dropping colour when w is not a terminal
func NewStyles(w io.Writer) *Styles {
	renderer := lipgloss.NewRenderer(w)
	if !ColorEnabled(w) {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return newStyles(renderer)
}

func newStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		fetch:   r.NewStyle().Foreground(fetchColor).Bold(true),
		push:    r.NewStyle().Foreground(pushColor).Bold(true),
		exclude: r.NewStyle().Foreground(excludeColor).Bold(true),
		delete:  r.NewStyle().Foreground(deleteColor).Bold(true),
		dim:     r.NewStyle().Foreground(dimColor),
		name:    r.NewStyle().Underline(true),
	}
}

// Instruction renders an instruction as "<kind> <details>"
func (s *Styles) Instruction(ins refspec.Instruction) string {
	switch i := ins.(type) {
	case refspec.FetchOnly:
		return s.fetch.Render("fetch") + " " + s.ref(i.Source)
	case refspec.FetchAndUpdate:
		return s.fetch.Render("fetch") + " " + s.ref(i.Source) + s.dim.Render(" -> ") + s.ref(i.Destination) + s.force(i.AllowNonFastForward)
	case refspec.FetchExclude:
		return s.exclude.Render("exclude") + " " + s.ref(i.Source)
	case refspec.FetchDefault:
		return s.fetch.Render("fetch") + " " + s.dim.Render(fmt.Sprintf("<default: %s>", i.Target))
	case refspec.PushMatching:
		return s.push.Render("push") + " " + s.dim.Render("<matching branches>") + s.force(i.AllowNonFastForward)
	case refspec.PushDelete:
		return s.delete.Render("delete") + " " + s.ref(i.Destination)
	case refspec.PushUpdate:
		return s.push.Render("push") + " " + s.ref(i.Source) + s.dim.Render(" -> ") + s.ref(i.Destination) + s.force(i.AllowNonFastForward)
	default:
		return ins.String()
	}
}

// Error renders a refspec that failed to parse or classify. Refspec errors
// already quote the refspec they are about.
func (s *Styles) Error(err error) string {
	return s.delete.Render("error") + s.dim.Render(": "+err.Error())
}

// Label renders a dimmed field label
func (s *Styles) Label(text string) string {
	return s.dim.Render(text)
}

func (s *Styles) ref(name []byte) string {
	return s.name.Render(string(name))
}

func (s *Styles) force(force bool) string {
	if !force {
		return ""
	}
	return s.dim.Render(" (force)")
}
