package renderer

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/erraggy/docdiff/document"
)

// Theme colours for terminal output
var (
	insertedColor = lipgloss.Color("#9ece6a") // Soft sage green
	deletedColor  = lipgloss.Color("#f7768e") // Soft coral red
)

// Theme holds the colours used by Terminal.
type Theme struct {
	Inserted lipgloss.TerminalColor
	Deleted  lipgloss.TerminalColor
}

// DefaultTheme returns the default green/red theme.
func DefaultTheme() Theme {
	return Theme{Inserted: insertedColor, Deleted: deletedColor}
}

// TerminalOption configures Terminal.
type TerminalOption func(*terminalConfig)

type terminalConfig struct {
	output  io.Writer
	profile *termenv.Profile
	theme   Theme
}

// WithOutput sets the writer whose terminal capabilities decide the colour
// profile. Default: os.Stdout
func WithOutput(w io.Writer) TerminalOption {
	return func(cfg *terminalConfig) {
		cfg.output = w
	}
}

// WithColorProfile forces a colour profile instead of detecting one.
// termenv.Ascii disables colour.
func WithColorProfile(p termenv.Profile) TerminalOption {
	return func(cfg *terminalConfig) {
		cfg.profile = &p
	}
}

// WithTheme sets the colours for inserted and deleted text.
func WithTheme(t Theme) TerminalOption {
	return func(cfg *terminalConfig) {
		cfg.theme = t
	}
}

// Terminal renders a document for a terminal, one line per textblock.
//
// In ViewMerged, inserted text is green and underlined and deleted text is
// red and struck through. When the output has no colour support the merged
// view falls back to the [-...-] and {+...+} markers used by Text.
// ViewOld and ViewNew render one side without styling.
func Terminal(root *document.Node, view View, opts ...TerminalOption) string {
	if root == nil {
		return ""
	}
	if view != ViewMerged {
		return Text(root, view)
	}

	cfg := terminalConfig{output: os.Stdout, theme: DefaultTheme()}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := lipgloss.NewRenderer(cfg.output)
	if cfg.profile != nil {
		r.SetColorProfile(*cfg.profile)
	}
	if r.ColorProfile() == termenv.Ascii {
		return Text(root, ViewMerged)
	}

	inserted := r.NewStyle().Foreground(cfg.theme.Inserted).Underline(true)
	deleted := r.NewStyle().Foreground(cfg.theme.Deleted).Strikethrough(true)

	w := newSpanWriter(func(sb *strings.Builder, t document.DiffType, marked bool, text string) {
		switch {
		case !marked:
			sb.WriteString(text)
		case t == document.DiffDeleted:
			sb.WriteString(deleted.Render(text))
		default:
			sb.WriteString(inserted.Render(text))
		}
	})
	w.render(root)
	return w.String()
}
