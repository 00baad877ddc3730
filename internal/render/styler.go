// Package render formats the menu and contact list for a terminal. Color is
// supplied by a Styler so the formatting can be tested without escape codes.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Kind names the category of a piece of text.
type Kind int

const (
	KindPlain Kind = iota
	KindRule
	KindAction
	KindExit
	KindHeading
	KindPhone
	KindLabel
	KindCompany
	KindEmail
	KindSelected
)

// Styler renders text for a kind.
type Styler interface {
	Style(kind Kind, text string) string
}

// Plain renders text unchanged.
type Plain struct{}

// Style returns text as is.
func (Plain) Style(_ Kind, text string) string { return text }

// Lipgloss renders kinds with bold ANSI colors.
type Lipgloss struct {
	styles map[Kind]lipgloss.Style
}

// ANSI color indexes per kind. Rules and email are blue, actions and company
// green, exit and phone red, labels cyan.
var kindColors = map[Kind]string{
	KindRule:    "4",
	KindAction:  "2",
	KindExit:    "1",
	KindPhone:   "1",
	KindLabel:   "6",
	KindCompany: "2",
	KindEmail:   "4",
}

// NewLipgloss builds a styler on renderer r. A nil renderer uses the
// lipgloss default renderer.
func NewLipgloss(r *lipgloss.Renderer) *Lipgloss {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := make(map[Kind]lipgloss.Style, len(kindColors)+2)
	for kind, color := range kindColors {
		styles[kind] = r.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
	}
	styles[KindHeading] = r.NewStyle().Bold(true)
	styles[KindSelected] = r.NewStyle().Reverse(true)
	return &Lipgloss{styles: styles}
}

// Style renders text with the style for kind. Unknown kinds are not styled.
func (l *Lipgloss) Style(kind Kind, text string) string {
	st, ok := l.styles[kind]
	if !ok {
		return text
	}
	return st.Render(text)
}

// ColorMode selects when output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a color mode name. The empty string means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	default:
		return "", fmt.Errorf("unknown color mode %q (want auto, always, or never)", s)
	}
}

// NewStyler picks a Styler for w. Auto mode colors only terminals and
// honors NO_COLOR through the detected color profile.
func NewStyler(w io.Writer, mode ColorMode) Styler {
	switch mode {
	case ColorNever:
		return Plain{}
	case ColorAlways:
		r := lipgloss.NewRenderer(w)
		r.SetColorProfile(termenv.ANSI)
		return NewLipgloss(r)
	default:
		if !isTTY(w) {
			return Plain{}
		}
		return NewLipgloss(lipgloss.NewRenderer(w))
	}
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
