package theme

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name string

	AppFrame lipgloss.Style
	Title    lipgloss.Style
	HelpLine lipgloss.Style

	PanelBorder        lipgloss.Style
	PanelBorderFocused lipgloss.Style
	PanelLabel         lipgloss.Style
	PanelLabelFocused  lipgloss.Style
	PanelText          lipgloss.Style
	Muted              lipgloss.Style

	MethodChip         lipgloss.Style
	MethodChipSelected lipgloss.Style
	URLFocused         lipgloss.Style

	Loading       lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	ResponseMeta  lipgloss.Style
	DiffAdded     lipgloss.Style
	DiffRemoved   lipgloss.Style
	EditorHint    lipgloss.Style
	HelpOverlay   lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusWarn    lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
}

const (
	cyan   = lipgloss.Color("6")
	yellow = lipgloss.Color("3")
	green  = lipgloss.Color("2")
	red    = lipgloss.Color("1")
	black  = lipgloss.Color("0")
	white  = lipgloss.Color("7")
	grey   = lipgloss.Color("8")
)

// DefaultTheme uses the basic ANSI palette so it follows the user's terminal
// colours.
func DefaultTheme() Theme {
	border := lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(grey)
	inverse := lipgloss.NewStyle().Foreground(black).Background(white)

	return Theme{
		Name:               "default",
		AppFrame:           lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(grey),
		Title:              lipgloss.NewStyle().Foreground(cyan).Bold(true),
		HelpLine:           lipgloss.NewStyle().Foreground(yellow),
		PanelBorder:        border,
		PanelBorderFocused: border.BorderForeground(cyan),
		PanelLabel:         lipgloss.NewStyle().Foreground(cyan),
		PanelLabelFocused:  inverse,
		PanelText:          lipgloss.NewStyle(),
		Muted:              lipgloss.NewStyle().Foreground(grey),
		MethodChip:         lipgloss.NewStyle().Foreground(cyan),
		MethodChipSelected: inverse,
		URLFocused:         inverse,
		Loading:            lipgloss.NewStyle().Foreground(yellow),
		TabActive:          inverse.Bold(true).Padding(0, 1),
		TabInactive:        lipgloss.NewStyle().Foreground(grey).Padding(0, 1),
		ResponseMeta:       lipgloss.NewStyle().Foreground(cyan),
		DiffAdded:          lipgloss.NewStyle().Foreground(green),
		DiffRemoved:        lipgloss.NewStyle().Foreground(red),
		EditorHint:         lipgloss.NewStyle().Foreground(grey).Italic(true),
		HelpOverlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(cyan).
			Padding(0, 1),
		StatusInfo:    lipgloss.NewStyle().Foreground(yellow),
		StatusWarn:    lipgloss.NewStyle().Foreground(yellow).Bold(true),
		StatusError:   lipgloss.NewStyle().Foreground(red),
		StatusSuccess: lipgloss.NewStyle().Foreground(green),
	}
}

// MonoTheme carries no colour at all; emphasis is bold, underline and reverse.
func MonoTheme() Theme {
	plain := lipgloss.NewStyle()
	border := plain.BorderStyle(lipgloss.RoundedBorder())
	reverse := plain.Reverse(true)

	return Theme{
		Name:               "mono",
		AppFrame:           plain.BorderStyle(lipgloss.NormalBorder()),
		Title:              plain.Bold(true),
		HelpLine:           plain,
		PanelBorder:        border,
		PanelBorderFocused: plain.BorderStyle(lipgloss.ThickBorder()),
		PanelLabel:         plain,
		PanelLabelFocused:  reverse,
		PanelText:          plain,
		Muted:              plain.Faint(true),
		MethodChip:         plain,
		MethodChipSelected: reverse,
		URLFocused:         reverse,
		Loading:            plain.Bold(true),
		TabActive:          reverse.Padding(0, 1),
		TabInactive:        plain.Padding(0, 1),
		ResponseMeta:       plain.Bold(true),
		DiffAdded:          plain.Bold(true),
		DiffRemoved:        plain.Faint(true),
		EditorHint:         plain.Italic(true),
		HelpOverlay:        border.Padding(0, 1),
		StatusInfo:         plain,
		StatusWarn:         plain.Bold(true),
		StatusError:        plain.Bold(true).Underline(true),
		StatusSuccess:      plain,
	}
}

var catalog = map[string]func() Theme{
	"default": DefaultTheme,
	"mono":    MonoTheme,
}

// Lookup returns the named theme. Unknown names yield the default theme and
// false.
func Lookup(name string) (Theme, bool) {
	build, ok := catalog[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return DefaultTheme(), false
	}
	return build(), true
}

func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
