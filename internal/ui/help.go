package ui

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc"

	"github.com/unkn0wn-root/curseclient/internal/bindings"
)

var helpFooter = heredoc.Doc(`
	Editing
	  URL            Enter saves, Esc cancels
	  Headers, Body  Ctrl+S saves, Esc cancels, Enter adds a line
	Press ? or Esc to close.`)

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Keys"))
	b.WriteByte('\n')
	for _, action := range bindings.KnownActions() {
		fmt.Fprintf(&b, "  %-14s %s\n", keyDisplay(m.bindings.Keys(action)), bindings.Summary(action))
	}
	b.WriteByte('\n')
	b.WriteString(helpFooter)
	return m.theme.HelpOverlay.Render(b.String())
}
