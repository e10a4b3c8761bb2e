package bindings

import "fmt"

const (
	ActionQuit             ActionID = "quit"
	ActionFocusUp          ActionID = "focus_up"
	ActionFocusDown        ActionID = "focus_down"
	ActionFocusLeft        ActionID = "focus_left"
	ActionFocusRight       ActionID = "focus_right"
	ActionEdit             ActionID = "edit"
	ActionSend             ActionID = "send"
	ActionCycleResponseTab ActionID = "cycle_response_tab"
	ActionScrollUp         ActionID = "scroll_up"
	ActionScrollDown       ActionID = "scroll_down"
	ActionCopyResponse     ActionID = "copy_response"
	ActionToggleHelp       ActionID = "toggle_help"
)

type definition struct {
	id       ActionID
	summary  string
	defaults []string
}

var definitions = []definition{
	def(ActionQuit, "Quit", "q", "ctrl+c"),
	def(ActionFocusUp, "Previous field", "up"),
	def(ActionFocusDown, "Next field", "down"),
	def(ActionFocusLeft, "Previous method", "left"),
	def(ActionFocusRight, "Next method", "right"),
	def(ActionEdit, "Edit field", "enter"),
	def(ActionSend, "Send request", "f5", "ctrl+r"),
	def(ActionCycleResponseTab, "Switch response tab", "tab"),
	def(ActionScrollUp, "Scroll response up", "pgup"),
	def(ActionScrollDown, "Scroll response down", "pgdown"),
	def(ActionCopyResponse, "Copy response", "y"),
	def(ActionToggleHelp, "Toggle help", "?"),
}

var definitionLookup = func() map[ActionID]definition {
	lookup := make(map[ActionID]definition, len(definitions))
	for _, d := range definitions {
		lookup[d.id] = d
	}
	return lookup
}()

func def(id ActionID, summary string, specs ...string) definition {
	keys := make([]string, 0, len(specs))
	for _, spec := range specs {
		keys = append(keys, mustKey(spec))
	}
	return definition{id: id, summary: summary, defaults: keys}
}

func mustKey(spec string) string {
	key, err := normalizeKey(spec)
	if err != nil {
		panic(fmt.Sprintf("invalid default shortcut %q: %v", spec, err))
	}
	return key
}

// Summary is the short help text for an action.
func Summary(id ActionID) string {
	return definitionLookup[id].summary
}
