package dashboard

import "github.com/charmbracelet/bubbles/help"

// HelpBindings returns the help.KeyMap for the focused pane and mode,
// providing context-aware help bar content.
func HelpBindings(focus Focus, mode Mode, find findState) help.KeyMap {
	if focus == PaneMenu {
		return MenuKeyMap()
	}
	switch mode {
	case ModeViewAll:
		return ListKeyMap()
	case ModeAddContact:
		return FormKeyMap()
	case ModeFindContact:
		if find.confirm != nil {
			return ConfirmKeyMap()
		}
		km := FindKeyMap()
		if find.contact == nil || find.input.Focused() {
			km.Edit.SetEnabled(false)
			km.Delete.SetEnabled(false)
			km.NewSearch.SetEnabled(false)
		} else {
			km.Search.SetEnabled(false)
		}
		return km
	default:
		return HomeKeyMap()
	}
}
