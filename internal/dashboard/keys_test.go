package dashboard

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
)

func TestMenuKeys_ContainsExpected(t *testing.T) {
	// Given: the menu key map
	allKeys := collectKeys(MenuKeyMap().ShortHelp())

	// Then: navigation, selection, jump and quit keys are present
	for _, want := range []string{"up", "down", "enter", "1", "4", "q"} {
		if !containsKey(allKeys, want) {
			t.Errorf("MenuKeyMap missing key %q, got %v", want, allKeys)
		}
	}
}

func TestContentKeys_HaveBack(t *testing.T) {
	// Given: every content key map
	maps := map[string]help.KeyMap{
		"list": ListKeyMap(),
		"form": FormKeyMap(),
		"find": FindKeyMap(),
		"home": HomeKeyMap(),
	}

	// Then: each one offers esc back to the menu
	for name, km := range maps {
		if !containsKey(collectKeys(km.ShortHelp()), "esc") {
			t.Errorf("%s key map missing esc", name)
		}
	}
}

func TestFormKeys_SaveHelp(t *testing.T) {
	h := FormKeyMap().Save.Help()
	if h.Key != "ctrl+s" || h.Desc != "save contact" {
		t.Errorf("Save help = %+v", h)
	}
}

func TestHelpBindings(t *testing.T) {
	found := foundState()
	confirming, _ := found.Update(keyRunes("d"))

	tests := []struct {
		name        string
		focus       Focus
		mode        Mode
		find        findState
		wantEnabled []string
		wantOff     []string
	}{
		{name: "menu focus", focus: PaneMenu, mode: ModeFindContact, find: found, wantEnabled: []string{"q", "enter"}},
		{name: "view all", focus: PaneContent, mode: ModeViewAll, wantEnabled: []string{"r", "enter", "esc"}},
		{name: "add contact", focus: PaneContent, mode: ModeAddContact, wantEnabled: []string{"ctrl+s", "tab"}},
		{name: "find before search", focus: PaneContent, mode: ModeFindContact, find: newFindState(), wantEnabled: []string{"enter"}, wantOff: []string{"d", "e"}},
		{name: "find after match", focus: PaneContent, mode: ModeFindContact, find: found, wantEnabled: []string{"d", "e", "/"}, wantOff: []string{"enter"}},
		{name: "find confirming", focus: PaneContent, mode: ModeFindContact, find: confirming, wantEnabled: []string{"y", "n"}},
		{name: "home", focus: PaneContent, mode: ModeHome, wantEnabled: []string{"esc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var enabled []string
			for _, b := range HelpBindings(tt.focus, tt.mode, tt.find).ShortHelp() {
				if b.Enabled() {
					enabled = append(enabled, b.Keys()...)
				}
			}
			for _, want := range tt.wantEnabled {
				if !containsKey(enabled, want) {
					t.Errorf("missing enabled key %q, got %v", want, enabled)
				}
			}
			for _, off := range tt.wantOff {
				if containsKey(enabled, off) {
					t.Errorf("key %q should be disabled", off)
				}
			}
		})
	}
}
