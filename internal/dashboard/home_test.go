package dashboard

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
	"text/template"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/phonebook"
)

func TestLoadHomeTemplate(t *testing.T) {
	t.Run("embedded", func(t *testing.T) {
		if _, err := LoadHomeTemplate(phonebook.Templates); err != nil {
			t.Fatalf("LoadHomeTemplate(embedded) error: %v", err)
		}
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadHomeTemplate(fstest.MapFS{})
		if err == nil || !strings.Contains(err.Error(), "reading home.tmpl") {
			t.Errorf("err = %v, want reading error", err)
		}
	})
	t.Run("bad syntax", func(t *testing.T) {
		fsys := fstest.MapFS{phonebook.HomeTemplate: &fstest.MapFile{Data: []byte("{{if}")}}
		_, err := LoadHomeTemplate(fsys)
		if err == nil || !strings.Contains(err.Error(), "parsing home.tmpl") {
			t.Errorf("err = %v, want parsing error", err)
		}
	})
}

func TestHomeState_View(t *testing.T) {
	tmpl, err := LoadHomeTemplate(phonebook.Templates)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		hs   homeState
		want string
	}{
		{name: "loading", hs: homeState{}, want: "Counting contacts..."},
		{name: "empty", hs: homeState{}.apply(CountLoadedMsg{}), want: "No contacts saved yet."},
		{name: "one", hs: homeState{}.apply(CountLoadedMsg{Count: 1}), want: "1 contact saved."},
		{name: "many", hs: homeState{}.apply(CountLoadedMsg{Count: 7}), want: "7 contacts saved."},
		{name: "error", hs: homeState{}.apply(CountLoadedMsg{Err: errors.New("locked")}), want: "Contact count unavailable: locked"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hs.View(tmpl, ""); !strings.Contains(got, tt.want) {
				t.Errorf("View() = %q, want to contain %q", got, tt.want)
			}
		})
	}
}

func TestHomeState_ViewExecError(t *testing.T) {
	tmpl := template.Must(template.New("home").Parse("{{.Missing}}"))
	got := homeState{}.View(tmpl, "")
	if !containsPlainText(got, "Home template error") {
		t.Errorf("View() = %q, want template error", got)
	}
}

func TestMenuState_CursorBounds(t *testing.T) {
	ms := menuState{}
	ms, _ = ms.Update(tea.KeyMsg{Type: tea.KeyUp})
	if ms.cursor != 0 {
		t.Errorf("cursor = %d, want 0 at top", ms.cursor)
	}
	for i := 0; i < 10; i++ {
		ms, _ = ms.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if ms.selected() != ModeFindContact {
		t.Errorf("selected = %v, want last entry", ms.selected())
	}
}

func TestMenuState_View(t *testing.T) {
	view := menuState{}.point(ModeViewAll).View(ModeViewAll)
	if !containsPlainText(view, CursorMarker+"2. View All") {
		t.Errorf("menu view = %q", view)
	}
	for _, mode := range menuModes {
		if !containsPlainText(view, mode.String()) {
			t.Errorf("menu missing %q", mode)
		}
	}
}
