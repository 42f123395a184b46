package dashboard

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/phonebook/internal/storage"
)

func summaries() []storage.Summary {
	return []storage.Summary{
		{FirstName: "Ada", LastName: "Lovelace", Phone: "555-1234"},
		{FirstName: "Alan", LastName: "Turing", Phone: "555-9876"},
	}
}

func TestListState_StartsLoading(t *testing.T) {
	ls := newListState()
	if !ls.loading {
		t.Error("new list should be loading")
	}
	if !containsPlainText(ls.View(), "Loading contacts...") {
		t.Errorf("loading view = %q", ls.View())
	}
}

func TestListState_ApplyRows(t *testing.T) {
	ls := newListState().resize(60, 20).apply(ContactsLoadedMsg{Contacts: summaries()})

	if ls.loading || ls.err != nil {
		t.Fatalf("loading=%v err=%v after apply", ls.loading, ls.err)
	}
	rows := ls.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[1][0] != "Alan" || rows[1][1] != "Turing" || rows[1][2] != "555-9876" {
		t.Errorf("row 1 = %v", rows[1])
	}
	view := ls.View()
	for _, want := range []string{ColFirstName, ColLastName, ColPhone, "Lovelace", "555-9876"} {
		if !containsPlainText(view, want) {
			t.Errorf("table view missing %q", want)
		}
	}
}

func TestListState_Empty(t *testing.T) {
	ls := newListState().apply(ContactsLoadedMsg{})
	if !containsPlainText(ls.View(), EmptyListText) {
		t.Errorf("empty view = %q", ls.View())
	}
	if _, ok := ls.selected(); ok {
		t.Error("empty list should have no selection")
	}
}

func TestListState_Error(t *testing.T) {
	ls := newListState().
		apply(ContactsLoadedMsg{Contacts: summaries()}).
		apply(ContactsLoadedMsg{Err: errors.New("boom")})

	if len(ls.contacts) != 0 {
		t.Error("error should clear stale contacts")
	}
	view := ls.View()
	if !containsPlainText(view, "Error: boom") || !containsPlainText(view, "Press r to retry") {
		t.Errorf("error view = %q", view)
	}
}

func TestListState_EnterOpensSelected(t *testing.T) {
	ls := newListState().resize(60, 20).apply(ContactsLoadedMsg{Contacts: summaries()})
	ls, _ = ls.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := ls.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should open the selected contact")
	}
	got, ok := cmd().(SelectModeMsg)
	if !ok {
		t.Fatal("expected SelectModeMsg")
	}
	want := SelectModeMsg{Mode: ModeFindContact, Phone: "555-9876", Lookup: true}
	if got != want {
		t.Errorf("msg = %+v, want %+v", got, want)
	}
}

func TestListState_RefreshKey(t *testing.T) {
	ls := newListState().apply(ContactsLoadedMsg{Contacts: summaries()})
	ls, cmd := ls.Update(keyRunes("r"))
	if !ls.loading {
		t.Error("r should put the list back into loading")
	}
	if cmd == nil {
		t.Fatal("r should return a command")
	}
	if _, ok := cmd().(RefreshContactsMsg); !ok {
		t.Error("expected RefreshContactsMsg")
	}
}

func TestListColumns_FillWidth(t *testing.T) {
	cols := listColumns(90)
	if len(cols) != 3 {
		t.Fatalf("columns = %d, want 3", len(cols))
	}
	total := 0
	for _, c := range cols {
		total += c.Width + 2
	}
	if total != 90 {
		t.Errorf("columns with padding span %d, want 90", total)
	}
}
