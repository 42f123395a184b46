package dashboard

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/phonebook/internal/storage"
)

func foundState() findState {
	return newFindState().withPhone("555-1234").apply(ContactFoundMsg{Phone: "555-1234", Contact: ada()})
}

func TestFindState_EnterSearchesTrimmedPhone(t *testing.T) {
	fs := newFindState().withPhone(" 555-1234 ")
	_, cmd := fs.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should search")
	}
	got, ok := cmd().(SearchMsg)
	if !ok {
		t.Fatal("expected SearchMsg")
	}
	if got.Phone != "555-1234" {
		t.Errorf("Phone = %q, want trimmed", got.Phone)
	}
}

func TestFindState_ApplyMatchFocusesDetail(t *testing.T) {
	fs := foundState()
	if fs.contact == nil {
		t.Fatal("contact should be set")
	}
	if fs.input.Focused() {
		t.Error("input should blur after a match")
	}
	view := fs.View(80)
	for _, f := range ada().Fields() {
		if !containsPlainText(view, f.Label) {
			t.Errorf("detail missing label %q", f.Label)
		}
	}
}

func TestFindState_ApplyMiss(t *testing.T) {
	fs := foundState().apply(ContactFoundMsg{Phone: "000", Err: storage.ErrNotFound})
	if fs.contact != nil {
		t.Error("miss should clear the previous contact")
	}
	if !fs.input.Focused() {
		t.Error("input should keep focus after a miss")
	}
	if !containsPlainText(fs.View(80), NotFoundText) {
		t.Error("miss should render the not-found text")
	}
}

func TestFindState_FollowUpKeys(t *testing.T) {
	t.Run("e edits", func(t *testing.T) {
		_, cmd := foundState().Update(keyRunes("e"))
		if cmd == nil {
			t.Fatal("e should emit a command")
		}
		got, ok := cmd().(EditContactMsg)
		if !ok || got.Contact != ada() {
			t.Errorf("msg = %#v, want EditContactMsg for Ada", got)
		}
	})

	t.Run("slash refocuses input", func(t *testing.T) {
		fs, _ := foundState().Update(keyRunes("/"))
		if !fs.input.Focused() {
			t.Error("/ should focus the input")
		}
	})

	t.Run("d then n cancels", func(t *testing.T) {
		fs, _ := foundState().Update(keyRunes("d"))
		if fs.confirm == nil || fs.confirm.phone != "555-1234" {
			t.Fatalf("confirm = %+v", fs.confirm)
		}
		fs, cmd := fs.Update(keyRunes("n"))
		if fs.confirm != nil || cmd != nil {
			t.Error("n should cancel without a command")
		}
	})

	t.Run("d then y confirms", func(t *testing.T) {
		fs, _ := foundState().Update(keyRunes("d"))
		fs, cmd := fs.Update(keyRunes("y"))
		if fs.confirm != nil {
			t.Error("confirmation should close")
		}
		if cmd == nil {
			t.Fatal("y should emit a command")
		}
		if got, ok := cmd().(ConfirmDeleteMsg); !ok || got.Phone != "555-1234" {
			t.Errorf("msg = %#v, want ConfirmDeleteMsg for 555-1234", got)
		}
	})
}

func TestFindState_Cleared(t *testing.T) {
	fs := foundState().cleared()
	if fs.contact != nil || fs.looked || fs.input.Value() != "" {
		t.Errorf("cleared state = %+v", fs)
	}
	if !fs.input.Focused() {
		t.Error("input should be focused after clearing")
	}
}

func TestConfirmState_View(t *testing.T) {
	view := newConfirmState(ada()).View()
	for _, want := range []string{"Delete this contact?", "Ada Lovelace", "555-1234", "[y] Yes", "[n] No"} {
		if !containsPlainText(view, want) {
			t.Errorf("confirm view missing %q", want)
		}
	}
}
