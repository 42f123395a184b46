package dashboard

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/phonebook/internal/storage"
)

// Each command performs one synchronous storage round trip and wraps the
// outcome in a message for Model.Update.

func loadCount(ctx context.Context, store ContactStore) tea.Cmd {
	return func() tea.Msg {
		n, err := store.Count(ctx)
		if err != nil {
			log.Printf("count contacts: %v", err)
		}
		return CountLoadedMsg{Count: n, Err: err}
	}
}

func loadContacts(ctx context.Context, store ContactStore) tea.Cmd {
	return func() tea.Msg {
		contacts, err := store.List(ctx)
		if err != nil {
			log.Printf("list contacts: %v", err)
		}
		return ContactsLoadedMsg{Contacts: contacts, Err: err}
	}
}

func findContact(ctx context.Context, store ContactStore, phone string) tea.Cmd {
	return func() tea.Msg {
		c, err := store.Get(ctx, phone)
		if err != nil {
			log.Printf("get contact %q: %v", phone, err)
		}
		return ContactFoundMsg{Phone: phone, Contact: c, Err: err}
	}
}

// saveContact upserts c, or updates the row keyed by originalPhone when edit
// is set.
func saveContact(ctx context.Context, store ContactStore, c storage.Contact, originalPhone string, edit bool) tea.Cmd {
	return func() tea.Msg {
		var err error
		if edit {
			err = store.Update(ctx, c, originalPhone)
		} else {
			err = store.Upsert(ctx, c)
		}
		if err != nil {
			log.Printf("save contact %q: %v", c.Phone, err)
		} else {
			log.Printf("saved contact %q", c.Phone)
		}
		return ContactSavedMsg{Contact: c, OriginalPhone: originalPhone, Edit: edit, Err: err}
	}
}

func deleteContact(ctx context.Context, store ContactStore, phone string) tea.Cmd {
	return func() tea.Msg {
		err := store.Delete(ctx, phone)
		if err != nil {
			log.Printf("delete contact %q: %v", phone, err)
		} else {
			log.Printf("deleted contact %q", phone)
		}
		return ContactDeletedMsg{Phone: phone, Err: err}
	}
}
