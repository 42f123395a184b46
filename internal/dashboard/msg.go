// Package dashboard implements the interactive contact form: a menu pane for
// choosing a screen and a content pane for Home, View All, Add Contact and
// Find Contact. Storage is reached only through the injected ContactStore.
package dashboard

import (
	"context"
	"errors"

	"github.com/smileynet/phonebook/internal/storage"
)

// Mode represents the screen shown in the content pane.
type Mode int

const (
	ModeHome        Mode = iota // Static help text.
	ModeViewAll                 // Every contact as a table.
	ModeAddContact              // Contact form; Save upserts.
	ModeFindContact             // Lookup by phone with follow-up edit or delete.
)

// menuModes lists the menu entries in display order.
var menuModes = []Mode{ModeHome, ModeViewAll, ModeAddContact, ModeFindContact}

// String returns the menu label for the mode.
func (m Mode) String() string {
	switch m {
	case ModeHome:
		return "Home"
	case ModeViewAll:
		return "View All"
	case ModeAddContact:
		return "Add Contact"
	case ModeFindContact:
		return "Find Contact"
	default:
		return "Unknown"
	}
}

// Focus represents which pane has keyboard focus.
type Focus int

const (
	PaneMenu    Focus = iota // Menu pane has focus.
	PaneContent              // Content pane has focus.
)

// ResultKind classifies the outcome of a storage action.
type ResultKind int

const (
	ResultNone     ResultKind = iota // Nothing to report.
	ResultSuccess                    // Action completed.
	ResultNotFound                   // Lookup matched no contact.
	ResultError                      // Storage or input error; Text carries the message.
)

// Result is the user-visible outcome of the last action.
type Result struct {
	Kind ResultKind
	Text string
}

// NotFoundText is shown when a lookup matches no contact.
const NotFoundText = "No contact found."

// resultFromErr converts a storage outcome into a Result. A nil error yields
// a success carrying successText.
func resultFromErr(err error, successText string) Result {
	switch {
	case err == nil:
		return Result{Kind: ResultSuccess, Text: successText}
	case errors.Is(err, storage.ErrNotFound):
		return Result{Kind: ResultNotFound, Text: NotFoundText}
	default:
		return Result{Kind: ResultError, Text: "Error: " + err.Error()}
	}
}

// --- Consumer-side interfaces ---

// ContactStore is the storage surface the dashboard calls.
type ContactStore interface {
	Upsert(ctx context.Context, c storage.Contact) error
	Get(ctx context.Context, phone string) (storage.Contact, error)
	List(ctx context.Context) ([]storage.Summary, error)
	Delete(ctx context.Context, phone string) error
	Update(ctx context.Context, c storage.Contact, originalPhone string) error
	Count(ctx context.Context) (int, error)
}

// --- tea.Msg types ---

// CountLoadedMsg carries the result of a ContactStore.Count() call.
type CountLoadedMsg struct {
	Count int
	Err   error
}

// ContactsLoadedMsg carries the result of a ContactStore.List() call.
type ContactsLoadedMsg struct {
	Contacts []storage.Summary
	Err      error
}

// ContactFoundMsg carries the result of a ContactStore.Get() call.
type ContactFoundMsg struct {
	Phone   string
	Contact storage.Contact
	Err     error
}

// ContactSavedMsg carries the result of an upsert, or of an update keyed on
// OriginalPhone when Edit is set.
type ContactSavedMsg struct {
	Contact       storage.Contact
	OriginalPhone string
	Edit          bool
	Err           error
}

// ContactDeletedMsg carries the result of a ContactStore.Delete() call.
type ContactDeletedMsg struct {
	Phone string
	Err   error
}

// SelectModeMsg switches the content pane to Mode. With Lookup set,
// ModeFindContact searches Phone immediately, even when it is empty.
type SelectModeMsg struct {
	Mode   Mode
	Phone  string
	Lookup bool
}

// SubmitFormMsg signals the contact form asked to save.
// formState emits it; Model.Update validates the form and calls the store.
type SubmitFormMsg struct{}

// SearchMsg signals the find screen asked to look up Phone.
type SearchMsg struct {
	Phone string
}

// ConfirmDeleteMsg signals the user confirmed deleting Phone.
type ConfirmDeleteMsg struct {
	Phone string
}

// EditContactMsg asks to open the form pre-filled with Contact.
type EditContactMsg struct {
	Contact storage.Contact
}

// RefreshContactsMsg signals that the contact list should be reloaded.
type RefreshContactsMsg struct{}
