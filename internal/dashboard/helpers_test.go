package dashboard

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/phonebook/internal/storage"
)

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	var out []byte
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 'A' || s[j] > 'Z') && (s[j] < 'a' || s[j] > 'z') {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
		} else {
			out = append(out, s[i])
			i++
		}
	}
	return string(out)
}

// containsPlainText checks if s contains sub after stripping ANSI escapes.
func containsPlainText(s, sub string) bool {
	return strings.Contains(stripANSI(s), sub)
}

// execBatch executes a tea.Cmd, handling both single commands and batch
// commands. It returns all resulting messages.
func execBatch(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			if c != nil {
				msgs = append(msgs, c())
			}
		}
		return msgs
	}
	return []tea.Msg{msg}
}

// collectKeys extracts all key strings from a slice of key.Binding.
func collectKeys(bindings []key.Binding) []string {
	var keys []string
	for _, b := range bindings {
		keys = append(keys, b.Keys()...)
	}
	return keys
}

func containsKey(keys []string, want string) bool {
	for _, k := range keys {
		if k == want {
			return true
		}
	}
	return false
}

// fakeStore is an in-memory ContactStore that keeps insertion order.
type fakeStore struct {
	mu       sync.Mutex
	contacts []storage.Contact
	err      error // Returned by every call when set.
}

func newFakeStore(contacts ...storage.Contact) *fakeStore {
	return &fakeStore{contacts: append([]storage.Contact(nil), contacts...)}
}

func (f *fakeStore) index(phone string) int {
	for i, c := range f.contacts {
		if c.Phone == phone {
			return i
		}
	}
	return -1
}

func (f *fakeStore) Upsert(_ context.Context, c storage.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if i := f.index(c.Phone); i >= 0 {
		f.contacts[i] = c
		return nil
	}
	f.contacts = append(f.contacts, c)
	return nil
}

func (f *fakeStore) Get(_ context.Context, phone string) (storage.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return storage.Contact{}, f.err
	}
	if i := f.index(phone); i >= 0 {
		return f.contacts[i], nil
	}
	return storage.Contact{}, storage.ErrNotFound
}

func (f *fakeStore) List(_ context.Context) ([]storage.Summary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]storage.Summary, 0, len(f.contacts))
	for _, c := range f.contacts {
		out = append(out, storage.Summary{FirstName: c.FirstName, LastName: c.LastName, Phone: c.Phone})
	}
	return out, nil
}

func (f *fakeStore) Delete(_ context.Context, phone string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if i := f.index(phone); i >= 0 {
		f.contacts = append(f.contacts[:i], f.contacts[i+1:]...)
	}
	return nil
}

func (f *fakeStore) Update(_ context.Context, c storage.Contact, originalPhone string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	i := f.index(originalPhone)
	if i < 0 {
		return storage.ErrNotFound
	}
	if j := f.index(c.Phone); j >= 0 && j != i {
		return storage.ErrAlreadyExists
	}
	f.contacts[i] = c
	return nil
}

func (f *fakeStore) Count(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return len(f.contacts), nil
}

func (f *fakeStore) snapshot() []storage.Contact {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]storage.Contact(nil), f.contacts...)
}

var _ ContactStore = (*fakeStore)(nil)

func ada() storage.Contact {
	return storage.Contact{FirstName: "Ada", LastName: "Lovelace", Phone: "555-1234", Email: "ada@example.com", Age: 36}
}

func alan() storage.Contact {
	return storage.Contact{FirstName: "Alan", LastName: "Turing", Phone: "555-9876"}
}

func newSizedModel(store ContactStore, w, h int) Model {
	m := NewModel(store)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(Model)
}

// drive feeds msg through Update and keeps executing the returned commands,
// feeding their messages back, until none remain. Quit messages stop the loop.
func drive(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if _, ok := next.(tea.QuitMsg); ok {
			continue
		}
		updated, cmd := m.Update(next)
		m = updated.(Model)
		queue = append(queue, execBatch(t, cmd)...)
	}
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeText sends each rune of s as its own key press. The returned commands
// are cursor blinks and are dropped.
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return m
}
