package dashboard

import (
	"context"
	"fmt"
	"text/template"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/phonebook"
)

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// statusBarHeight is the number of lines reserved for the result line.
const statusBarHeight = 1

// borderChrome is the number of lines consumed by top + bottom borders.
const borderChrome = 2

// fallbackHome is used when the embedded Home template cannot be loaded.
var fallbackHome = template.Must(template.New(phonebook.HomeTemplate).Parse("Welcome to the Contacts App"))

// Option configures a Model.
type Option func(*Model)

// WithHomeTemplate overrides the Home screen template.
func WithHomeTemplate(t *template.Template) Option {
	return func(m *Model) {
		if t != nil {
			m.homeTmpl = t
		}
	}
}

// WithDBPath sets the database path shown on the Home screen.
func WithDBPath(path string) Option {
	return func(m *Model) { m.dbPath = path }
}

// WithContext sets the context passed to every store call.
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		if ctx != nil {
			m.ctx = ctx
		}
	}
}

// Model is the root Bubble Tea model for the contact form.
// It manages a two-pane layout with mode-based routing and focus management.
type Model struct {
	store  ContactStore
	ctx    context.Context
	mode   Mode
	focus  Focus
	width  int
	height int

	menu menuState
	home homeState
	list listState
	form formState
	find findState

	result   Result
	help     help.Model
	homeTmpl *template.Template
	dbPath   string
}

// NewModel creates a Model on the Home screen with menu focus.
func NewModel(store ContactStore, opts ...Option) Model {
	tmpl, err := LoadHomeTemplate(phonebook.Templates)
	if err != nil {
		tmpl = fallbackHome
	}
	m := Model{
		store:    store,
		ctx:      context.Background(),
		mode:     ModeHome,
		focus:    PaneMenu,
		list:     newListState(),
		form:     newFormState(),
		find:     newFindState(),
		help:     help.New(),
		homeTmpl: tmpl,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init loads the contact count for the Home screen.
func (m Model) Init() tea.Cmd {
	return loadCount(m.ctx, m.store)
}

// Mode returns the screen shown in the content pane.
func (m Model) Mode() Mode { return m.mode }

// Result returns the outcome of the last storage action.
func (m Model) Result() Result { return m.result }

// Update handles incoming messages with mode-based routing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		w := m.innerWidth()
		m.list = m.list.resize(w, m.contentHeight())
		m.form = m.form.resize(w)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case CountLoadedMsg:
		m.home = m.home.apply(msg)
		return m, nil

	case ContactsLoadedMsg:
		m.list = m.list.apply(msg)
		if msg.Err != nil && m.mode == ModeViewAll {
			m.result = resultFromErr(msg.Err, "")
		}
		return m, nil

	case ContactFoundMsg:
		if m.mode != ModeFindContact {
			return m, nil
		}
		m.find = m.find.apply(msg)
		m.result = resultFromErr(msg.Err, "Contact found.")
		return m, nil

	case ContactSavedMsg:
		if m.mode != ModeAddContact {
			return m, nil
		}
		return m.handleSaved(msg)

	case ContactDeletedMsg:
		if m.mode != ModeFindContact {
			return m, nil
		}
		m.result = resultFromErr(msg.Err, fmt.Sprintf("Contact with phone %s deleted.", msg.Phone))
		if msg.Err == nil {
			m.find = m.find.cleared()
		}
		return m, nil

	case SelectModeMsg:
		if msg.Lookup && msg.Mode == ModeFindContact {
			return m.openFind(msg.Phone)
		}
		return m.activate(msg.Mode)

	case SubmitFormMsg:
		c, err := m.form.contact()
		if err != nil {
			m.result = resultFromErr(err, "")
			return m, nil
		}
		return m, saveContact(m.ctx, m.store, c, m.form.originalPhone, m.form.editing())

	case SearchMsg:
		return m, findContact(m.ctx, m.store, msg.Phone)

	case ConfirmDeleteMsg:
		return m, deleteContact(m.ctx, m.store, msg.Phone)

	case EditContactMsg:
		m.mode = ModeAddContact
		m.menu = m.menu.point(ModeAddContact)
		m.focus = PaneContent
		m.result = Result{}
		m.form = fromContact(msg.Contact).resize(m.innerWidth())
		return m, nil

	case RefreshContactsMsg:
		m.list.loading = true
		return m, loadContacts(m.ctx, m.store)
	}

	return m, nil
}

// handleSaved reports a save. An edit jumps back to Find Contact showing the
// rewritten row; an add clears the form for the next entry.
func (m Model) handleSaved(msg ContactSavedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.result = resultFromErr(msg.Err, "")
		return m, nil
	}
	if msg.Edit {
		next, cmd := m.openFind(msg.Contact.Phone)
		nm := next.(Model)
		nm.result = Result{Kind: ResultSuccess, Text: "Contact updated successfully!"}
		return nm, cmd
	}
	m.result = Result{
		Kind: ResultSuccess,
		Text: fmt.Sprintf("Contact %s %s added/updated successfully!", msg.Contact.FirstName, msg.Contact.LastName),
	}
	m.form = newFormState().resize(m.innerWidth())
	return m, nil
}

// activate switches the content pane to mode and starts its load.
func (m Model) activate(mode Mode) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.menu = m.menu.point(mode)
	m.result = Result{}
	m.focus = PaneContent

	switch mode {
	case ModeHome:
		m.focus = PaneMenu
		m.home = homeState{}
		return m, loadCount(m.ctx, m.store)
	case ModeViewAll:
		m.list.loading = true
		return m, loadContacts(m.ctx, m.store)
	case ModeAddContact:
		m.form = newFormState().resize(m.innerWidth())
		return m, nil
	case ModeFindContact:
		m.find = newFindState()
		return m, nil
	}
	return m, nil
}

// openFind shows Find Contact prefilled with phone and looks it up exactly.
func (m Model) openFind(phone string) (tea.Model, tea.Cmd) {
	next, _ := m.activate(ModeFindContact)
	nm := next.(Model)
	nm.find = nm.find.withPhone(phone)
	return nm, findContact(nm.ctx, nm.store, phone)
}

// handleKey processes key messages with global and focus-specific routing.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.focus == PaneMenu {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}

	if msg.String() == "esc" && !(m.mode == ModeFindContact && m.find.confirm != nil) {
		m.focus = PaneMenu
		return m, nil
	}

	var cmd tea.Cmd
	switch m.mode {
	case ModeViewAll:
		m.list, cmd = m.list.Update(msg)
	case ModeAddContact:
		m.form, cmd = m.form.Update(msg)
	case ModeFindContact:
		m.find, cmd = m.find.Update(msg)
	}
	return m, cmd
}

// contentHeight returns the usable height for pane content,
// accounting for border chrome, the status line and the help bar.
func (m Model) contentHeight() int {
	h := m.height - borderChrome - helpBarHeight - statusBarHeight
	if h < 1 {
		return 1
	}
	return h
}

// innerWidth returns the usable width inside the content pane border.
func (m Model) innerWidth() int {
	_, contentWidth := PaneWidths(m.width)
	w := contentWidth - borderChrome
	if w < 0 {
		return 0
	}
	return w
}

// View renders the two-pane layout with status line and help bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	menuWidth, contentWidth := PaneWidths(m.width)
	contentHeight := m.contentHeight()

	var menuStyle, contentStyle lipgloss.Style
	if m.focus == PaneMenu {
		menuStyle = FocusedBorder()
		contentStyle = UnfocusedBorder()
	} else {
		menuStyle = UnfocusedBorder()
		contentStyle = FocusedBorder()
	}

	menuStyle = menuStyle.
		Width(menuWidth - borderChrome).
		Height(contentHeight).
		MaxHeight(contentHeight + borderChrome)
	contentStyle = contentStyle.
		Width(contentWidth - borderChrome).
		Height(contentHeight).
		MaxHeight(contentHeight + borderChrome)

	menuPane := menuStyle.Render(m.menu.View(m.mode))
	contentPane := contentStyle.Render(m.viewContent())
	panes := lipgloss.JoinHorizontal(lipgloss.Top, menuPane, contentPane)

	status := ""
	if m.result.Kind != ResultNone {
		status = ResultStyle(m.result.Kind).Render(m.result.Text)
	}
	helpView := m.help.View(HelpBindings(m.focus, m.mode, m.find))

	return lipgloss.JoinVertical(lipgloss.Left, panes, status, helpView)
}

// viewContent renders the content pane based on mode.
func (m Model) viewContent() string {
	switch m.mode {
	case ModeViewAll:
		return m.list.View()
	case ModeAddContact:
		return m.form.View()
	case ModeFindContact:
		return m.find.View(m.innerWidth())
	default:
		return m.home.View(m.homeTmpl, m.dbPath)
	}
}
