package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/phonebook"
	"github.com/smileynet/phonebook/internal/config"
	"github.com/smileynet/phonebook/internal/dashboard"
	"github.com/smileynet/phonebook/internal/render"
	"github.com/smileynet/phonebook/internal/storage"
	"github.com/smileynet/phonebook/internal/storage/sqlite"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Globals holds flags shared by every command.
type Globals struct {
	Config string `help:"Extra config file, applied after the user and project files." type:"path"`
	DB     string `help:"Database path (overrides config and PHONEBOOK_DB)." name:"db"`
	Plain  bool   `help:"Force plain text output even if stdout is a TTY."`
}

// CLI is the top-level command structure for phonebook.
type CLI struct {
	Globals

	Version kong.VersionFlag `help:"Show version." short:"V"`
	UI      UICmd            `cmd:"" default:"1" help:"Open the interactive contact form (default)."`
	Add     AddCmd           `cmd:"" help:"Add a contact, overwriting any contact with the same phone number."`
	Find    FindCmd          `cmd:"" help:"Show every field of the contact with a phone number."`
	List    ListCmd          `cmd:"" help:"List all contacts."`
	Delete  DeleteCmd        `cmd:"" help:"Delete the contact with a phone number."`
	Update  UpdateCmd        `cmd:"" help:"Change fields of a stored contact, including its phone number."`
}

// ContactFlags are the optional contact fields accepted by add and update.
type ContactFlags struct {
	First        string `help:"First name."`
	Last         string `help:"Last name."`
	Email        string `help:"Email address."`
	Address      string `help:"Home address."`
	Organization string `help:"Organization."`
	Notes        string `help:"Free-form notes."`
	Group        string `help:"Group label."`
	Age          string `help:"Age, a whole number from 0 to 120."`
	Birthday     string `help:"Birthday as YYYY-MM-DD."`
	WorkNumber   string `help:"Work phone number."`
	Pronouns     string `help:"Pronouns."`
	Nickname     string `help:"Nickname."`
	Website      string `help:"Website."`
}

// apply overlays every non-empty flag onto c.
func (f ContactFlags) apply(c storage.Contact) (storage.Contact, error) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.FirstName, f.First)
	set(&c.LastName, f.Last)
	set(&c.Email, f.Email)
	set(&c.Address, f.Address)
	set(&c.Organization, f.Organization)
	set(&c.Notes, f.Notes)
	set(&c.Group, f.Group)
	set(&c.WorkNumber, f.WorkNumber)
	set(&c.Pronouns, f.Pronouns)
	set(&c.Nickname, f.Nickname)
	set(&c.Website, f.Website)

	if f.Age != "" {
		age, err := storage.ParseAge(f.Age)
		if err != nil {
			return storage.Contact{}, err
		}
		c.Age = age
	}
	if f.Birthday != "" {
		b, err := storage.ParseBirthday(f.Birthday)
		if err != nil {
			return storage.Contact{}, err
		}
		c.Birthday = b
	}
	return c, nil
}

// loadConfig loads layered config from user, project and --config paths,
// then applies env and flag overrides.
func loadConfig(g *Globals) (*config.Config, error) {
	if g.Config != "" {
		if _, err := os.Stat(g.Config); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/phonebook/config.yaml"),
		".phonebook/config.yaml",
		g.Config,
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if g.DB != "" {
		cfg.Storage.Path = g.DB
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openStore loads config and opens the configured database.
func openStore(g *Globals) (*config.Config, *sqlite.Store, error) {
	cfg, err := loadConfig(g)
	if err != nil {
		return nil, nil, err
	}
	store, err := sqlite.Open(cfg.Storage.Path, sqlite.WithBusyTimeout(cfg.Storage.BusyTimeout))
	if err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}

// withStore runs fn against the configured store with an interrupt-aware
// context and a printer for stdout.
func withStore(g *Globals, fn func(ctx context.Context, store storage.Store, p render.Printer) error) error {
	_, store, err := openStore(g)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p := render.NewPrinter(render.Options{Writer: os.Stdout, ForcePlain: g.Plain})
	return fn(ctx, store, p)
}

// errNoTerminal is returned when ui starts without a terminal on stdout.
var errNoTerminal = errors.New("ui: requires a terminal (TTY); use list, find or add instead")

// UICmd opens the interactive contact form.
type UICmd struct{}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// Run builds real dependencies and launches the contact form.
func (u *UICmd) Run(g *Globals) error {
	if !render.IsTTY(os.Stdout) {
		return errNoTerminal
	}

	cfg, store, err := openStore(g)
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	defer func() { _ = store.Close() }()

	closeLog, err := setupLogging(cfg.UI.LogFile)
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	defer closeLog()

	tmpl, err := dashboard.LoadHomeTemplate(phonebook.OverlayFS(cfg.UI.TemplatesDir, phonebook.Templates))
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := dashboard.NewModel(store,
		dashboard.WithHomeTemplate(tmpl),
		dashboard.WithDBPath(cfg.Storage.Path),
		dashboard.WithContext(ctx),
	)

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	log.Printf("ui: opened %s", cfg.Storage.Path)
	return u.run(tea.NewProgram(m, opts...))
}

// run executes the tea program, enabling testable wiring.
func (u *UICmd) run(prog teaRunner) error {
	_, err := prog.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// setupLogging routes the standard logger to path while the form owns the
// terminal, or discards it when path is empty. The returned func restores it.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}
	f, err := tea.LogToFile(path, "phonebook")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return func() {
		_ = f.Close()
		log.SetOutput(os.Stderr)
	}, nil
}

// AddCmd upserts a contact.
type AddCmd struct {
	Phone string `arg:"" help:"Phone number (the contact's key)."`
	ContactFlags
}

// Run executes the add command.
func (a *AddCmd) Run(g *Globals) error {
	return withStore(g, a.run)
}

func (a *AddCmd) run(ctx context.Context, store storage.Store, p render.Printer) error {
	c, err := a.apply(storage.Contact{Phone: a.Phone})
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	if err := store.Upsert(ctx, c); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	return p.Success(fmt.Sprintf("Contact %s %s added/updated successfully!", c.FirstName, c.LastName))
}

// FindCmd prints one contact.
type FindCmd struct {
	Phone string `arg:"" help:"Phone number to look up."`
}

// Run executes the find command.
func (f *FindCmd) Run(g *Globals) error {
	return withStore(g, f.run)
}

func (f *FindCmd) run(ctx context.Context, store storage.Store, p render.Printer) error {
	c, err := store.Get(ctx, f.Phone)
	if err != nil {
		return fmt.Errorf("find %s: %w", f.Phone, err)
	}
	return p.Contact(c)
}

// ListCmd prints every contact.
type ListCmd struct{}

// Run executes the list command.
func (l *ListCmd) Run(g *Globals) error {
	return withStore(g, l.run)
}

func (l *ListCmd) run(ctx context.Context, store storage.Store, p render.Printer) error {
	contacts, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	return p.List(contacts)
}

// DeleteCmd removes one contact.
type DeleteCmd struct {
	Phone string `arg:"" help:"Phone number of the contact to delete."`
}

// Run executes the delete command.
func (d *DeleteCmd) Run(g *Globals) error {
	return withStore(g, d.run)
}

// run deletes the contact. A missing contact is reported but is not an error.
func (d *DeleteCmd) run(ctx context.Context, store storage.Store, p render.Printer) error {
	if _, err := store.Get(ctx, d.Phone); errors.Is(err, storage.ErrNotFound) {
		return p.Warn(dashboard.NotFoundText)
	} else if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if err := store.Delete(ctx, d.Phone); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return p.Success(fmt.Sprintf("Contact with phone %s deleted.", d.Phone))
}

// UpdateCmd rewrites a stored contact. Unset flags keep their stored values.
type UpdateCmd struct {
	Phone    string `arg:"" help:"Phone number the contact is stored under."`
	NewPhone string `help:"Move the contact to this phone number."`
	ContactFlags
}

// Run executes the update command.
func (u *UpdateCmd) Run(g *Globals) error {
	return withStore(g, u.run)
}

func (u *UpdateCmd) run(ctx context.Context, store storage.Store, p render.Printer) error {
	existing, err := store.Get(ctx, u.Phone)
	if err != nil {
		return fmt.Errorf("update %s: %w", u.Phone, err)
	}
	c, err := u.apply(existing)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}
	if u.NewPhone != "" {
		c.Phone = u.NewPhone
	}
	if err := store.Update(ctx, c, u.Phone); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	return p.Success("Contact updated successfully!")
}

// Exit codes.
const (
	exitSuccess  = 0
	exitNotFound = 1
	exitFailure  = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, storage.ErrNotFound) {
		return exitNotFound
	}
	return exitFailure
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("phonebook"),
		kong.Description("A single-table contact manager keyed by phone number."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run(&cli.Globals)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
