// Package sqlite provides the SQLite-backed contact store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/smileynet/phonebook/internal/storage"
	"github.com/smileynet/phonebook/internal/storage/sqlite/migrations"
)

// DefaultBusyTimeout is how long a writer waits on a locked database.
const DefaultBusyTimeout = 5 * time.Second

// Store persists contacts in a single SQLite table.
type Store struct {
	db *sql.DB
}

// Option configures Open.
type Option func(*options)

type options struct {
	busyTimeout time.Duration
}

// WithBusyTimeout sets how long writers wait for a lock held by another process.
func WithBusyTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.busyTimeout = d
		}
	}
}

// Open opens the database at path and applies the embedded migrations.
// The returned store holds one long-lived connection until Close.
func Open(path string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}
	o := options{busyTimeout: DefaultBusyTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		filepath.Clean(path), o.busyTimeout.Milliseconds())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := ApplyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

const contactColumns = `firstname, lastname, email, phonenumber, address, organization, notes,
	mygroup, age, birthday, worknumber, pronouns, nickname, website`

// Upsert inserts the contact, overwriting every field of an existing row with
// the same phone number. The row keeps its storage position.
func (s *Store) Upsert(ctx context.Context, c storage.Contact) error {
	if err := s.ready(ctx); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact (`+contactColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(phonenumber) DO UPDATE SET
		   firstname = excluded.firstname,
		   lastname = excluded.lastname,
		   email = excluded.email,
		   address = excluded.address,
		   organization = excluded.organization,
		   notes = excluded.notes,
		   mygroup = excluded.mygroup,
		   age = excluded.age,
		   birthday = excluded.birthday,
		   worknumber = excluded.worknumber,
		   pronouns = excluded.pronouns,
		   nickname = excluded.nickname,
		   website = excluded.website`,
		contactArgs(c)...,
	)
	if err != nil {
		return fmt.Errorf("upsert contact: %w", err)
	}
	return nil
}

// Get returns the contact stored under exactly phone.
func (s *Store) Get(ctx context.Context, phone string) (storage.Contact, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Contact{}, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(firstname, ''), COALESCE(lastname, ''), COALESCE(email, ''),
		        phonenumber, COALESCE(address, ''), COALESCE(organization, ''),
		        COALESCE(notes, ''), COALESCE(mygroup, ''), COALESCE(age, 0),
		        COALESCE(CAST(birthday AS TEXT), ''), COALESCE(worknumber, ''),
		        COALESCE(pronouns, ''), COALESCE(nickname, ''), COALESCE(website, '')
		   FROM contact
		  WHERE phonenumber = ?`,
		phone,
	)

	var c storage.Contact
	var birthday string
	err := row.Scan(
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
		&c.Address,
		&c.Organization,
		&c.Notes,
		&c.Group,
		&c.Age,
		&birthday,
		&c.WorkNumber,
		&c.Pronouns,
		&c.Nickname,
		&c.Website,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Contact{}, storage.ErrNotFound
		}
		return storage.Contact{}, fmt.Errorf("get contact: %w", err)
	}
	c.Birthday = parseStoredBirthday(birthday)
	return c, nil
}

// List returns the (first, last, phone) projection of every contact in
// storage order.
func (s *Store) List(ctx context.Context) ([]storage.Summary, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT COALESCE(firstname, ''), COALESCE(lastname, ''), phonenumber
		   FROM contact
		  ORDER BY rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []storage.Summary
	for rows.Next() {
		var c storage.Summary
		if err := rows.Scan(&c.FirstName, &c.LastName, &c.Phone); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

// Delete removes the contact stored under phone. Missing rows are not an error.
func (s *Store) Delete(ctx context.Context, phone string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM contact WHERE phonenumber = ?`, phone); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}

// Update rewrites every field of the contact stored under originalPhone,
// including the phone number itself.
func (s *Store) Update(ctx context.Context, c storage.Contact, originalPhone string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}

	args := append(contactArgs(c), originalPhone)
	res, err := s.db.ExecContext(ctx,
		`UPDATE contact
		    SET firstname = ?, lastname = ?, email = ?, phonenumber = ?, address = ?,
		        organization = ?, notes = ?, mygroup = ?, age = ?, birthday = ?,
		        worknumber = ?, pronouns = ?, nickname = ?, website = ?
		  WHERE phonenumber = ?`,
		args...,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: phone %s", storage.ErrAlreadyExists, c.Phone)
		}
		return fmt.Errorf("update contact: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Count returns the number of stored contacts.
func (s *Store) Count(ctx context.Context) (int, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return n, nil
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return errors.New("storage is not configured")
	}
	return nil
}

// contactArgs returns bind arguments in contactColumns order.
func contactArgs(c storage.Contact) []any {
	var birthday any
	if !c.Birthday.IsZero() {
		birthday = c.BirthdayString()
	}
	return []any{
		c.FirstName,
		c.LastName,
		c.Email,
		c.Phone,
		c.Address,
		c.Organization,
		c.Notes,
		c.Group,
		c.Age,
		birthday,
		c.WorkNumber,
		c.Pronouns,
		c.Nickname,
		c.Website,
	}
}

// parseStoredBirthday accepts the date prefix of whatever text the column
// holds. Unparseable values read as unset.
func parseStoredBirthday(v string) time.Time {
	v = strings.TrimSpace(v)
	if len(v) > len(storage.BirthdayLayout) {
		v = v[:len(storage.BirthdayLayout)]
	}
	t, err := time.Parse(storage.BirthdayLayout, v)
	if err != nil {
		return time.Time{}
	}
	return t
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

var _ storage.Store = (*Store)(nil)
