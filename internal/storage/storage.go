// Package storage defines the contact record and the persistence contract
// shared by the dashboard and the command line.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrNotFound indicates no contact is stored under the requested phone number.
	ErrNotFound = errors.New("storage: contact not found")
	// ErrAlreadyExists indicates another contact already owns the phone number.
	ErrAlreadyExists = errors.New("storage: contact already exists")
	// ErrInvalidContact indicates raw field text could not be coerced.
	ErrInvalidContact = errors.New("storage: invalid contact")
)

// Age bounds accepted by the entry surfaces.
const (
	MinAge = 0
	MaxAge = 120
)

// BirthdayLayout is the date format used for input and persistence.
const BirthdayLayout = "2006-01-02"

// Contact is one phone-book record. Phone is the primary key and is matched
// exactly as stored; every other field is optional.
type Contact struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Address      string
	Organization string
	Notes        string
	Group        string
	Age          int
	Birthday     time.Time // Zero means unset.
	WorkNumber   string
	Pronouns     string
	Nickname     string
	Website      string
}

// Summary is the list projection of a contact.
type Summary struct {
	FirstName string
	LastName  string
	Phone     string
}

// Store persists contacts keyed by phone number.
type Store interface {
	// Upsert inserts the contact or overwrites the row with the same phone.
	Upsert(ctx context.Context, c Contact) error
	// Get returns the contact stored under phone, or ErrNotFound.
	Get(ctx context.Context, phone string) (Contact, error)
	// List returns every contact in storage order.
	List(ctx context.Context) ([]Summary, error)
	// Delete removes the contact if present.
	Delete(ctx context.Context, phone string) error
	// Update rewrites the contact stored under originalPhone, which may
	// differ from c.Phone when the number itself changes.
	Update(ctx context.Context, c Contact, originalPhone string) error
	// Count returns the number of stored contacts.
	Count(ctx context.Context) (int, error)
}

// Normalize trims surrounding whitespace from freshly typed key fields.
// Stores never call it: stored phones are looked up exactly as saved.
func (c Contact) Normalize() Contact {
	c.Phone = strings.TrimSpace(c.Phone)
	c.WorkNumber = strings.TrimSpace(c.WorkNumber)
	c.Email = strings.TrimSpace(c.Email)
	c.Website = strings.TrimSpace(c.Website)
	return c
}

// FullName joins first and last name with a single space.
func (c Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// BirthdayString formats the birthday, or returns "" when unset.
func (c Contact) BirthdayString() string {
	if c.Birthday.IsZero() {
		return ""
	}
	return c.Birthday.Format(BirthdayLayout)
}

// ParseAge coerces raw age text. Empty input yields zero.
func ParseAge(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: age %q is not a whole number", ErrInvalidContact, s)
	}
	if n < MinAge || n > MaxAge {
		return 0, fmt.Errorf("%w: age must be between %d and %d, got %d", ErrInvalidContact, MinAge, MaxAge, n)
	}
	return n, nil
}

// ParseBirthday coerces raw birthday text in BirthdayLayout.
// Empty input yields the zero time.
func ParseBirthday(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(BirthdayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: birthday %q must look like YYYY-MM-DD", ErrInvalidContact, s)
	}
	return t, nil
}

// Field is one labeled contact attribute, in display order.
type Field struct {
	Label string
	Value string
}

// Fields returns the contact's attributes with their display labels.
func (c Contact) Fields() []Field {
	return []Field{
		{"First Name", c.FirstName},
		{"Last Name", c.LastName},
		{"Email", c.Email},
		{"Phone Number", c.Phone},
		{"Address", c.Address},
		{"Organization", c.Organization},
		{"Notes", c.Notes},
		{"Group", c.Group},
		{"Age", strconv.Itoa(c.Age)},
		{"Birthday", c.BirthdayString()},
		{"Work Number", c.WorkNumber},
		{"Pronouns", c.Pronouns},
		{"Nickname", c.Nickname},
		{"Website", c.Website},
	}
}
