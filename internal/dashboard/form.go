package dashboard

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/phonebook/internal/storage"
)

// Form field indexes, in display order.
const (
	fieldFirstName = iota
	fieldLastName
	fieldEmail
	fieldPhone
	fieldAddress
	fieldOrganization
	fieldNotes
	fieldGroup
	fieldAge
	fieldBirthday
	fieldWorkNumber
	fieldPronouns
	fieldNickname
	fieldWebsite
	fieldCount
)

var formLabels = [fieldCount]string{
	"First Name",
	"Last Name",
	"Email",
	"Phone Number",
	"Home Address",
	"Organization",
	"Notes",
	"Group",
	"Age",
	"Birthday",
	"Work Number",
	"Pronouns",
	"Nickname",
	"Website",
}

// formLabelWidth aligns inputs after the longest label.
const formLabelWidth = 14

// formState manages the contact form. In edit mode Save goes through Update
// keyed on originalPhone, which may be any stored key including "".
type formState struct {
	inputs        [fieldCount]textinput.Model
	focused       int
	originalPhone string
	edit          bool
}

// newFormState returns an empty form with the first field focused.
func newFormState() formState {
	var fs formState
	for i := range fs.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		switch i {
		case fieldAge:
			ti.CharLimit = 3
			ti.Placeholder = fmt.Sprintf("%d-%d", storage.MinAge, storage.MaxAge)
		case fieldBirthday:
			ti.CharLimit = len(storage.BirthdayLayout)
			ti.Placeholder = "YYYY-MM-DD"
		case fieldPhone, fieldWorkNumber:
			ti.CharLimit = 20
		}
		fs.inputs[i] = ti
	}
	fs.inputs[0].Focus()
	return fs
}

// fromContact returns a form pre-filled with c in edit mode.
func fromContact(c storage.Contact) formState {
	fs := newFormState()
	values := [fieldCount]string{
		c.FirstName, c.LastName, c.Email, c.Phone, c.Address, c.Organization,
		c.Notes, c.Group, strconv.Itoa(c.Age), c.BirthdayString(),
		c.WorkNumber, c.Pronouns, c.Nickname, c.Website,
	}
	for i, v := range values {
		fs.inputs[i].SetValue(v)
	}
	fs.originalPhone = c.Phone
	fs.edit = true
	return fs
}

// editing reports whether the form edits an existing contact.
func (fs formState) editing() bool {
	return fs.edit
}

// resize sets every input to the content pane width.
func (fs formState) resize(width int) formState {
	w := width - formLabelWidth - 4
	if w < 10 {
		w = 10
	}
	for i := range fs.inputs {
		fs.inputs[i].Width = w
	}
	return fs
}

// focus moves keyboard focus to field i, wrapping at both ends.
func (fs formState) focus(i int) formState {
	i = (i + fieldCount) % fieldCount
	fs.inputs[fs.focused].Blur()
	fs.focused = i
	fs.inputs[i].Focus()
	return fs
}

// Update handles field navigation and typing. Enter on the last field or
// ctrl+s emits SubmitFormMsg.
func (fs formState) Update(msg tea.KeyMsg) (formState, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return fs.focus(fs.focused + 1), nil
	case "shift+tab", "up":
		return fs.focus(fs.focused - 1), nil
	case "ctrl+s":
		return fs, submitForm
	case "enter":
		if fs.focused == fieldCount-1 {
			return fs, submitForm
		}
		return fs.focus(fs.focused + 1), nil
	}

	if fs.focused == fieldAge && msg.Type == tea.KeyRunes {
		msg.Runes = digitsOnly(msg.Runes)
		if len(msg.Runes) == 0 {
			return fs, nil
		}
	}

	var cmd tea.Cmd
	fs.inputs[fs.focused], cmd = fs.inputs[fs.focused].Update(msg)
	return fs, cmd
}

func submitForm() tea.Msg { return SubmitFormMsg{} }

func digitsOnly(runes []rune) []rune {
	out := runes[:0:0]
	for _, r := range runes {
		if unicode.IsDigit(r) {
			out = append(out, r)
		}
	}
	return out
}

// contact coerces the form values into a Contact. Age and birthday text
// must parse; everything else is free text.
func (fs formState) contact() (storage.Contact, error) {
	value := func(i int) string { return fs.inputs[i].Value() }

	age, err := storage.ParseAge(value(fieldAge))
	if err != nil {
		return storage.Contact{}, err
	}
	birthday, err := storage.ParseBirthday(value(fieldBirthday))
	if err != nil {
		return storage.Contact{}, err
	}
	c := storage.Contact{
		FirstName:    value(fieldFirstName),
		LastName:     value(fieldLastName),
		Email:        value(fieldEmail),
		Phone:        value(fieldPhone),
		Address:      value(fieldAddress),
		Organization: value(fieldOrganization),
		Notes:        value(fieldNotes),
		Group:        value(fieldGroup),
		Age:          age,
		Birthday:     birthday,
		WorkNumber:   value(fieldWorkNumber),
		Pronouns:     value(fieldPronouns),
		Nickname:     value(fieldNickname),
		Website:      value(fieldWebsite),
	}.Normalize()
	return c, nil
}

// View renders the labeled inputs and the save hint.
func (fs formState) View() string {
	var b strings.Builder
	if fs.editing() {
		b.WriteString(headingStyle.Render("Edit Contact " + fs.originalPhone))
	} else {
		b.WriteString(headingStyle.Render("Add a New Contact"))
	}
	b.WriteString("\n\n")
	for i, in := range fs.inputs {
		label := fmt.Sprintf("%-*s", formLabelWidth, formLabels[i])
		if i == fs.focused {
			label = focusedLabel.Render(label)
		} else {
			label = labelStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString(" ")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(mutedText.Render("[ctrl+s] Save Contact"))
	return b.String()
}
