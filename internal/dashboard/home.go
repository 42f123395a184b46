package dashboard

import (
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/smileynet/phonebook"
)

// homeData is the value the Home template executes against.
type homeData struct {
	Count  int
	Loaded bool
	Err    string
	Path   string
}

// homeState holds the contact count shown on the Home screen.
type homeState struct {
	count  int
	loaded bool
	err    error
}

// apply records a count result.
func (hs homeState) apply(msg CountLoadedMsg) homeState {
	hs.loaded = true
	hs.count = msg.Count
	hs.err = msg.Err
	return hs
}

// LoadHomeTemplate parses the Home screen template from fsys.
func LoadHomeTemplate(fsys fs.FS) (*template.Template, error) {
	data, err := fs.ReadFile(fsys, phonebook.HomeTemplate)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", phonebook.HomeTemplate, err)
	}
	tmpl, err := template.New(phonebook.HomeTemplate).Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", phonebook.HomeTemplate, err)
	}
	return tmpl, nil
}

// View renders the Home screen. A template execution error is shown in place
// of the text so the screen never goes blank.
func (hs homeState) View(tmpl *template.Template, dbPath string) string {
	data := homeData{Count: hs.count, Loaded: hs.loaded, Path: dbPath}
	if hs.err != nil {
		data.Err = hs.err.Error()
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return errorStyle.Render("Home template error: " + err.Error())
	}
	return strings.TrimRight(b.String(), "\n")
}
