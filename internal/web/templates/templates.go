// Package templates renders the site's HTML pages.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/abismo-rpg/comandos/internal/web/i18n"
)

//go:embed html/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "html/*.html"))

// NoticeView is a flash notice resolved for display.
type NoticeView struct {
	Kind string
	Text string
}

// Page carries the shared fields every rendered page needs.
type Page struct {
	Lang     string
	TitleKey string
	LoggedIn bool
	Notice   *NoticeView
	Error    string

	printer *message.Printer
}

// NewPage builds the shared page context for a language tag.
func NewPage(tag language.Tag) Page {
	return Page{
		Lang:    tag.String(),
		printer: i18n.Printer(tag),
	}
}

// T resolves a localization key in the page's language.
func (p Page) T(key string, args ...any) string {
	if p.printer == nil {
		return key
	}
	return p.printer.Sprintf(key, args...)
}

// PageTitle resolves a title key, interpolating the site name.
func (p Page) PageTitle(key string) string {
	return p.T(key, p.T("site.name"))
}

// CommandView is a command record prepared for display.
type CommandView struct {
	ID         string
	Command    string
	Title      string
	Category   string
	Paragraphs []string
	ImageURL   string
}

// CategoryGroup holds the commands of one category.
type CategoryGroup struct {
	Name     string
	Commands []CommandView
}

// HomePage is the public command listing.
type HomePage struct {
	Page
	History *CommandView
	Groups  []CategoryGroup
}

// LoginPage is the admin sign-in form.
type LoginPage struct {
	Page
	Email string
}

// AdminForm holds the submitted or prefilled command form values.
type AdminForm struct {
	ID          string
	Command     string
	Title       string
	Category    string
	NewCategory string
	Response    string
}

// AdminPage is the command management panel.
type AdminPage struct {
	Page
	Form       AdminForm
	Editing    bool
	Categories []string
	Groups     []CategoryGroup
}

// DeletePage is the delete confirmation prompt.
type DeletePage struct {
	Page
	Command CommandView
}

// UnauthorizedPage is shown to authenticated users without the admin role.
type UnauthorizedPage struct {
	Page
}

// Render writes the named page template with a 200 status.
func Render(w http.ResponseWriter, name string, data any) error {
	return RenderStatus(w, http.StatusOK, name, data)
}

// RenderStatus writes the named page template with the given status. The page
// is rendered into a buffer first so a template failure never emits a partial
// response.
func RenderStatus(w http.ResponseWriter, status int, name string, data any) error {
	if w == nil {
		return fmt.Errorf("response writer is required")
	}
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
