package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"

	"github.com/mvdberg/huisportaal/internal/web/templates"
)

// Renderer executes named page templates. Templating itself is deliberately
// dumb: handlers hand over a template name and a data map, nothing more.
type Renderer struct {
	templates map[string]*template.Template
}

// New parses the embedded template set.
func New() (*Renderer, error) {
	return parse(templates.FS)
}

// NewFromDir parses templates from a directory instead of the embedded set.
func NewFromDir(dir string) (*Renderer, error) {
	return parse(os.DirFS(dir))
}

func parse(fsys fs.FS) (*Renderer, error) {
	pages, err := fs.Glob(fsys, "*.html")
	if err != nil {
		return nil, err
	}

	parsed := make(map[string]*template.Template)
	for _, page := range pages {
		if page == "layout.html" {
			continue
		}
		tmpl, err := template.New(page).ParseFS(fsys, "layout.html", page)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		parsed[page] = tmpl
	}

	if len(parsed) == 0 {
		return nil, fmt.Errorf("no page templates found")
	}

	return &Renderer{templates: parsed}, nil
}

func (rn *Renderer) Render(w http.ResponseWriter, r *http.Request, name string, data map[string]interface{}) {
	rn.RenderStatus(w, r, http.StatusOK, name, data)
}

func (rn *Renderer) RenderStatus(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]interface{}) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = map[string]interface{}{}
	}
	if _, ok := data["Flash"]; !ok {
		if msg := PopFlash(w, r); msg != "" {
			data["Flash"] = msg
		}
	}

	// Render to a buffer first so a template error never emits half a page.
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
