// Package render loads the HTML page templates and executes them.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"path"
	"path/filepath"
)

// Renderer holds the parsed page templates. With reload set the directory
// is parsed again on every Render so template edits show up without a
// restart.
type Renderer struct {
	dir    string
	reload bool
	tmpl   *template.Template
}

var funcs = template.FuncMap{
	// static builds the public URL of a file under the static directory.
	"static": func(name string) string {
		return path.Join("/static", name)
	},
}

func New(dir string, reload bool) (*Renderer, error) {
	r := &Renderer{dir: dir, reload: reload}
	t, err := r.parse()
	if err != nil {
		return nil, err
	}
	r.tmpl = t
	return r, nil
}

func (r *Renderer) parse() (*template.Template, error) {
	t, err := template.New("").Funcs(funcs).ParseGlob(filepath.Join(r.dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("parse templates in %s: %w", r.dir, err)
	}
	return t, nil
}

// Render executes the named template into w. Output is buffered so a
// failing template never leaves a half-written page.
func (r *Renderer) Render(w io.Writer, name string, data interface{}) error {
	t := r.tmpl
	if r.reload {
		var err error
		if t, err = r.parse(); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
