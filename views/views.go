// Package views renders the site's pages from html/template sets.
//
// Each page under pages/ is parsed together with every layout and partial,
// so pages share the navbar and footer by filling the blocks the base layout
// declares. Execution always starts at the "base" template.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"

	"github.com/gin-gonic/gin"

	"github.com/cppla/blog/utils"
)

//go:embed templates static
var embedded embed.FS

const entryTemplate = "base"

// Site holds values every page can reach as .site.
type Site struct {
	Name       string
	AuthorName string
	GroupName  string
}

// RenderHook observes each successful render with the page name and the
// context the handler supplied.
type RenderHook func(name string, data gin.H)

// Option configures a Renderer.
type Option func(*Renderer)

// WithReload re-parses templates on every render.
func WithReload() Option {
	return func(r *Renderer) { r.reload = true }
}

// WithHook registers h to be called after every successful render.
func WithHook(h RenderHook) Option {
	return func(r *Renderer) { r.hook = h }
}

// Renderer executes named pages with a context mapping.
type Renderer struct {
	fsys   fs.FS
	site   Site
	reload bool
	hook   RenderHook
	pages  map[string]*template.Template
}

// Templates returns the template tree bundled with the binary.
func Templates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Static returns the static assets bundled with the binary.
func Static() fs.FS {
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// New parses every page in fsys. fsys must contain layouts/, partials/ and
// pages/ directories.
func New(fsys fs.FS, site Site, opts ...Option) (*Renderer, error) {
	r := &Renderer{fsys: fsys, site: site}
	for _, opt := range opts {
		opt(r)
	}

	names, err := fs.Glob(fsys, "pages/*.html")
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no pages found")
	}

	r.pages = make(map[string]*template.Template, len(names))
	for _, name := range names {
		page := path.Base(name)
		t, err := r.parse(page)
		if err != nil {
			return nil, err
		}
		r.pages[page] = t
	}
	return r, nil
}

func (r *Renderer) parse(page string) (*template.Template, error) {
	t, err := template.New(page).Funcs(funcs).ParseFS(r.fsys,
		"layouts/*.html",
		"partials/*.html",
		path.Join("pages", page),
	)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", page, err)
	}
	return t, nil
}

func (r *Renderer) lookup(page string) (*template.Template, error) {
	if r.reload {
		return r.parse(page)
	}
	t, ok := r.pages[page]
	if !ok {
		return nil, fmt.Errorf("template %q not found", page)
	}
	return t, nil
}

// Render writes page to w. Nothing is written when execution fails.
func (r *Renderer) Render(w io.Writer, page string, data gin.H) error {
	buf, err := r.execute(page, data)
	if err != nil {
		return err
	}
	_, err = buf.WriteTo(w)
	return err
}

// HTML renders page as the response body with status code, or answers 500
// when rendering fails.
func (r *Renderer) HTML(ctx *gin.Context, code int, page string, data gin.H) {
	buf, err := r.execute(page, data)
	if err != nil {
		utils.ServerError(ctx, err)
		return
	}
	ctx.Data(code, "text/html; charset=utf-8", buf.Bytes())
}

// execute renders page into a fresh buffer and reports it to the hook.
func (r *Renderer) execute(page string, data gin.H) (*bytes.Buffer, error) {
	t, err := r.lookup(page)
	if err != nil {
		return nil, err
	}

	view := make(gin.H, len(data)+1)
	for k, v := range data {
		view[k] = v
	}
	view["site"] = r.site

	buf := new(bytes.Buffer)
	if err := t.ExecuteTemplate(buf, entryTemplate, view); err != nil {
		return nil, fmt.Errorf("render %s: %w", page, err)
	}

	if r.hook != nil {
		r.hook(page, data)
	}
	return buf, nil
}
