// Package pongo renders templates with flosch/pongo2.
package pongo

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-memorymap/pkg/render/template"
)

// Extension is appended to template names that lack it.
const Extension = ".tpl"

func init() {
	if !pongo2.FilterExists("coord") {
		_ = pongo2.RegisterFilter("coord", filterCoord)
	}
}

// Option configures the engine before construction.
type Option func(*Engine)

// WithDir loads templates from a directory on disk. Templates found there
// win over the same names in WithFS.
func WithDir(dir string) Option {
	return func(e *Engine) {
		e.dir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from files.
func WithFS(files fs.FS) Option {
	return func(e *Engine) {
		e.files = files
	}
}

// Engine is a pongo2 template set. Parsed templates are cached by the set.
type Engine struct {
	dir   string
	files fs.FS

	mu  sync.RWMutex
	set *pongo2.TemplateSet
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New builds an engine. At least one of WithDir or WithFS is required.
func New(options ...Option) (*Engine, error) {
	e := &Engine{}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}

	var loaders []pongo2.TemplateLoader
	if e.dir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(e.dir)
		if err != nil {
			return nil, fmt.Errorf("pongo: template dir: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if e.files != nil {
		loaders = append(loaders, pongo2.NewFSLoader(e.files))
	}
	if len(loaders) == 0 {
		return nil, errors.New("pongo: no template source")
	}

	e.set = pongo2.NewSet("memorymap", loaders...)
	e.set.Globals = pongo2.Context{}
	return e, nil
}

// RenderTemplate renders name to w. Output is buffered so a failing template
// writes nothing.
func (e *Engine) RenderTemplate(name string, data map[string]any, w io.Writer) error {
	if !strings.HasSuffix(name, Extension) {
		name += Extension
	}
	tmpl, err := e.set.FromCache(name)
	if err != nil {
		return fmt.Errorf("pongo: load %s: %w", name, err)
	}

	e.mu.RLock()
	out, err := tmpl.ExecuteBytes(pongo2.Context(data))
	e.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("pongo: execute %s: %w", name, err)
	}
	_, err = w.Write(out)
	return err
}

// SetGlobals merges data into the values every template sees.
func (e *Engine) SetGlobals(data map[string]any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.set.Globals.Update(pongo2.Context(data))
}

// filterCoord prints a float in its shortest exact form, so 139.0 renders
// as 139 and 35.6895 keeps its digits.
func filterCoord(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if !in.IsFloat() && !in.IsInteger() {
		return in, nil
	}
	return pongo2.AsValue(strconv.FormatFloat(in.Float(), 'f', -1, 64)), nil
}
