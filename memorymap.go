// Package memorymap collects memory placemark submissions for a third-party
// form endpoint and renders KML marker documents.
package memorymap

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goliatone/go-memorymap/pkg/config"
	"github.com/goliatone/go-memorymap/pkg/orchestrator"
	"github.com/goliatone/go-memorymap/pkg/placemark"
	"github.com/goliatone/go-memorymap/pkg/record"
)

// Form aliases config.Form so callers can stay on the root package.
type Form = config.Form

// Record aliases the submission record.
type Record = record.Record

// Orchestrator aliases the composition root.
type Orchestrator = orchestrator.Orchestrator

// New exposes the orchestrator constructor from the top-level module.
func New(form Form, options ...orchestrator.Option) (*Orchestrator, error) {
	return orchestrator.New(form, options...)
}

// LoadForm reads a JSON or YAML form config from a path on disk.
func LoadForm(path string) (Form, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Form{}, err
	}
	return config.Load(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
}

// EmbeddedTemplates exposes the built-in placemark templates so callers can
// reuse or extend them without importing the viewer package directly.
func EmbeddedTemplates() fs.FS {
	return placemark.TemplatesFS()
}
