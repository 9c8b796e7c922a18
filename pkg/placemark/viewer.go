// Package placemark fetches KML marker documents and renders them as an HTML
// fragment of name and description blocks.
package placemark

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"

	"github.com/gregjones/httpcache"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-memorymap/pkg/labels"
	"github.com/goliatone/go-memorymap/pkg/render/template"
	"github.com/goliatone/go-memorymap/pkg/render/template/pongo"
)

// MaxDocumentSize caps how much of a response body is parsed.
const MaxDocumentSize = 10 << 20

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the built-in templates.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// FetchError reports a failed GET. Status is zero for transport failures.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("placemark: fetch %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("placemark: fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Option configures a Viewer.
type Option func(*Viewer)

// WithHTTPClient replaces the caching client used for fetches.
func WithHTTPClient(client *http.Client) Option {
	return func(v *Viewer) {
		if client != nil {
			v.client = client
		}
	}
}

// WithLogger routes viewer logging to logger.
func WithLogger(logger *log.Logger) Option {
	return func(v *Viewer) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithCatalog selects the locale and the label used for unnamed markers.
func WithCatalog(c labels.Catalog) Option {
	return func(v *Viewer) {
		v.catalog = c
	}
}

// WithTemplateDir loads templates from dir first, falling back to the
// embedded ones for names it does not hold.
func WithTemplateDir(dir string) Option {
	return func(v *Viewer) {
		v.templateDir = dir
	}
}

// WithTemplateRenderer overrides the renderer. The renderer must provide a
// "placemarks" template; it receives the catalog globals on construction.
func WithTemplateRenderer(r template.TemplateRenderer) Option {
	return func(v *Viewer) {
		if r != nil {
			v.templates = r
		}
	}
}

// Viewer loads and renders marker documents.
type Viewer struct {
	client    *http.Client
	logger    *log.Logger
	catalog   labels.Catalog
	templates template.TemplateRenderer
	policy    *bluemonday.Policy

	templateDir string
}

// New builds a viewer with an in-memory HTTP cache and the embedded
// template.
func New(options ...Option) (*Viewer, error) {
	v := &Viewer{
		client:  httpcache.NewMemoryCacheTransport().Client(),
		logger:  log.New(io.Discard, "", 0),
		catalog: labels.Japanese(),
		policy:  bluemonday.UGCPolicy(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}
	if v.templates == nil {
		engine, err := pongo.New(pongo.WithDir(v.templateDir), pongo.WithFS(TemplatesFS()))
		if err != nil {
			return nil, fmt.Errorf("placemark: templates: %w", err)
		}
		v.templates = engine
	}
	v.templates.SetGlobals(map[string]any{
		"locale":        v.catalog.Locale,
		"unknown_place": v.catalog.UnknownPlace,
	})
	return v, nil
}

// Fetch downloads and parses the document at url. Names are left as found;
// Render labels unnamed markers.
func (v *Viewer) Fetch(ctx context.Context, url string) ([]Placemark, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	resp, err := v.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{URL: url, Status: resp.StatusCode, Err: errors.New(resp.Status)}
	}

	return Parse(io.LimitReader(resp.Body, MaxDocumentSize))
}

// Render writes the container fragment for marks. Descriptions are
// sanitized, names are escaped and unnamed markers get the catalog's
// unknown-place label.
func (v *Viewer) Render(w io.Writer, marks []Placemark) error {
	items := make([]map[string]any, 0, len(marks))
	for _, m := range marks {
		item := map[string]any{
			"name":        m.Name,
			"description": v.policy.Sanitize(m.Description),
			"positioned":  m.HasPosition,
		}
		if m.HasPosition {
			item["lng"] = m.Longitude
			item["lat"] = m.Latitude
		}
		items = append(items, item)
	}
	if err := v.templates.RenderTemplate("placemarks", map[string]any{"placemarks": items}, w); err != nil {
		return fmt.Errorf("placemark: render: %w", err)
	}
	return nil
}

// Load fetches url and renders it to w. A document without a Document
// element renders an empty container and is not an error. Fetch and parse
// failures are logged and returned without writing anything.
func (v *Viewer) Load(ctx context.Context, url string, w io.Writer) error {
	marks, err := v.Fetch(ctx, url)
	switch {
	case errors.Is(err, ErrNoDocument):
		v.logger.Printf("placemark: %s: no Document element", url)
		marks = nil
	case err != nil:
		v.logger.Printf("placemark: load %s: %v", url, err)
		return err
	}
	v.logger.Printf("placemark: %s: %d markers", url, len(marks))
	return v.Render(w, marks)
}
