package orchestrator

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-memorymap/pkg/config"
	"github.com/goliatone/go-memorymap/pkg/export"
	"github.com/goliatone/go-memorymap/pkg/googleforms"
	"github.com/goliatone/go-memorymap/pkg/labels"
	"github.com/goliatone/go-memorymap/pkg/placemark"
	"github.com/goliatone/go-memorymap/pkg/record"
	"github.com/goliatone/go-memorymap/pkg/wizard"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLocale overrides the locale named by the form config.
func WithLocale(locale string) Option {
	return func(o *Orchestrator) {
		if strings.TrimSpace(locale) != "" {
			o.locale = locale
		}
	}
}

// WithLogger shares logger with every component.
func WithLogger(logger *log.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithHTTPClient injects the client used for submissions.
func WithHTTPClient(client *http.Client) Option {
	return func(o *Orchestrator) {
		o.sinkClient = client
	}
}

// WithViewerClient injects the client used for marker documents. The
// default caches responses in memory.
func WithViewerClient(client *http.Client) Option {
	return func(o *Orchestrator) {
		o.viewerClient = client
	}
}

// WithEndpoint redirects submissions, typically to a test server.
func WithEndpoint(endpoint string) Option {
	return func(o *Orchestrator) {
		o.endpoint = endpoint
	}
}

// WithClock overrides the time source for timestamps and backup names.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		if now != nil {
			o.now = now
		}
	}
}

// Orchestrator owns the long-lived components of one deployment.
type Orchestrator struct {
	form         config.Form
	locale       string
	logger       *log.Logger
	sinkClient   *http.Client
	viewerClient *http.Client
	endpoint     string
	now          func() time.Time

	catalog labels.Catalog
	sink    *googleforms.Sink
	viewer  *placemark.Viewer
}

// New validates form and builds the sink and viewer.
func New(form config.Form, options ...Option) (*Orchestrator, error) {
	o := &Orchestrator{
		form:   form,
		locale: form.Locale,
		logger: log.New(io.Discard, "", 0),
		now:    time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.catalog = labels.ForLocale(o.locale)

	sinkOpts := []googleforms.Option{
		googleforms.WithCatalog(o.catalog),
		googleforms.WithLogger(o.logger),
		googleforms.WithClock(o.now),
		googleforms.WithEndpoint(o.endpoint),
	}
	if o.sinkClient != nil {
		sinkOpts = append(sinkOpts, googleforms.WithHTTPClient(o.sinkClient))
	}
	sink, err := googleforms.New(form, sinkOpts...)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	o.sink = sink

	viewer, err := placemark.New(
		placemark.WithCatalog(o.catalog),
		placemark.WithLogger(o.logger),
		placemark.WithHTTPClient(o.viewerClient),
	)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	o.viewer = viewer
	return o, nil
}

// Catalog returns the catalog selected for the deployment.
func (o *Orchestrator) Catalog() labels.Catalog { return o.catalog }

// Sink returns the submission sink.
func (o *Orchestrator) Sink() *googleforms.Sink { return o.sink }

// Viewer returns the placemark viewer.
func (o *Orchestrator) Viewer() *placemark.Viewer { return o.viewer }

// NewWizard starts a session posting to the sink. Extra options are applied
// after the defaults.
func (o *Orchestrator) NewWizard(p wizard.Presenter, options ...wizard.Option) *wizard.Wizard {
	opts := []wizard.Option{
		wizard.WithPresenter(p),
		wizard.WithCatalog(o.catalog),
		wizard.WithLogger(o.logger),
	}
	return wizard.New(o.sink, append(opts, options...)...)
}

// ExportCSV writes a backup of r into dir.
func (o *Orchestrator) ExportCSV(dir string, r record.Record) (string, error) {
	path, err := export.WriteFile(dir, r, o.now(), o.catalog)
	if err != nil {
		return "", err
	}
	o.logger.Printf("orchestrator: backup written to %s", path)
	return path, nil
}
