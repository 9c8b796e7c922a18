// Package googleforms posts placemark records to a Google Forms formResponse
// endpoint. Field identifiers come from config.Form; the endpoint answers
// with an opaque response, so a request that was dispatched counts as sent.
package googleforms

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-memorymap/pkg/config"
	"github.com/goliatone/go-memorymap/pkg/labels"
	"github.com/goliatone/go-memorymap/pkg/record"
)

// TransportError reports a network-level failure. It is the only failure the
// sink can observe.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("googleforms: post %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Option configures a Sink.
type Option func(*Sink)

// WithHTTPClient overrides the client used for posting.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Sink) {
		if client != nil {
			s.client = client
		}
	}
}

// WithEndpoint overrides the formResponse URL derived from the config.
func WithEndpoint(endpoint string) Option {
	return func(s *Sink) {
		if strings.TrimSpace(endpoint) != "" {
			s.endpoint = strings.TrimSpace(endpoint)
		}
	}
}

// WithCatalog selects the labels used for wire text.
func WithCatalog(c labels.Catalog) Option {
	return func(s *Sink) {
		s.catalog = c
	}
}

// WithClock overrides the submission timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Sink) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger routes sink logging to logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Sink) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Sink implements wizard.Sink for one form deployment.
type Sink struct {
	form     config.Form
	endpoint string
	client   *http.Client
	catalog  labels.Catalog
	now      func() time.Time
	logger   *log.Logger
}

// New validates form and returns a sink posting to its formResponse URL.
func New(form config.Form, options ...Option) (*Sink, error) {
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("googleforms: %w", err)
	}
	s := &Sink{
		form:     form,
		endpoint: form.ResponseURL(),
		client:   &http.Client{Timeout: time.Duration(form.Timeout)},
		catalog:  labels.ForLocale(form.Locale),
		now:      time.Now,
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s, nil
}

// Endpoint returns the URL submissions are posted to.
func (s *Sink) Endpoint() string { return s.endpoint }

// Submit posts r once. Any HTTP response, whatever its status, is success.
func (s *Sink) Submit(ctx context.Context, r record.Record) error {
	body, contentType, err := encodeMultipart(s.Values(r))
	if err != nil {
		return fmt.Errorf("googleforms: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, body)
	if err != nil {
		return fmt.Errorf("googleforms: request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return &TransportError{URL: s.endpoint, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	_, _ = io.Copy(io.Discard, resp.Body)

	s.logger.Printf("googleforms: dispatched to %s (status %d)", s.endpoint, resp.StatusCode)
	return nil
}

// Values maps r onto the configured entry identifiers. An identifier shared
// between keys carries one value per key.
func (s *Sink) Values(r record.Record) url.Values {
	c := s.catalog
	values := url.Values{}
	add := func(key, value string) {
		if id, ok := s.form.ID(key); ok {
			values.Add(id, value)
		}
	}

	agreement := c.AgreementNo
	if r.PrivacyAgreement {
		agreement = c.AgreementYes
	}
	add(config.FieldPrivacyAgreement, agreement)
	add(config.FieldName, c.DisplayName(r.Name))
	add(config.FieldAdmissionYear, r.AdmissionYear)
	add(config.FieldDepartment, r.Department)

	mapType := ""
	if r.MapType != record.MapTypeUnset {
		mapType = c.MapTypeLabel(r.MapType)
	}
	add(config.FieldMapType, mapType)

	area := r.Area
	if r.MapType == record.MapTypeCampus {
		area = c.CampusArea
	}
	add(config.FieldArea, area)
	add(config.FieldPlaceName, r.PlaceName)
	add(config.FieldMemoryContent, r.MemoryContent)
	add(config.FieldLocationInfo, r.LocationInfo)

	photo := s.photoText(r)
	phrase := strings.TrimSpace(r.UsefulPhrase)
	if r.PhraseApplies() && phrase != "" {
		if _, ok := s.form.ID(config.FieldUsefulPhrase); ok {
			add(config.FieldUsefulPhrase, r.UsefulPhrase)
		} else {
			photo += "\n" + c.WirePhrase + r.UsefulPhrase
		}
	}
	add(config.FieldPhoto, photo)
	add(config.FieldSubmissionTime, s.now().Format(c.TimestampLayout))

	return values
}

func (s *Sink) photoText(r record.Record) string {
	if u, ok := r.ActivePhotoURL(); ok {
		return s.catalog.WirePhotoURL + u
	}
	if photo, ok := r.ActivePhotoFile(); ok {
		return s.catalog.WirePhotoFile + photo.Name
	}
	return s.catalog.WirePhotoNone
}

// PrefilledURL builds a viewform link with the record's values filled in.
// It is meant for debugging a deployment's mapping.
func (s *Sink) PrefilledURL(r record.Record) string {
	return s.form.ViewFormURL() + "?" + s.Values(r).Encode()
}

func encodeMultipart(values url.Values) (io.Reader, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, key := range sortedKeys(values) {
		for _, v := range values[key] {
			if err := mw.WriteField(key, v); err != nil {
				return nil, "", err
			}
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return &buf, mw.FormDataContentType(), nil
}

func sortedKeys(values url.Values) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
