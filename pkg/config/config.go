// Package config loads the deployment-specific mapping between record fields
// and the opaque entry identifiers of the form endpoint.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Record field keys accepted in the fields table.
const (
	FieldPrivacyAgreement = "privacyAgreement"
	FieldName             = "name"
	FieldAdmissionYear    = "admissionYear"
	FieldDepartment       = "department"
	FieldMapType          = "mapType"
	FieldArea             = "area"
	FieldPlaceName        = "placeName"
	FieldMemoryContent    = "memoryContent"
	FieldLocationInfo     = "locationInfo"
	FieldPhoto            = "photo"
	FieldUsefulPhrase     = "usefulPhrase"
	FieldSubmissionTime   = "submissionTime"
)

const (
	// DefaultHost is the form host used when none is configured.
	DefaultHost = "docs.google.com"
	// DefaultTimeout bounds a single submission request.
	DefaultTimeout = 15 * time.Second
)

// ErrMissingField is wrapped by Validate for every absent required key.
var ErrMissingField = errors.New("config: missing field identifier")

// RequiredFields lists the keys every deployment must map.
func RequiredFields() []string {
	return []string{
		FieldPrivacyAgreement,
		FieldAdmissionYear,
		FieldDepartment,
		FieldMapType,
		FieldArea,
		FieldPlaceName,
		FieldMemoryContent,
		FieldLocationInfo,
	}
}

// OptionalFields lists keys that are sent only when mapped.
func OptionalFields() []string {
	return []string{FieldName, FieldPhoto, FieldUsefulPhrase, FieldSubmissionTime}
}

// Form describes one deployment of the third-party form.
type Form struct {
	Host    string            `json:"host" yaml:"host"`
	FormID  string            `json:"form_id" yaml:"form_id"`
	Locale  string            `json:"locale" yaml:"locale"`
	Timeout Duration          `json:"timeout" yaml:"timeout"`
	Fields  map[string]string `json:"fields" yaml:"fields"`
}

// Duration accepts "15s" style strings in JSON and YAML.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.parse(node.Value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("config: timeout must be a duration string: %w", err)
	}
	return d.parse(raw)
}

func (d *Duration) parse(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*d = 0
		return nil
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("config: parse timeout %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Load reads and validates a form config from fsys.
func Load(fsys fs.FS, path string) (Form, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Form{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes JSON or YAML, applies defaults and validates the result.
func Parse(data []byte, source string) (Form, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Form{}, fmt.Errorf("config: file %s is empty", source)
	}

	var form Form
	if err := json.Unmarshal(data, &form); err != nil {
		form = Form{}
		if yerr := yaml.Unmarshal(data, &form); yerr != nil {
			return Form{}, fmt.Errorf("config: parse %s: invalid JSON or YAML: %w", source, yerr)
		}
	}

	form.normalize()
	if err := form.Validate(); err != nil {
		return Form{}, fmt.Errorf("config: %s: %w", source, err)
	}
	return form, nil
}

func (f *Form) normalize() {
	f.Host = strings.TrimSpace(f.Host)
	if f.Host == "" {
		f.Host = DefaultHost
	}
	f.FormID = strings.TrimSpace(f.FormID)
	if f.Timeout <= 0 {
		f.Timeout = Duration(DefaultTimeout)
	}
	clean := make(map[string]string, len(f.Fields))
	for key, id := range f.Fields {
		key = strings.TrimSpace(key)
		id = strings.TrimSpace(id)
		if key == "" || id == "" {
			continue
		}
		clean[key] = id
	}
	f.Fields = clean
}

// Validate reports every missing required key, unknown keys, and
// identifiers shared between required keys.
func (f Form) Validate() error {
	var errs []error
	if f.FormID == "" {
		errs = append(errs, errors.New("form_id is required"))
	}

	for _, key := range RequiredFields() {
		if f.Fields[key] == "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingField, key))
		}
	}

	known := make(map[string]struct{})
	for _, key := range append(RequiredFields(), OptionalFields()...) {
		known[key] = struct{}{}
	}
	var unknown []string
	for key := range f.Fields {
		if _, ok := known[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		errs = append(errs, fmt.Errorf("unknown field key %q", key))
	}

	owners := make(map[string]string)
	for _, key := range RequiredFields() {
		id := f.Fields[key]
		if id == "" {
			continue
		}
		if prev, dup := owners[id]; dup {
			errs = append(errs, fmt.Errorf("identifier %s is shared by %s and %s", id, prev, key))
			continue
		}
		owners[id] = key
	}

	return errors.Join(errs...)
}

// ID returns the wire identifier for key.
func (f Form) ID(key string) (string, bool) {
	id, ok := f.Fields[key]
	return id, ok && id != ""
}

// ResponseURL is the POST target for submissions.
func (f Form) ResponseURL() string {
	return f.endpoint("formResponse")
}

// ViewFormURL is the public form page used for prefilled links.
func (f Form) ViewFormURL() string {
	return f.endpoint("viewform")
}

func (f Form) endpoint(action string) string {
	u := url.URL{
		Scheme: "https",
		Host:   f.Host,
		Path:   "/forms/d/e/" + f.FormID + "/" + action,
	}
	return u.String()
}
