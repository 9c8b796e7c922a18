package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-memorymap/pkg/renderers/tui"
)

const testForm = `host: docs.google.com
form_id: form-123
locale: en
timeout: 5s
fields:
  privacyAgreement: entry.1
  name: entry.2
  admissionYear: entry.3
  department: entry.4
  mapType: entry.5
  area: entry.6
  placeName: entry.7
  memoryContent: entry.8
  locationInfo: entry.9
  photo: entry.9
  submissionTime: entry.10
`

const testKML = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark>
      <name>Library Plaza</name>
      <description>Met friends here</description>
      <Point><coordinates>139.0,35.0,0</coordinates></Point>
    </Placemark>
  </Document>
</kml>`

func writeForm(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "form.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testForm), 0o644))
	return path
}

func execute(t *testing.T, a *app, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(a)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func kmlServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/vnd.google-earth.kml+xml")
		_, _ = w.Write([]byte(testKML))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, &app{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "memorymap "+version+"\n", out)
}

func TestPrefillReportsMissingFields(t *testing.T) {
	out, errOut, err := execute(t, &app{},
		"prefill", "--form", writeForm(t),
		"--privacy", "--year", "2020", "--map-type", "campus", "--place", "Library Plaza",
	)
	require.NoError(t, err)

	link := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(link, "https://docs.google.com/forms/d/e/form-123/viewform?"), link)
	assert.Contains(t, link, "entry.7=Library+Plaza")
	assert.Contains(t, errOut, "missing department")
	assert.NotContains(t, errOut, "missing admissionYear")
}

func TestPrefillResolvesRegionKey(t *testing.T) {
	out, _, err := execute(t, &app{}, "prefill", "--form", writeForm(t), "--map-type", "world", "--area", "asia")
	require.NoError(t, err)
	assert.Contains(t, out, "entry.6=Asia")

	out, _, err = execute(t, &app{}, "prefill", "--form", writeForm(t), "--map-type", "japan", "--area", "asia")
	require.NoError(t, err)
	assert.Contains(t, out, "entry.6=asia")
}

func TestPrefillRejectsUnknownMapType(t *testing.T) {
	_, _, err := execute(t, &app{}, "prefill", "--form", writeForm(t), "--map-type", "moon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "moon")
}

func TestPrefillNeedsFormMapping(t *testing.T) {
	_, _, err := execute(t, &app{}, "prefill")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "form_config")
}

func TestViewWritesOutputFile(t *testing.T) {
	srv := kmlServer(t)
	output := filepath.Join(t.TempDir(), "markers.html")

	_, errOut, err := execute(t, &app{}, "view", srv.URL, "--output", output, "--locale", "en")
	require.NoError(t, err)
	assert.Contains(t, errOut, output)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, `class="placemark-container"`)
	assert.Contains(t, html, "<h3>Library Plaza</h3>")
	assert.Contains(t, html, "data-lng=")
}

func TestViewUsesTemplateDir(t *testing.T) {
	srv := kmlServer(t)
	dir := t.TempDir()
	custom := `{% for p in placemarks %}* {{ p.name }} ({{ p.lng|coord }}, {{ p.lat|coord }})
{% endfor %}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "placemarks.tpl"), []byte(custom), 0o644))

	out, _, err := execute(t, &app{}, "view", srv.URL, "--templates", dir)
	require.NoError(t, err)
	assert.Equal(t, "* Library Plaza (139, 35)\n", out)
}

func TestViewReadsURLFromSettings(t *testing.T) {
	srv := kmlServer(t)
	settingsPath := filepath.Join(t.TempDir(), "memorymap.yaml")
	require.NoError(t, os.WriteFile(settingsPath, []byte("kml_url: "+srv.URL+"\n"), 0o644))

	out, _, err := execute(t, &app{}, "view", "--config", settingsPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Met friends here")
}

func TestViewWithoutURL(t *testing.T) {
	_, _, err := execute(t, &app{}, "view")
	require.Error(t, err)
}

func TestRouter(t *testing.T) {
	srv := kmlServer(t)
	a := &app{}
	var logBuf bytes.Buffer
	logger, _, err := openLogger("", &logBuf)
	require.NoError(t, err)
	a.logger = logger
	viewer, err := a.viewer()
	require.NoError(t, err)

	router := newRouter(viewer, srv.URL, logger)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Library Plaza")
	assert.Contains(t, logBuf.String(), "GET")

	srv.Close()
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestLoadSettingsFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memorymap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locale: ja\ntimeout: 15s\nlisten: 0.0.0.0:9000\n"), 0o644))

	cmd := newRootCmd(&app{})
	require.NoError(t, cmd.PersistentFlags().Parse([]string{"--locale", "en"}))

	s, err := loadSettings(path, cmd.PersistentFlags())
	require.NoError(t, err)
	assert.Equal(t, "en", s.Locale)
	assert.Equal(t, "15s", s.Timeout.String())
	assert.Equal(t, "0.0.0.0:9000", s.Listen)
}

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := loadSettings("", newRootCmd(&app{}).PersistentFlags())
	require.NoError(t, err)
	assert.Equal(t, defaultListen, s.Listen)
	assert.Empty(t, s.FormConfig)
}

// scriptedDriver answers prompts in order: confirms, inputs, text areas and
// select indexes each have their own queue.
type scriptedDriver struct {
	confirms  []bool
	inputs    []string
	textAreas []string
	selects   []int
	lastMenu  []string
}

func (d *scriptedDriver) Input(context.Context, tui.InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		return "", errors.New("input not scripted")
	}
	v := d.inputs[0]
	d.inputs = d.inputs[1:]
	return v, nil
}

func (d *scriptedDriver) Confirm(context.Context, tui.ConfirmConfig) (bool, error) {
	if len(d.confirms) == 0 {
		return false, errors.New("confirm not scripted")
	}
	v := d.confirms[0]
	d.confirms = d.confirms[1:]
	return v, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg tui.SelectConfig) (int, error) {
	d.lastMenu = cfg.Options
	if len(d.selects) == 0 {
		return -1, errors.New("select not scripted")
	}
	v := d.selects[0]
	d.selects = d.selects[1:]
	return v, nil
}

func (d *scriptedDriver) TextArea(context.Context, tui.TextAreaConfig) (string, error) {
	if len(d.textAreas) == 0 {
		return "", errors.New("textarea not scripted")
	}
	v := d.textAreas[0]
	d.textAreas = d.textAreas[1:]
	return v, nil
}

func (d *scriptedDriver) Info(context.Context, string) error { return nil }

func campusScript() *scriptedDriver {
	return &scriptedDriver{
		confirms:  []bool{true, true},
		inputs:    []string{"", "2020", "Engineering", "Library Plaza", "35.0,139.0", ""},
		textAreas: []string{"Met friends here"},
		selects: []int{
			0,    // consent: Next
			0,    // basic info: Next
			0, 0, // campus, Next
			0,    // area: Next
			0, 0, // photo file, Next
			0, // review: Submit
		},
	}
}

func TestSubmitPostsAndWritesCSV(t *testing.T) {
	var (
		mu   sync.Mutex
		body map[string][]string
	)
	endpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			mu.Lock()
			body = r.MultipartForm.Value
			mu.Unlock()
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer endpoint.Close()

	driver := campusScript()
	a := &app{driver: driver, endpoint: endpoint.URL}
	csvDir := t.TempDir()

	out, _, err := execute(t, a, "submit", "--form", writeForm(t), "--csv-dir", csvDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Thank you for your submission!")
	assert.Contains(t, out, "CSV saved: ")
	assert.Equal(t, []string{"Submit", "Back", "Save as CSV", "Quit"}, driver.lastMenu)

	mu.Lock()
	assert.Equal(t, []string{"Library Plaza"}, body["entry.7"])
	assert.Equal(t, []string{"Anonymous"}, body["entry.2"])
	mu.Unlock()

	entries, err := os.ReadDir(csvDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), ".csv"))
}

func TestSubmitQuitIsNotAnError(t *testing.T) {
	driver := &scriptedDriver{
		confirms: []bool{false},
		selects:  []int{1}, // consent: Quit
	}
	a := &app{driver: driver, endpoint: "http://127.0.0.1:1/unused"}

	_, errOut, err := execute(t, a, "submit", "--form", writeForm(t))
	require.NoError(t, err)
	assert.Contains(t, errOut, "aborted")
}
