package googleforms

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-memorymap/pkg/config"
	"github.com/goliatone/go-memorymap/pkg/labels"
	"github.com/goliatone/go-memorymap/pkg/record"
)

func testForm() config.Form {
	return config.Form{
		Host:    config.DefaultHost,
		FormID:  "form-123",
		Timeout: config.Duration(5 * time.Second),
		Fields: map[string]string{
			config.FieldPrivacyAgreement: "entry.1",
			config.FieldName:             "entry.2",
			config.FieldAdmissionYear:    "entry.3",
			config.FieldDepartment:       "entry.4",
			config.FieldMapType:          "entry.5",
			config.FieldArea:             "entry.6",
			config.FieldPlaceName:        "entry.7",
			config.FieldMemoryContent:    "entry.8",
			config.FieldLocationInfo:     "entry.9",
			config.FieldPhoto:            "entry.10",
			config.FieldSubmissionTime:   "entry.11",
		},
	}
}

func campusRecord() record.Record {
	r := record.New()
	r.PrivacyAgreement = true
	r.AdmissionYear = "2020"
	r.Department = "Engineering"
	r.MapType = record.MapTypeCampus
	r.PlaceName = "Library Plaza"
	r.MemoryContent = "Met friends here"
	r.LocationInfo = "35.0,139.0"
	r.Agreement = true
	return r
}

var fixedNow = func() time.Time { return time.Date(2025, 4, 1, 9, 5, 7, 0, time.UTC) }

type capture struct {
	mu       sync.Mutex
	requests int
	form     url.Values
	method   string
}

func newCaptureServer(t *testing.T, status int) (*httptest.Server, *capture) {
	t.Helper()
	c := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.requests++
		c.method = r.Method
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		if r.MultipartForm != nil {
			c.form = url.Values(r.MultipartForm.Value)
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, c
}

func TestSubmitPostsMultipartValues(t *testing.T) {
	srv, got := newCaptureServer(t, http.StatusOK)
	sink, err := New(testForm(), WithEndpoint(srv.URL), WithClock(fixedNow), WithCatalog(labels.Japanese()))
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}

	if err := sink.Submit(context.Background(), campusRecord()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	want := url.Values{
		"entry.1":  {"はい。同意します。"},
		"entry.2":  {"匿名"},
		"entry.3":  {"2020"},
		"entry.4":  {"Engineering"},
		"entry.5":  {"キャンパス周辺"},
		"entry.6":  {"キャンパス周辺"},
		"entry.7":  {"Library Plaza"},
		"entry.8":  {"Met friends here"},
		"entry.9":  {"35.0,139.0"},
		"entry.10": {"写真なし"},
		"entry.11": {"2025/4/1 09:05:07"},
	}
	if got.method != http.MethodPost || got.requests != 1 {
		t.Fatalf("method=%s requests=%d", got.method, got.requests)
	}
	if diff := cmp.Diff(want, got.form); diff != "" {
		t.Fatalf("form values (-want +got):\n%s", diff)
	}
}

func TestSubmitTreatsErrorStatusAsDispatched(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusInternalServerError} {
		srv, got := newCaptureServer(t, status)
		sink, err := New(testForm(), WithEndpoint(srv.URL))
		if err != nil {
			t.Fatal(err)
		}
		if err := sink.Submit(context.Background(), campusRecord()); err != nil {
			t.Fatalf("status %d: submit returned %v", status, err)
		}
		if got.requests != 1 {
			t.Fatalf("status %d: requests = %d", status, got.requests)
		}
	}
}

func TestSubmitNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	sink, err := New(testForm(), WithEndpoint(endpoint))
	if err != nil {
		t.Fatal(err)
	}
	err = sink.Submit(context.Background(), campusRecord())
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if terr.URL != endpoint {
		t.Fatalf("error url = %q", terr.URL)
	}
}

func TestValuesPhotoAndPhrase(t *testing.T) {
	c := labels.English()
	sink, err := New(testForm(), WithCatalog(c), WithClock(fixedNow))
	if err != nil {
		t.Fatal(err)
	}

	r := campusRecord()
	r.MapType = record.MapTypeWorld
	r.Area = "Asia"
	r.PhotoType = record.PhotoTypeURL
	r.PhotoURL = "https://example.com/market.jpg"
	r.UsefulPhrase = "Xin chào"
	r.Name = "Aki"

	values := sink.Values(r)
	if got := values.Get("entry.10"); got != "URL: https://example.com/market.jpg\nUseful phrase: Xin chào" {
		t.Fatalf("photo text = %q", got)
	}
	if got := values.Get("entry.6"); got != "Asia" {
		t.Fatalf("area = %q", got)
	}
	if got := values.Get("entry.2"); got != "Aki" {
		t.Fatalf("name = %q", got)
	}

	form := testForm()
	form.Fields[config.FieldUsefulPhrase] = "entry.12"
	sink, err = New(form, WithCatalog(c))
	if err != nil {
		t.Fatal(err)
	}
	r.PhotoType = record.PhotoTypeFile
	r.PhotoFile = &record.Photo{Name: "market.jpg", Size: 10, ContentType: "image/jpeg"}
	values = sink.Values(r)
	if got := values.Get("entry.10"); got != "File: market.jpg" {
		t.Fatalf("photo text = %q", got)
	}
	if got := values.Get("entry.12"); got != "Xin chào" {
		t.Fatalf("phrase = %q", got)
	}

	r.MapType = record.MapTypeJapan
	if _, ok := sink.Values(r)["entry.12"]; ok {
		t.Fatalf("phrase sent for a japan map")
	}
}

func TestValuesSharedIdentifier(t *testing.T) {
	form := testForm()
	form.Fields[config.FieldPhoto] = form.Fields[config.FieldLocationInfo]
	sink, err := New(form, WithCatalog(labels.Japanese()))
	if err != nil {
		t.Fatal(err)
	}
	got := sink.Values(campusRecord())["entry.9"]
	if diff := cmp.Diff([]string{"35.0,139.0", "写真なし"}, got); diff != "" {
		t.Fatalf("shared identifier values (-want +got):\n%s", diff)
	}
}

func TestNewRejectsIncompleteMapping(t *testing.T) {
	form := testForm()
	delete(form.Fields, config.FieldArea)
	if _, err := New(form); !errors.Is(err, config.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestPrefilledURL(t *testing.T) {
	sink, err := New(testForm(), WithClock(fixedNow), WithCatalog(labels.English()))
	if err != nil {
		t.Fatal(err)
	}
	link := sink.PrefilledURL(campusRecord())
	if !strings.HasPrefix(link, "https://docs.google.com/forms/d/e/form-123/viewform?") {
		t.Fatalf("prefilled url = %q", link)
	}
	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatal(err)
	}
	if got := parsed.Query().Get("entry.7"); got != "Library Plaza" {
		t.Fatalf("placeName = %q", got)
	}
}
