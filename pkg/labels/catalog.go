// Package labels holds the localized strings shown by the wizard and written
// to the submission endpoint.
package labels

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-memorymap/pkg/record"
)

// Region is a selectable world region. Key is stable; Label is what gets
// stored in the record and sent.
type Region struct {
	Key   string
	Label string
}

// Catalog is a complete set of localized strings.
type Catalog struct {
	Locale string

	StepTitles [6]string
	// StepMessages holds the fixed rejection message per step. Step 3 uses
	// AreaPrefectureMessage or AreaRegionMessage instead when they apply.
	StepMessages          [6]string
	AreaPrefectureMessage string
	AreaRegionMessage     string

	MapTypes    map[record.MapType]string
	CampusArea  string
	Prefectures []string
	Regions     []Region

	Anonymous     string
	Missing       string
	YearFormat    string
	PhotoNone     string
	PhraseMissing string

	SubmitInvalid   string
	SubmitFailed    string
	UnexpectedError string
	PhotoTooLarge   string
	PhotoNotImage   string
	UnknownPlace    string

	AgreementYes    string
	AgreementNo     string
	WirePhotoNone   string
	WirePhotoURL    string
	WirePhotoFile   string
	WirePhrase      string
	TimestampLayout string

	CSVHeader      [2]string
	CSVSubmittedAt string
	CSVMapType     string
	CSVArea        string
	CSVPlaceName   string
	CSVLocation    string
	CSVMemory      string
	CSVPhotoURL    string
	CSVSubmitter   string

	Prompts Prompts
}

// Prompts holds the labels an interactive front end asks with.
type Prompts struct {
	PrivacyAgreement string
	Name             string
	AdmissionYear    string
	Department       string
	MapType          string
	Prefecture       string
	Region           string
	PlaceName        string
	MemoryContent    string
	LocationInfo     string
	PhotoType        string
	PhotoTypes       map[record.PhotoType]string
	PhotoFile        string
	PhotoURL         string
	UsefulPhrase     string
	Agreement        string

	Navigate  string
	Next      string
	Back      string
	Submit    string
	ExportCSV string
	Quit      string

	Sending    string
	Thanks     string
	Exported   string
	FileUnread string
}

// ForLocale returns the catalog for locale, falling back to Japanese.
func ForLocale(locale string) Catalog {
	switch strings.ToLower(strings.TrimSpace(locale)) {
	case "en", "en-us", "en-gb", "english":
		return English()
	default:
		return Japanese()
	}
}

// MapTypeLabel returns the localized map type, or Missing when unset.
func (c Catalog) MapTypeLabel(m record.MapType) string {
	if label, ok := c.MapTypes[m]; ok {
		return label
	}
	if m == record.MapTypeUnset {
		return c.Missing
	}
	return string(m)
}

// RegionLabel resolves a region key.
func (c Catalog) RegionLabel(key string) (string, bool) {
	for _, region := range c.Regions {
		if region.Key == key {
			return region.Label, true
		}
	}
	return "", false
}

// HasPrefecture reports whether name is one of the catalog's prefectures.
func (c Catalog) HasPrefecture(name string) bool {
	for _, p := range c.Prefectures {
		if p == name {
			return true
		}
	}
	return false
}

// StepMessage returns the rejection message for step, picking the area
// variant matching mapType on step 3.
func (c Catalog) StepMessage(step int, mapType record.MapType) string {
	if step == 3 {
		switch mapType {
		case record.MapTypeJapan:
			return c.AreaPrefectureMessage
		case record.MapTypeWorld:
			return c.AreaRegionMessage
		}
	}
	if step < 0 || step >= len(c.StepMessages) {
		return c.SubmitInvalid
	}
	return c.StepMessages[step]
}

// FormatYear renders an admission year for display.
func (c Catalog) FormatYear(year string) string {
	year = strings.TrimSpace(year)
	if year == "" {
		return c.Missing
	}
	return fmt.Sprintf(c.YearFormat, year)
}

// DisplayName returns the submitter name or the anonymous label.
func (c Catalog) DisplayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return c.Anonymous
	}
	return name
}

// DisplayArea returns the area, the campus label for campus maps, or Missing.
func (c Catalog) DisplayArea(r record.Record) string {
	if r.Area != "" {
		return r.Area
	}
	if r.MapType == record.MapTypeCampus {
		return c.CampusArea
	}
	return c.Missing
}

// OrMissing returns s or the Missing placeholder when s is blank.
func (c Catalog) OrMissing(s string) string {
	if strings.TrimSpace(s) == "" {
		return c.Missing
	}
	return s
}

// PhotoSummary describes the active photo source for display: the file name
// with its size in MB, the URL, or PhotoNone.
func (c Catalog) PhotoSummary(r record.Record) string {
	if photo, ok := r.ActivePhotoFile(); ok {
		return fmt.Sprintf("%s (%.2fMB)", photo.Name, float64(photo.Size)/1024/1024)
	}
	if url, ok := r.ActivePhotoURL(); ok {
		return url
	}
	return c.PhotoNone
}
