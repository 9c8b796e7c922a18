// Package testsupport holds shared fixtures and golden-file helpers.
package testsupport

import (
	"context"
	"os"
	"testing"

	"github.com/goliatone/go-memorymap/pkg/record"
)

// CampusRecord returns a complete campus submission with anonymous name and
// no photo.
func CampusRecord() record.Record {
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

// MustReadFixture reads a file relative to the calling package.
func MustReadFixture(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadFixture(t, path))
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
