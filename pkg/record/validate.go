package record

import (
	"errors"
	"net/http"
	"strings"
)

// MaxPhotoSize is the largest accepted photo upload (5 MiB).
const MaxPhotoSize int64 = 5 * 1024 * 1024

var (
	// ErrPhotoTooLarge is returned for uploads above MaxPhotoSize.
	ErrPhotoTooLarge = errors.New("record: photo exceeds 5 MiB")
	// ErrPhotoNotImage is returned for uploads whose MIME type is not image/*.
	ErrPhotoNotImage = errors.New("record: photo is not an image")
	// ErrPhotoSize is returned when the declared size is negative.
	ErrPhotoSize = errors.New("record: photo size is invalid")
)

// Violation names a required field that failed whole-record validation and
// the wizard step that owns it.
type Violation struct {
	Step  int
	Field string
}

// Validate checks every required field of the record independently of the
// wizard's step predicates. Violations are ordered by step.
func Validate(r Record) []Violation {
	var out []Violation
	add := func(step int, field string) {
		out = append(out, Violation{Step: step, Field: field})
	}

	if !r.PrivacyAgreement {
		add(0, "privacyAgreement")
	}
	if blank(r.AdmissionYear) {
		add(1, "admissionYear")
	}
	if blank(r.Department) {
		add(1, "department")
	}
	if !r.MapType.Valid() {
		add(2, "mapType")
	}
	if r.MapType != MapTypeCampus && blank(r.Area) {
		add(3, "area")
	}
	if blank(r.PlaceName) {
		add(4, "placeName")
	}
	if blank(r.MemoryContent) {
		add(4, "memoryContent")
	}
	if blank(r.LocationInfo) {
		add(4, "locationInfo")
	}
	if !r.Agreement {
		add(5, "agreement")
	}
	return out
}

// CheckPhoto enforces the upload constraints. The size check runs first and
// uses the larger of the declared size and the payload length; an empty
// ContentType is sniffed from the data.
func CheckPhoto(p Photo) error {
	if p.Size < 0 {
		return ErrPhotoSize
	}
	if PhotoSize(p) > MaxPhotoSize {
		return ErrPhotoTooLarge
	}
	if !strings.HasPrefix(PhotoContentType(p), "image/") {
		return ErrPhotoNotImage
	}
	return nil
}

// PhotoSize returns the larger of the declared size and the payload length.
func PhotoSize(p Photo) int64 {
	return max(p.Size, int64(len(p.Data)))
}

// PhotoContentType returns the declared MIME type or a sniffed one.
func PhotoContentType(p Photo) string {
	if ct := strings.TrimSpace(p.ContentType); ct != "" {
		return strings.ToLower(ct)
	}
	if len(p.Data) == 0 {
		return ""
	}
	return http.DetectContentType(p.Data)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
