package record

import "strings"

// MapType selects which map a placemark belongs to.
type MapType string

const (
	MapTypeUnset  MapType = ""
	MapTypeCampus MapType = "campus"
	MapTypeJapan  MapType = "japan"
	MapTypeWorld  MapType = "world"
)

// MapTypes lists the selectable map types in display order.
func MapTypes() []MapType {
	return []MapType{MapTypeCampus, MapTypeJapan, MapTypeWorld}
}

// Valid reports whether m is one of the selectable map types.
func (m MapType) Valid() bool {
	switch m {
	case MapTypeCampus, MapTypeJapan, MapTypeWorld:
		return true
	default:
		return false
	}
}

// PhotoType selects which photo source is active.
type PhotoType string

const (
	PhotoTypeFile PhotoType = "file"
	PhotoTypeURL  PhotoType = "url"
)

// Valid reports whether p is a known photo source.
func (p PhotoType) Valid() bool {
	return p == PhotoTypeFile || p == PhotoTypeURL
}

// Photo is an uploaded image held in memory until submission.
type Photo struct {
	Name        string
	Size        int64
	ContentType string
	Data        []byte
}

// Record is the flat set of fields collected across the wizard steps. Area is
// empty when unset; it only matters when MapType is japan or world.
type Record struct {
	PrivacyAgreement bool
	Name             string
	AdmissionYear    string
	Department       string
	MapType          MapType
	Area             string
	PlaceName        string
	MemoryContent    string
	LocationInfo     string
	PhotoType        PhotoType
	PhotoFile        *Photo
	PhotoURL         string
	UsefulPhrase     string
	Agreement        bool
}

// New returns an empty record with the file photo tab active.
func New() Record {
	return Record{PhotoType: PhotoTypeFile}
}

// Clone returns a copy that shares no mutable state with r.
func (r Record) Clone() Record {
	out := r
	if r.PhotoFile != nil {
		photo := *r.PhotoFile
		photo.Data = append([]byte(nil), r.PhotoFile.Data...)
		out.PhotoFile = &photo
	}
	return out
}

// ActivePhotoFile returns the photo file when it is the active source.
func (r Record) ActivePhotoFile() (*Photo, bool) {
	if r.PhotoType == PhotoTypeFile && r.PhotoFile != nil {
		return r.PhotoFile, true
	}
	return nil, false
}

// ActivePhotoURL returns the photo URL when it is the active source.
func (r Record) ActivePhotoURL() (string, bool) {
	url := strings.TrimSpace(r.PhotoURL)
	if r.PhotoType == PhotoTypeURL && url != "" {
		return url, true
	}
	return "", false
}

// PhraseApplies reports whether the useful phrase field is shown and sent.
func (r Record) PhraseApplies() bool {
	return r.MapType == MapTypeWorld
}
