package wizard

import (
	"strings"

	"github.com/goliatone/go-memorymap/pkg/record"
)

// Step indexes a wizard screen.
type Step int

const (
	StepConsent Step = iota
	StepBasicInfo
	StepMapType
	StepArea
	StepDetails
	StepReview
)

// FirstStep and LastStep bound the step index.
const (
	FirstStep = StepConsent
	LastStep  = StepReview
)

// StepCount is the number of wizard screens.
const StepCount = int(LastStep) + 1

// State is the pure wizard state. Transitions return a new value and never
// touch a presenter.
type State struct {
	Step   Step
	Record record.Record
}

// NewState returns the state at session start.
func NewState() State {
	return State{Step: FirstStep, Record: record.New()}
}

// StepValid is the per-step gate for advancing.
func StepValid(step Step, r record.Record) bool {
	switch step {
	case StepConsent:
		return r.PrivacyAgreement
	case StepBasicInfo:
		return filled(r.AdmissionYear) && filled(r.Department)
	case StepMapType:
		return r.MapType != record.MapTypeUnset
	case StepArea:
		return r.MapType == record.MapTypeCampus || r.Area != ""
	case StepDetails:
		return filled(r.PlaceName) && filled(r.MemoryContent) && filled(r.LocationInfo)
	case StepReview:
		return r.Agreement
	default:
		return false
	}
}

// Valid reports whether the current step may be left forwards.
func (s State) Valid() bool {
	return StepValid(s.Step, s.Record)
}

// Advance moves one step forward when the current step is valid. At the last
// step a valid state is returned unchanged with moved=false.
func (s State) Advance() (next State, moved bool, ok bool) {
	if !s.Valid() {
		return s, false, false
	}
	if s.Step >= LastStep {
		return s, false, true
	}
	s.Step++
	return s, true, true
}

// Retreat moves one step back, floored at the first step.
func (s State) Retreat() (State, bool) {
	if s.Step <= FirstStep {
		return s, false
	}
	s.Step--
	return s, true
}

// WithMapType sets the map type and always clears the area.
func (s State) WithMapType(m record.MapType) State {
	s.Record.MapType = m
	s.Record.Area = ""
	return s
}

// WithPhotoFile makes p the active photo and clears any URL.
func (s State) WithPhotoFile(p record.Photo) State {
	photo := p
	photo.Size = record.PhotoSize(p)
	s.Record.PhotoFile = &photo
	s.Record.PhotoURL = ""
	s.Record.PhotoType = record.PhotoTypeFile
	return s
}

// WithPhotoURL makes url the active photo and clears any file.
func (s State) WithPhotoURL(url string) State {
	s.Record.PhotoURL = url
	s.Record.PhotoFile = nil
	s.Record.PhotoType = record.PhotoTypeURL
	return s
}

func filled(s string) bool {
	return strings.TrimSpace(s) != ""
}
