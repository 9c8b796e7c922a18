package wizard

import (
	"github.com/goliatone/go-memorymap/pkg/labels"
	"github.com/goliatone/go-memorymap/pkg/record"
)

// Progress marks a step in the progress indicator.
type Progress string

const (
	ProgressPending   Progress = "pending"
	ProgressActive    Progress = "active"
	ProgressCompleted Progress = "completed"
)

// AreaPicker selects which area chooser step 3 shows.
type AreaPicker string

const (
	AreaPickerNone       AreaPicker = ""
	AreaPickerPrefecture AreaPicker = "prefecture"
	AreaPickerRegion     AreaPicker = "region"
)

// View is the pure projection of State that presenters draw.
type View struct {
	Step     Step
	Title    string
	Progress [StepCount]Progress

	ShowPrev      bool
	ShowNext      bool
	NextEnabled   bool
	ShowSubmit    bool
	SubmitEnabled bool

	AreaPicker AreaPicker
	// ShowPhrase also controls the contextual help affordance.
	ShowPhrase bool

	Confirmation *Confirmation
}

// Confirmation is the read-only summary shown on the review step.
type Confirmation struct {
	Name          string
	AdmissionYear string
	Department    string
	MapType       string
	Area          string
	PlaceName     string
	MemoryContent string
	LocationInfo  string
	Photo         string
	ShowPhrase    bool
	UsefulPhrase  string
}

// Success echoes the key fields after a successful submission.
type Success struct {
	Name          string
	AdmissionYear string
	Department    string
	MapType       string
	Area          string
	PlaceName     string
}

// Project derives the view for s. It has no side effects.
func Project(s State, c labels.Catalog) View {
	v := View{Step: s.Step}
	if int(s.Step) >= 0 && int(s.Step) < StepCount {
		v.Title = c.StepTitles[s.Step]
	}

	for i := range v.Progress {
		switch {
		case Step(i) < s.Step:
			v.Progress[i] = ProgressCompleted
		case Step(i) == s.Step:
			v.Progress[i] = ProgressActive
		default:
			v.Progress[i] = ProgressPending
		}
	}

	valid := s.Valid()
	v.ShowPrev = s.Step > FirstStep
	if s.Step < LastStep {
		v.ShowNext = true
		v.NextEnabled = valid
	} else {
		v.ShowSubmit = true
		v.SubmitEnabled = valid
	}

	if s.Step == StepArea {
		switch s.Record.MapType {
		case record.MapTypeJapan:
			v.AreaPicker = AreaPickerPrefecture
		case record.MapTypeWorld:
			v.AreaPicker = AreaPickerRegion
		}
	}
	v.ShowPhrase = s.Record.PhraseApplies()

	if s.Step == StepReview {
		confirmation := Confirm(s.Record, c)
		v.Confirmation = &confirmation
	}
	return v
}

// Confirm builds the review summary for r.
func Confirm(r record.Record, c labels.Catalog) Confirmation {
	out := Confirmation{
		Name:          c.DisplayName(r.Name),
		AdmissionYear: c.FormatYear(r.AdmissionYear),
		Department:    c.OrMissing(r.Department),
		MapType:       c.MapTypeLabel(r.MapType),
		Area:          c.DisplayArea(r),
		PlaceName:     c.OrMissing(r.PlaceName),
		MemoryContent: c.OrMissing(r.MemoryContent),
		LocationInfo:  c.OrMissing(r.LocationInfo),
		Photo:         c.PhotoSummary(r),
		ShowPhrase:    r.PhraseApplies(),
	}
	if out.ShowPhrase {
		out.UsefulPhrase = r.UsefulPhrase
		if !filled(out.UsefulPhrase) {
			out.UsefulPhrase = c.PhraseMissing
		}
	}
	return out
}

func summarize(r record.Record, c labels.Catalog) Success {
	area := r.Area
	if area == "" {
		area = c.CampusArea
	}
	return Success{
		Name:          c.DisplayName(r.Name),
		AdmissionYear: r.AdmissionYear,
		Department:    r.Department,
		MapType:       c.MapTypeLabel(r.MapType),
		Area:          area,
		PlaceName:     r.PlaceName,
	}
}
