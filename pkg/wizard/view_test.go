package wizard

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-memorymap/pkg/labels"
	"github.com/goliatone/go-memorymap/pkg/record"
)

func TestProjectNavigation(t *testing.T) {
	c := labels.Japanese()

	first := Project(NewState(), c)
	if first.ShowPrev || !first.ShowNext || first.NextEnabled || first.ShowSubmit {
		t.Fatalf("first step nav wrong: %+v", first)
	}
	if first.Title != c.StepTitles[0] {
		t.Fatalf("title = %q", first.Title)
	}

	s := NewState()
	s.Step = StepReview
	s.Record.Agreement = true
	last := Project(s, c)
	if !last.ShowPrev || last.ShowNext || !last.ShowSubmit || !last.SubmitEnabled {
		t.Fatalf("last step nav wrong: %+v", last)
	}
	if last.Confirmation == nil {
		t.Fatalf("review step must carry a confirmation")
	}

	want := [StepCount]Progress{
		ProgressCompleted, ProgressCompleted, ProgressCompleted,
		ProgressCompleted, ProgressCompleted, ProgressActive,
	}
	if diff := cmp.Diff(want, last.Progress); diff != "" {
		t.Fatalf("progress (-want +got):\n%s", diff)
	}
}

func TestProjectAreaPicker(t *testing.T) {
	c := labels.Japanese()
	cases := map[record.MapType]AreaPicker{
		record.MapTypeCampus: AreaPickerNone,
		record.MapTypeJapan:  AreaPickerPrefecture,
		record.MapTypeWorld:  AreaPickerRegion,
	}
	for mapType, want := range cases {
		s := NewState().WithMapType(mapType)
		s.Step = StepArea
		if got := Project(s, c).AreaPicker; got != want {
			t.Fatalf("%s: picker = %q, want %q", mapType, got, want)
		}
	}

	s := NewState().WithMapType(record.MapTypeJapan)
	s.Step = StepDetails
	if got := Project(s, c).AreaPicker; got != AreaPickerNone {
		t.Fatalf("picker shown outside step 3: %q", got)
	}
}

func TestConfirmCampusDefaults(t *testing.T) {
	r := record.New()
	r.AdmissionYear = "2020"
	r.Department = "工学部"
	r.MapType = record.MapTypeCampus
	r.PlaceName = "図書館前"
	r.MemoryContent = "友達と会った"
	r.LocationInfo = "35.0,139.0"

	got := Confirm(r, labels.Japanese())
	want := Confirmation{
		Name:          "匿名",
		AdmissionYear: "2020年度",
		Department:    "工学部",
		MapType:       "キャンパス周辺",
		Area:          "キャンパス周辺",
		PlaceName:     "図書館前",
		MemoryContent: "友達と会った",
		LocationInfo:  "35.0,139.0",
		Photo:         "未添付",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("confirmation (-want +got):\n%s", diff)
	}
}

func TestConfirmWorldPhraseAndPhoto(t *testing.T) {
	c := labels.English()
	s := NewState().WithMapType(record.MapTypeWorld).WithPhotoFile(record.Photo{
		Name: "market.jpg", Size: 1572864, ContentType: "image/jpeg",
	})
	s.Record.Area = "Asia"

	got := Confirm(s.Record, c)
	if !got.ShowPhrase || got.UsefulPhrase != c.PhraseMissing {
		t.Fatalf("phrase section = %v %q", got.ShowPhrase, got.UsefulPhrase)
	}
	if got.Photo != "market.jpg (1.50MB)" {
		t.Fatalf("photo = %q", got.Photo)
	}
	if got.AdmissionYear != "-" || got.Department != "-" {
		t.Fatalf("missing placeholders wrong: %+v", got)
	}

	s = s.WithPhotoURL("https://example.com/p.jpg")
	s.Record.UsefulPhrase = "Xin chào"
	got = Confirm(s.Record, c)
	if got.Photo != "https://example.com/p.jpg" || got.UsefulPhrase != "Xin chào" {
		t.Fatalf("url confirmation wrong: %+v", got)
	}

	s = s.WithMapType(record.MapTypeJapan)
	if got := Confirm(s.Record, c); got.ShowPhrase || got.UsefulPhrase != "" {
		t.Fatalf("phrase shown for japan: %+v", got)
	}
}
