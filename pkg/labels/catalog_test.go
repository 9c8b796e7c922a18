package labels

import (
	"testing"

	"github.com/goliatone/go-memorymap/pkg/record"
)

func TestForLocale(t *testing.T) {
	cases := map[string]string{
		"":      "ja",
		"ja":    "ja",
		"EN":    "en",
		"en-GB": "en",
		"fr":    "ja",
	}
	for locale, want := range cases {
		if got := ForLocale(locale).Locale; got != want {
			t.Fatalf("ForLocale(%q) = %q, want %q", locale, got, want)
		}
	}
}

func TestCatalogsAreComplete(t *testing.T) {
	for _, c := range []Catalog{Japanese(), English()} {
		if len(c.Prefectures) != 47 {
			t.Fatalf("%s: %d prefectures", c.Locale, len(c.Prefectures))
		}
		for _, m := range record.MapTypes() {
			if c.MapTypes[m] == "" {
				t.Fatalf("%s: no label for map type %s", c.Locale, m)
			}
		}
		for _, pt := range []record.PhotoType{record.PhotoTypeFile, record.PhotoTypeURL} {
			if c.Prompts.PhotoTypes[pt] == "" {
				t.Fatalf("%s: no label for photo type %s", c.Locale, pt)
			}
		}
		for i, msg := range c.StepMessages {
			if msg == "" || c.StepTitles[i] == "" {
				t.Fatalf("%s: step %d missing text", c.Locale, i)
			}
		}
	}

	ja, en := Japanese(), English()
	if len(ja.Regions) != len(en.Regions) {
		t.Fatalf("region lists differ in length")
	}
	for i := range ja.Regions {
		if ja.Regions[i].Key != en.Regions[i].Key {
			t.Fatalf("region %d key mismatch: %s vs %s", i, ja.Regions[i].Key, en.Regions[i].Key)
		}
	}
}

func TestStepMessageAreaVariants(t *testing.T) {
	c := Japanese()
	if got := c.StepMessage(3, record.MapTypeJapan); got != c.AreaPrefectureMessage {
		t.Fatalf("japan area message = %q", got)
	}
	if got := c.StepMessage(3, record.MapTypeWorld); got != c.AreaRegionMessage {
		t.Fatalf("world area message = %q", got)
	}
	if got := c.StepMessage(3, record.MapTypeCampus); got != c.StepMessages[3] {
		t.Fatalf("campus area message = %q", got)
	}
	if got := c.StepMessage(9, record.MapTypeUnset); got != c.SubmitInvalid {
		t.Fatalf("out of range message = %q", got)
	}
}

func TestDisplayHelpers(t *testing.T) {
	c := Japanese()
	if got := c.FormatYear(" 2020 "); got != "2020年度" {
		t.Fatalf("year = %q", got)
	}
	if got := c.FormatYear(""); got != c.Missing {
		t.Fatalf("empty year = %q", got)
	}
	if got := c.DisplayName("  "); got != "匿名" {
		t.Fatalf("blank name = %q", got)
	}

	r := record.New()
	r.MapType = record.MapTypeCampus
	if got := c.DisplayArea(r); got != c.CampusArea {
		t.Fatalf("campus area = %q", got)
	}
	r.MapType = record.MapTypeJapan
	if got := c.DisplayArea(r); got != c.Missing {
		t.Fatalf("missing area = %q", got)
	}
	if label, ok := c.RegionLabel("oceania"); !ok || label == "" {
		t.Fatalf("oceania not resolved")
	}
	if _, ok := c.RegionLabel("antarctica"); ok {
		t.Fatalf("unknown region resolved")
	}
	if !c.HasPrefecture("東京都") || c.HasPrefecture("Tokyo") {
		t.Fatalf("prefecture lookup wrong")
	}
}
