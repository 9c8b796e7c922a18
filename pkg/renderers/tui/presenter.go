package tui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/goliatone/go-memorymap/pkg/labels"
	"github.com/goliatone/go-memorymap/pkg/wizard"
)

// Theme captures optional message prefixes. Keep minimal to avoid coupling
// presentation to ANSI specifics.
type Theme struct {
	InfoPrefix    string
	WarningPrefix string
	ErrorPrefix   string
}

// DefaultTheme uses plain ASCII markers.
func DefaultTheme() Theme {
	return Theme{InfoPrefix: "i ", WarningPrefix: "! ", ErrorPrefix: "x "}
}

// Presenter prints wizard views as plain text.
type Presenter struct {
	mu      sync.Mutex
	out     io.Writer
	catalog labels.Catalog
	theme   Theme
}

var _ wizard.Presenter = (*Presenter)(nil)

// NewPresenter writes to out using the prompt labels of c.
func NewPresenter(out io.Writer, c labels.Catalog, theme Theme) *Presenter {
	return &Presenter{out: out, catalog: c, theme: theme}
}

func (p *Presenter) printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.out, format, args...)
}

// Render prints the step header and, on the review step, the summary.
func (p *Presenter) Render(v wizard.View) {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s [%d/%d] %s\n", progressBar(v.Progress), int(v.Step)+1, wizard.StepCount, v.Title)
	if c := v.Confirmation; c != nil {
		pr := p.catalog.Prompts
		rows := [][2]string{
			{pr.Name, c.Name},
			{pr.AdmissionYear, c.AdmissionYear},
			{pr.Department, c.Department},
			{pr.MapType, c.MapType},
			{p.catalog.CSVArea, c.Area},
			{pr.PlaceName, c.PlaceName},
			{pr.MemoryContent, c.MemoryContent},
			{pr.LocationInfo, c.LocationInfo},
			{pr.PhotoType, c.Photo},
		}
		if c.ShowPhrase {
			rows = append(rows, [2]string{pr.UsefulPhrase, c.UsefulPhrase})
		}
		for _, row := range rows {
			fmt.Fprintf(&b, "  %s: %s\n", row[0], row[1])
		}
	}
	p.printf("%s", b.String())
}

// Notify prints n with the prefix for its level.
func (p *Presenter) Notify(n wizard.Notification) {
	prefix := p.theme.InfoPrefix
	switch n.Level {
	case wizard.LevelWarning:
		prefix = p.theme.WarningPrefix
	case wizard.LevelError:
		prefix = p.theme.ErrorPrefix
	}
	p.printf("%s%s\n", prefix, n.Message)
}

// ScrollToTop prints a separator.
func (p *Presenter) ScrollToTop() {
	p.printf("%s\n", strings.Repeat("-", 40))
}

// SetLoading prints the sending notice when loading starts.
func (p *Presenter) SetLoading(loading bool) {
	if loading {
		p.printf("%s\n", p.catalog.Prompts.Sending)
	}
}

// ShowSuccess prints the thank-you message and the echoed fields.
func (p *Presenter) ShowSuccess(s wizard.Success) {
	pr := p.catalog.Prompts
	p.printf("\n%s\n  %s: %s\n  %s: %s\n  %s: %s\n  %s: %s\n  %s: %s\n  %s: %s\n",
		pr.Thanks,
		pr.Name, s.Name,
		pr.AdmissionYear, s.AdmissionYear,
		pr.Department, s.Department,
		pr.MapType, s.MapType,
		p.catalog.CSVArea, s.Area,
		pr.PlaceName, s.PlaceName,
	)
}

func progressBar(progress [wizard.StepCount]wizard.Progress) string {
	var b strings.Builder
	for _, step := range progress {
		switch step {
		case wizard.ProgressCompleted:
			b.WriteString("●")
		case wizard.ProgressActive:
			b.WriteString("◉")
		default:
			b.WriteString("○")
		}
	}
	return b.String()
}
