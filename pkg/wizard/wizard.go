// Package wizard implements the step-gated placemark submission flow. State
// transitions are pure (see State); Wizard wraps them with a presenter, a
// submission sink and an in-flight guard.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-memorymap/pkg/labels"
	"github.com/goliatone/go-memorymap/pkg/record"
)

// Sink receives the finished record. A nil error means the request was
// dispatched; it does not imply the endpoint accepted it.
type Sink interface {
	Submit(ctx context.Context, r record.Record) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, r record.Record) error

// Submit implements Sink.
func (f SinkFunc) Submit(ctx context.Context, r record.Record) error {
	return f(ctx, r)
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithPresenter sets the presenter that receives views and notifications.
func WithPresenter(p Presenter) Option {
	return func(w *Wizard) {
		if p != nil {
			w.presenter = p
		}
	}
}

// WithCatalog overrides the label catalog (Japanese by default).
func WithCatalog(c labels.Catalog) Option {
	return func(w *Wizard) {
		w.catalog = c
	}
}

// WithLogger routes wizard logging to logger.
func WithLogger(logger *log.Logger) Option {
	return func(w *Wizard) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithSessionID fixes the session identifier used in log lines.
func WithSessionID(id string) Option {
	return func(w *Wizard) {
		if id != "" {
			w.sessionID = id
		}
	}
}

// Wizard is one submission session. It is safe for concurrent use. Views
// reach the presenter in the order their states were produced; a view made
// stale by a newer render is dropped.
type Wizard struct {
	mu        sync.Mutex
	state     State
	seq       uint64
	inFlight  bool
	submitted bool
	success   *Success

	renderMu sync.Mutex
	rendered uint64

	sink      Sink
	presenter Presenter
	catalog   labels.Catalog
	logger    *log.Logger
	sessionID string
}

// New constructs a wizard positioned at the consent step.
func New(sink Sink, options ...Option) *Wizard {
	w := &Wizard{
		state:     NewState(),
		sink:      sink,
		presenter: NopPresenter{},
		catalog:   labels.Japanese(),
		logger:    log.New(io.Discard, "", 0),
		sessionID: uuid.NewString(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w
}

// SessionID identifies this session in logs.
func (w *Wizard) SessionID() string { return w.sessionID }

// Catalog returns the labels the wizard renders with.
func (w *Wizard) Catalog() labels.Catalog { return w.catalog }

// Step returns the current step.
func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Step
}

// Record returns a copy of the accumulated record.
func (w *Wizard) Record() record.Record {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Record.Clone()
}

// View projects the current state.
func (w *Wizard) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Project(w.state, w.catalog)
}

// Success returns the success summary once the record has been submitted.
func (w *Wizard) Success() (Success, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.success == nil {
		return Success{}, false
	}
	return *w.success, true
}

// Start renders the initial view.
func (w *Wizard) Start() {
	w.mu.Lock()
	view, seq := w.projectLocked()
	w.mu.Unlock()
	w.publish(view, seq, false)
}

// projectLocked projects the current state and stamps it. Callers hold mu.
func (w *Wizard) projectLocked() (View, uint64) {
	w.seq++
	return Project(w.state, w.catalog), w.seq
}

// publish renders view unless a newer one has already been rendered.
func (w *Wizard) publish(view View, seq uint64, scroll bool) {
	w.renderMu.Lock()
	defer w.renderMu.Unlock()
	if seq <= w.rendered {
		return
	}
	w.rendered = seq
	w.presenter.Render(view)
	if scroll {
		w.presenter.ScrollToTop()
	}
}

// Advance moves forward when the current step is valid. A rejected advance
// leaves the step unchanged, notifies a warning and returns a
// *ValidationError.
func (w *Wizard) Advance() error {
	w.mu.Lock()
	current := w.state
	next, moved, ok := current.Advance()
	if !ok {
		w.mu.Unlock()
		verr := &ValidationError{
			Step:    current.Step,
			Message: w.catalog.StepMessage(int(current.Step), current.Record.MapType),
		}
		w.logf("advance rejected at step %d", current.Step)
		w.presenter.Notify(Notification{Level: LevelWarning, Message: verr.Message})
		return verr
	}
	if !moved {
		w.mu.Unlock()
		w.logf("advance ignored: already at last step (%d/%d)", current.Step, LastStep)
		return nil
	}
	w.state = next
	view, seq := w.projectLocked()
	w.mu.Unlock()

	w.logf("moved to step %d", next.Step)
	w.publish(view, seq, true)
	return nil
}

// Retreat moves back one step without validation.
func (w *Wizard) Retreat() {
	w.mu.Lock()
	next, moved := w.state.Retreat()
	if !moved {
		w.mu.Unlock()
		return
	}
	w.state = next
	view, seq := w.projectLocked()
	w.mu.Unlock()

	w.logf("back to step %d", next.Step)
	w.publish(view, seq, true)
}

// update applies fn under the lock and renders the resulting view.
func (w *Wizard) update(fn func(State) State) {
	w.mu.Lock()
	w.state = fn(w.state)
	view, seq := w.projectLocked()
	w.mu.Unlock()
	w.publish(view, seq, false)
}

func (w *Wizard) SetPrivacyAgreement(v bool) {
	w.update(func(s State) State { s.Record.PrivacyAgreement = v; return s })
}

func (w *Wizard) SetName(v string) {
	w.update(func(s State) State { s.Record.Name = v; return s })
}

func (w *Wizard) SetAdmissionYear(v string) {
	w.update(func(s State) State { s.Record.AdmissionYear = v; return s })
}

func (w *Wizard) SetDepartment(v string) {
	w.update(func(s State) State { s.Record.Department = v; return s })
}

// SelectMapType sets the map type and resets the area, whatever its prior
// value. The phrase field becomes visible only for world maps.
func (w *Wizard) SelectMapType(m record.MapType) error {
	if !m.Valid() {
		return fmt.Errorf("%w: map type %q", ErrUnknownOption, m)
	}
	w.update(func(s State) State { return s.WithMapType(m) })
	w.logf("map type selected: %s", m)
	return nil
}

// SelectPrefecture sets the area for japan maps.
func (w *Wizard) SelectPrefecture(name string) error {
	if !w.catalog.HasPrefecture(name) {
		return fmt.Errorf("%w: prefecture %q", ErrUnknownOption, name)
	}
	return w.selectArea(record.MapTypeJapan, name)
}

// SelectRegion sets the area for world maps from a region key.
func (w *Wizard) SelectRegion(key string) error {
	label, ok := w.catalog.RegionLabel(key)
	if !ok {
		return fmt.Errorf("%w: region %q", ErrUnknownOption, key)
	}
	return w.selectArea(record.MapTypeWorld, label)
}

func (w *Wizard) selectArea(want record.MapType, area string) error {
	w.mu.Lock()
	if w.state.Record.MapType != want {
		got := w.state.Record.MapType
		w.mu.Unlock()
		return fmt.Errorf("%w: %q needs map type %s, have %q", ErrUnknownOption, area, want, got)
	}
	w.state.Record.Area = area
	view, seq := w.projectLocked()
	w.mu.Unlock()

	w.logf("area selected: %s", area)
	w.publish(view, seq, false)
	return nil
}

func (w *Wizard) SetPlaceName(v string) {
	w.update(func(s State) State { s.Record.PlaceName = v; return s })
}

func (w *Wizard) SetMemoryContent(v string) {
	w.update(func(s State) State { s.Record.MemoryContent = v; return s })
}

func (w *Wizard) SetLocationInfo(v string) {
	w.update(func(s State) State { s.Record.LocationInfo = v; return s })
}

// SelectPhotoType switches the active photo tab without clearing either
// source.
func (w *Wizard) SelectPhotoType(t record.PhotoType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: photo type %q", ErrUnknownOption, t)
	}
	w.update(func(s State) State { s.Record.PhotoType = t; return s })
	return nil
}

// SetPhotoURL makes url the active photo source.
func (w *Wizard) SetPhotoURL(url string) {
	w.update(func(s State) State { return s.WithPhotoURL(url) })
}

// SetPhotoFile accepts an image of at most 5 MiB as the active photo source.
// Rejections notify a warning and leave the record untouched.
func (w *Wizard) SetPhotoFile(p record.Photo) error {
	if err := record.CheckPhoto(p); err != nil {
		msg := w.catalog.PhotoNotImage
		if errors.Is(err, record.ErrPhotoTooLarge) {
			msg = w.catalog.PhotoTooLarge
		}
		w.logf("photo %q rejected: %v", p.Name, err)
		w.presenter.Notify(Notification{Level: LevelWarning, Message: msg})
		return &UploadError{Reason: err, Message: msg}
	}
	w.update(func(s State) State { return s.WithPhotoFile(p) })
	w.logf("photo accepted: %s (%d bytes)", p.Name, p.Size)
	return nil
}

func (w *Wizard) SetUsefulPhrase(v string) {
	w.update(func(s State) State { s.Record.UsefulPhrase = v; return s })
}

func (w *Wizard) SetAgreement(v bool) {
	w.update(func(s State) State { s.Record.Agreement = v; return s })
}

// Submit validates the whole record and hands it to the sink. Only one call
// may be in flight; the loading indicator is cleared on every path.
func (w *Wizard) Submit(ctx context.Context) (err error) {
	w.mu.Lock()
	switch {
	case w.submitted:
		w.mu.Unlock()
		return ErrAlreadySubmitted
	case w.inFlight:
		w.mu.Unlock()
		return ErrSubmitInFlight
	}
	snapshot := w.state.Record.Clone()
	if violations := record.Validate(snapshot); len(violations) > 0 {
		w.mu.Unlock()
		verr := validationFromViolations(violations, w.catalog)
		w.logf("submit rejected: %v", verr)
		w.presenter.Notify(Notification{Level: LevelError, Message: verr.Message})
		return verr
	}
	if w.sink == nil {
		w.mu.Unlock()
		return ErrNoSink
	}
	w.inFlight = true
	w.mu.Unlock()

	defer func() {
		if rec := recover(); rec != nil {
			w.logf("submit panic: %v", rec)
			err = &TransportError{Err: fmt.Errorf("panic: %v", rec)}
			w.presenter.Notify(Notification{Level: LevelError, Message: w.catalog.UnexpectedError})
		}
		w.mu.Lock()
		w.inFlight = false
		w.mu.Unlock()
		w.presenter.SetLoading(false)
	}()
	w.presenter.SetLoading(true)

	w.logf("submitting record")
	if serr := w.sink.Submit(ctx, snapshot); serr != nil {
		w.logf("submit failed: %v", serr)
		w.presenter.Notify(Notification{Level: LevelError, Message: w.catalog.SubmitFailed})
		return &TransportError{Err: serr}
	}

	success := summarize(snapshot, w.catalog)
	w.mu.Lock()
	w.submitted = true
	w.success = &success
	w.mu.Unlock()

	w.logf("submitted: %s", success.PlaceName)
	w.presenter.ShowSuccess(success)
	return nil
}

func validationFromViolations(violations []record.Violation, c labels.Catalog) *ValidationError {
	first := Step(violations[0].Step)
	var fields []string
	for _, v := range violations {
		fields = append(fields, v.Field)
	}
	msg := c.SubmitInvalid
	if int(first) >= 0 && int(first) < StepCount {
		msg = fmt.Sprintf("%s (%s)", c.SubmitInvalid, c.StepTitles[first])
	}
	return &ValidationError{
		Step:    first,
		Fields:  fields,
		Message: msg,
	}
}

func (w *Wizard) logf(format string, args ...any) {
	w.logger.Printf("[wizard %s] "+format, append([]any{w.sessionID}, args...)...)
}
