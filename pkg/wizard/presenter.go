package wizard

// Level grades a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is a dismissible message for the user.
type Notification struct {
	Level   Level
	Message string
}

// Presenter draws wizard output. Implementations must not call back into the
// wizard from these methods.
type Presenter interface {
	Render(View)
	Notify(Notification)
	ScrollToTop()
	SetLoading(bool)
	ShowSuccess(Success)
}

// NopPresenter discards all output.
type NopPresenter struct{}

func (NopPresenter) Render(View)         {}
func (NopPresenter) Notify(Notification) {}
func (NopPresenter) ScrollToTop()        {}
func (NopPresenter) SetLoading(bool)     {}
func (NopPresenter) ShowSuccess(Success) {}
