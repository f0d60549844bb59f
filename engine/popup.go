package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/roomrow/parameter"
)

// Popup is a single transient notification line
type Popup struct {
	text      string
	remaining time.Duration
}

// Notify replaces the current notification
func (p *Popup) Notify(format string, args ...any) {
	p.text = fmt.Sprintf(format, args...)
	p.remaining = parameter.PopupDuration
}

// Update counts the notification down with real time
func (p *Popup) Update(elapsed time.Duration) {
	if p.remaining <= 0 {
		return
	}
	p.remaining -= elapsed
	if p.remaining <= 0 {
		p.text = ""
	}
}

// Text returns the visible notification, ok=false when none
func (p *Popup) Text() (string, bool) {
	return p.text, p.remaining > 0
}
