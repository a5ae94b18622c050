package clipboard

import (
	"time"

	"github.com/gerunddev/blogdeck/internal/markup"
)

// FeedbackWindow is how long a copy button shows its acknowledgement.
const FeedbackWindow = 2 * time.Second

// AckLabel replaces the button label after a successful copy.
const AckLabel = "Copied!"

// Button is the label state of a copy button.
type Button struct {
	Label string
	Ack   string
	until time.Time
}

// NewButton returns a button with the default labels.
func NewButton() Button {
	return Button{Label: markup.CopyLabel, Ack: AckLabel}
}

// Press starts the acknowledgement window at now.
func (b Button) Press(now time.Time) Button {
	b.until = now.Add(FeedbackWindow)
	return b
}

// Text returns the label to show at now.
func (b Button) Text(now time.Time) string {
	if now.Before(b.until) {
		return b.Ack
	}
	return b.Label
}
