package reel

import "github.com/lucasb-eyer/go-colorful"

// MessageSink receives transient notification text. [Scene.AddStartMessage]
// and friends only store closures that forward to a sink; the sequencer
// itself never renders or owns messages.
type MessageSink interface {
	AddMessage(text string, color colorful.Color, duration float64)
}

// Message is a live entry in a [MessageBox].
type Message struct {
	Text  string
	Color colorful.Color

	remaining float64
}

// Remaining returns the seconds left before the message expires.
func (m Message) Remaining() float64 {
	return m.remaining
}

// MessageBox is a bounded FIFO of timed messages. It implements
// [MessageSink] and expires entries as its clock is advanced. Rendering is
// up to the caller; [MessageOverlay] draws one for ebiten programs.
type MessageBox struct {
	messages []Message
	max      int
}

var _ MessageSink = (*MessageBox)(nil)

// NewMessageBox creates a message box holding at most max live messages.
// When full, posting a new message drops the oldest. A max below 1 falls
// back to 8.
func NewMessageBox(max int) *MessageBox {
	if max < 1 {
		max = 8
	}
	return &MessageBox{
		messages: make([]Message, 0, max),
		max:      max,
	}
}

// AddMessage posts a message that stays live for the given number of
// seconds.
func (b *MessageBox) AddMessage(text string, color colorful.Color, duration float64) {
	if len(b.messages) >= b.max {
		n := copy(b.messages, b.messages[1:])
		b.messages = b.messages[:n]
	}
	b.messages = append(b.messages, Message{
		Text:      text,
		Color:     color,
		remaining: duration,
	})
}

// Update ages all live messages by dt seconds and drops the expired ones.
func (b *MessageBox) Update(dt float64) {
	kept := b.messages[:0]
	for _, m := range b.messages {
		m.remaining -= dt
		if m.remaining > 0 {
			kept = append(kept, m)
		}
	}
	b.messages = kept
}

// Messages returns the live messages, oldest first. The returned slice MUST
// NOT be mutated.
func (b *MessageBox) Messages() []Message {
	return b.messages
}
