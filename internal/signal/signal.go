// Package signal defines a closed set of message variants and a single
// dispatch point over them, the Go rendering of a tagged union.
package signal

import "fmt"

// Message is the closed variant set. The unexported marker method keeps
// outside packages from adding variants.
type Message interface {
	isMessage()
}

// Quit carries no data.
type Quit struct{}

// Move carries a target coordinate.
type Move struct {
	X int
	Y int
}

// Write carries free text.
type Write struct {
	Text string
}

// ChangeColor carries an RGB triple.
type ChangeColor struct {
	R, G, B uint8
}

func (Quit) isMessage()        {}
func (Move) isMessage()        {}
func (Write) isMessage()       {}
func (ChangeColor) isMessage() {}

// Describe renders a message for display. Unknown variants cannot occur as
// long as the marker method stays unexported.
func Describe(msg Message) string {
	switch m := msg.(type) {
	case Quit:
		return "Message: Quit"
	case Move:
		return fmt.Sprintf("Message: Move to x=%d, y=%d", m.X, m.Y)
	case Write:
		return fmt.Sprintf("Message: Write - %s", m.Text)
	case ChangeColor:
		return fmt.Sprintf("Message: ChangeColor to (%d, %d, %d)", m.R, m.G, m.B)
	default:
		return fmt.Sprintf("Message: unknown (%T)", msg)
	}
}
