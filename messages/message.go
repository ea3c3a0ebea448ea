package messages

import (
	"fmt"
	"strconv"
)

type Message int

const (
	Echo Message = iota
	Move
	Quit
	ChangeColor
)

func (m Message) String() string {
	switch m {
	case Echo:
		return "Echo"
	case Move:
		return "Move"
	case Quit:
		return "Quit"
	case ChangeColor:
		return "ChangeColor"
	default:
		return "Message(" + strconv.Itoa(int(m)) + ")"
	}
}

func All() []Message {
	return []Message{Echo, Move, Quit, ChangeColor}
}

func Parse(name string) (Message, error) {
	for _, m := range All() {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown message: %s", name)
}

// Demo is the print order of the enum exercise.
func Demo() []Message {
	return []Message{Quit, Echo, Move, ChangeColor}
}
