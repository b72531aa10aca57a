package flash

// State is the resting point of the button-flash behavior between polls.
type State int

// The states of the button-flash behavior. StateJustReleased is transient:
// it is entered and left within a single Poll call and is never observable
// from the outside.
const (
	StateIdle State = iota
	StateBlinkOn
	StateBlinkOff
	StateJustReleased
)

// numStates bounds the number of transitions a single Poll can apply.
const numStates = 4

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateBlinkOn:
		return "BlinkOn"
	case StateBlinkOff:
		return "BlinkOff"
	case StateJustReleased:
		return "JustReleased"
	}

	return "Unknown"
}
