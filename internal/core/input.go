package core

// Intent is a named logical input signal, decoupled from the raw device
// event that produced it.
type Intent int

const (
	IntentNone      Intent = iota
	IntentMoveLeft         // Left arrow
	IntentMoveRight        // Right arrow
	IntentJump             // Up arrow
	IntentDown             // Down arrow, tracked but only swipes restart
	IntentSwipeUp          // Upward swipe, equivalent to Jump
	IntentSwipeDown        // Downward swipe, the restart gesture
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentMoveLeft:
		return "MoveLeft"
	case IntentMoveRight:
		return "MoveRight"
	case IntentJump:
		return "Jump"
	case IntentDown:
		return "Down"
	case IntentSwipeUp:
		return "SwipeUp"
	case IntentSwipeDown:
		return "SwipeDown"
	default:
		return "Unknown"
	}
}

// InputState holds the set of intents currently held by the player.
// An intent is present at most once; key repeat does not change the set.
type InputState struct {
	held map[Intent]struct{}
}

// NewInputState creates an empty input state.
func NewInputState() *InputState {
	return &InputState{
		held: make(map[Intent]struct{}),
	}
}

// Set adds an intent if absent.
func (s *InputState) Set(i Intent) {
	if i == IntentNone {
		return
	}
	if s.held == nil {
		s.held = make(map[Intent]struct{})
	}
	s.held[i] = struct{}{}
}

// Clear removes an intent. Clearing an absent intent is a no-op.
func (s *InputState) Clear(i Intent) {
	delete(s.held, i)
}

// Has returns true if the intent is currently held.
func (s *InputState) Has(i Intent) bool {
	_, ok := s.held[i]
	return ok
}

// Jumping reports whether either jump form (key or swipe) is held.
func (s *InputState) Jumping() bool {
	return s.Has(IntentJump) || s.Has(IntentSwipeUp)
}

// Len returns the number of held intents.
func (s *InputState) Len() int {
	return len(s.held)
}

// Reset releases every held intent.
func (s *InputState) Reset() {
	for k := range s.held {
		delete(s.held, k)
	}
}
