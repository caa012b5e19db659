package runner

import "github.com/vovakirdan/shadow-runner/internal/core"

// Key is a raw key as reported by a host, before intent mapping.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEnter
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "ArrowLeft"
	case KeyRight:
		return "ArrowRight"
	case KeyUp:
		return "ArrowUp"
	case KeyDown:
		return "ArrowDown"
	case KeyEnter:
		return "Enter"
	default:
		return "Unknown"
	}
}

// keyIntents maps held keys to the intent they produce.
var keyIntents = map[Key]core.Intent{
	KeyLeft:  core.IntentMoveLeft,
	KeyRight: core.IntentMoveRight,
	KeyUp:    core.IntentJump,
	KeyDown:  core.IntentDown,
}

// Restarter is the part of the game the controls can restart.
type Restarter interface {
	GameOver() bool
	Restart()
}

// Controls translates raw key and touch events into intents.
// It is the only writer of the InputState.
type Controls struct {
	input     *core.InputState
	restarter Restarter
	threshold float64 // Swipe distance in logical px
	touchY    float64 // Y where the current touch started
}

// NewControls creates a controls adapter writing to input.
func NewControls(input *core.InputState, restarter Restarter, swipeThreshold float64) *Controls {
	return &Controls{
		input:     input,
		restarter: restarter,
		threshold: swipeThreshold,
	}
}

// KeyDown handles a key press or repeat. Arrow keys set their intent;
// Enter restarts a finished run. Other keys are ignored.
func (c *Controls) KeyDown(k Key) {
	if intent, ok := keyIntents[k]; ok {
		c.input.Set(intent)
		return
	}
	if k == KeyEnter {
		c.restartIfOver()
	}
}

// KeyUp handles a key release.
func (c *Controls) KeyUp(k Key) {
	if intent, ok := keyIntents[k]; ok {
		c.input.Clear(intent)
	}
}

// TouchStart records where a gesture began. y is in logical px.
func (c *Controls) TouchStart(y float64) {
	c.touchY = y
}

// TouchMove checks the gesture against the swipe threshold. Each direction
// fires at most once until TouchEnd.
func (c *Controls) TouchMove(y float64) {
	delta := y - c.touchY
	switch {
	case delta <= -c.threshold && !c.input.Has(core.IntentSwipeUp):
		c.input.Set(core.IntentSwipeUp)
	case delta >= c.threshold && !c.input.Has(core.IntentSwipeDown):
		c.input.Set(core.IntentSwipeDown)
		c.restartIfOver()
	}
}

// TouchEnd releases both swipe intents.
func (c *Controls) TouchEnd() {
	c.input.Clear(core.IntentSwipeUp)
	c.input.Clear(core.IntentSwipeDown)
}

func (c *Controls) restartIfOver() {
	if c.restarter.GameOver() {
		c.restarter.Restart()
	}
}
