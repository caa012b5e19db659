package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/shadow-runner/internal/core"
	"github.com/vovakirdan/shadow-runner/internal/runner"
)

// keyFor maps an ebiten key to the runner's raw key.
func keyFor(k ebiten.Key) runner.Key {
	switch k {
	case ebiten.KeyArrowLeft, ebiten.KeyA:
		return runner.KeyLeft
	case ebiten.KeyArrowRight, ebiten.KeyD:
		return runner.KeyRight
	case ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace:
		return runner.KeyUp
	case ebiten.KeyArrowDown, ebiten.KeyS:
		return runner.KeyDown
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return runner.KeyEnter
	}
	return runner.KeyUnknown
}

// pointer tracks the one touch or mouse drag that acts as a swipe.
type pointer struct {
	touch    ebiten.TouchID
	touching bool
	mouse    bool
}

// inputEvents is one frame of raw input.
type inputEvents struct {
	pressed  []ebiten.Key
	released []ebiten.Key
	clicked  bool // Any new touch or left click
	clickX   int
	clickY   int
}

// poll collects this frame's key and pointer events.
// Pointer events on the fullscreen button are reported as clicks only.
func (p *pointer) poll(controls *runner.Controls, button core.Rect, ev *inputEvents) {
	ev.pressed = inpututil.AppendJustPressedKeys(ev.pressed[:0])
	ev.released = inpututil.AppendJustReleasedKeys(ev.released[:0])
	ev.clicked = false

	var touches []ebiten.TouchID
	touches = inpututil.AppendJustPressedTouchIDs(touches)
	for _, id := range touches {
		x, y := ebiten.TouchPosition(id)
		ev.clicked, ev.clickX, ev.clickY = true, x, y
		if !p.touching && !button.Contains(x, y) {
			p.touching, p.mouse, p.touch = true, false, id
			controls.TouchStart(float64(y))
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		ev.clicked, ev.clickX, ev.clickY = true, x, y
		if !p.touching && !button.Contains(x, y) {
			p.touching, p.mouse = true, true
			controls.TouchStart(float64(y))
		}
	}

	if !p.touching {
		return
	}

	if p.mouse {
		_, y := ebiten.CursorPosition()
		controls.TouchMove(float64(y))
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			p.touching = false
			controls.TouchEnd()
		}
		return
	}

	if inpututil.IsTouchJustReleased(p.touch) {
		p.touching = false
		controls.TouchEnd()
		return
	}
	_, y := ebiten.TouchPosition(p.touch)
	controls.TouchMove(float64(y))
}
