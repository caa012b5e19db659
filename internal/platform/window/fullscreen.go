package window

import (
	"fmt"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
)

// windowFullscreen toggles the ebiten window's fullscreen mode.
type windowFullscreen struct {
	goos string
}

// fullscreenSupported reports whether ebiten can switch to fullscreen on goos.
func fullscreenSupported(goos string) bool {
	switch goos {
	case "android", "ios", "js":
		return false
	}
	return true
}

// Active reports whether the window is fullscreen.
func (f windowFullscreen) Active() bool {
	return ebiten.IsFullscreen()
}

// Enter switches the window to fullscreen.
func (f windowFullscreen) Enter() error {
	if !fullscreenSupported(f.goos) {
		return fmt.Errorf("fullscreen is not supported on %s", f.goos)
	}
	ebiten.SetFullscreen(true)
	return nil
}

// Exit leaves fullscreen.
func (f windowFullscreen) Exit() {
	ebiten.SetFullscreen(false)
}

func newWindowFullscreen() windowFullscreen {
	return windowFullscreen{goos: runtime.GOOS}
}
