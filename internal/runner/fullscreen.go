package runner

import "fmt"

// Fullscreen is the host's fullscreen capability.
type Fullscreen interface {
	Active() bool
	Enter() error
	Exit()
}

// ToggleFullscreen leaves fullscreen when active, otherwise requests it.
// A rejected request is reported through alert with the reason; the game
// is not affected.
func ToggleFullscreen(fs Fullscreen, alert func(msg string)) {
	if fs.Active() {
		fs.Exit()
		return
	}
	if err := fs.Enter(); err != nil {
		alert(fmt.Sprintf("Error, can't enable fullscreen mode: \n%s", err.Error()))
	}
}
