package runner

import (
	"errors"
	"testing"
)

type fakeFullscreen struct {
	active bool
	err    error
	exits  int
}

func (f *fakeFullscreen) Active() bool { return f.active }

func (f *fakeFullscreen) Enter() error {
	if f.err != nil {
		return f.err
	}
	f.active = true
	return nil
}

func (f *fakeFullscreen) Exit() {
	f.exits++
	f.active = false
}

func TestToggleFullscreen(t *testing.T) {
	fs := &fakeFullscreen{}
	var alerts []string
	alert := func(msg string) { alerts = append(alerts, msg) }

	ToggleFullscreen(fs, alert)
	if !fs.active {
		t.Fatal("first toggle should enter fullscreen")
	}

	ToggleFullscreen(fs, alert)
	if fs.active || fs.exits != 1 {
		t.Fatalf("second toggle should exit: active=%v exits=%d", fs.active, fs.exits)
	}
	if len(alerts) != 0 {
		t.Errorf("unexpected alerts %v", alerts)
	}
}

func TestToggleFullscreenRejected(t *testing.T) {
	fs := &fakeFullscreen{err: errors.New("terminal too small")}
	var alerts []string

	ToggleFullscreen(fs, func(msg string) { alerts = append(alerts, msg) })

	if fs.active {
		t.Error("rejected request should leave fullscreen off")
	}
	if len(alerts) != 1 {
		t.Fatalf("alerts = %v, want one", alerts)
	}
	want := "Error, can't enable fullscreen mode: \nterminal too small"
	if alerts[0] != want {
		t.Errorf("alert = %q, want %q", alerts[0], want)
	}
}
