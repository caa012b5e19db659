package runner

import (
	"fmt"

	"github.com/vovakirdan/shadow-runner/internal/core"
)

// Overlay text layout, in logical px.
const (
	outlineOffset  = 2
	scoreX         = 20
	scoreY         = 50
	titleY         = 200
	promptY        = 250
	titleFontSize  = 40
	promptFontSize = 30
	gameOverTitle  = "GAME OVER"
	gameOverPrompt = "PRESS ENTER / SWIPE DOWN TO RESTART"
)

// DrawStatus renders the score and, once the run is over, the game-over
// banner. Each line is drawn in black, then again in white shifted by two
// pixels, which gives the text an outline.
func DrawStatus(dst Surface, st core.GameState, worldW float64) {
	outlined(dst, Text{
		Value: fmt.Sprintf("Score: %d", st.Score),
		X:     scoreX,
		Y:     scoreY,
		Size:  titleFontSize,
		Align: AlignLeft,
	})

	if !st.GameOver {
		return
	}

	outlined(dst, Text{
		Value: gameOverTitle,
		X:     worldW / 2,
		Y:     titleY,
		Size:  titleFontSize,
		Align: AlignCenter,
	})
	outlined(dst, Text{
		Value: gameOverPrompt,
		X:     worldW / 2,
		Y:     promptY,
		Size:  promptFontSize,
		Align: AlignCenter,
	})
}

func outlined(dst Surface, t Text) {
	t.Color = core.ColorBlack
	dst.DrawText(t)

	t.Color = core.ColorWhite
	t.X += outlineOffset
	t.Y += outlineOffset
	dst.DrawText(t)
}
