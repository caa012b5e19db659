package runner

import "github.com/vovakirdan/shadow-runner/internal/core"

// SheetID names a sprite sheet. Hosts own the actual images.
type SheetID int

const (
	SheetBackground SheetID = iota
	SheetPlayer
	SheetObstacle
)

// String returns the sheet name.
func (s SheetID) String() string {
	switch s {
	case SheetBackground:
		return "background"
	case SheetPlayer:
		return "player"
	case SheetObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Align controls horizontal text anchoring.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Text is a single line of overlay text. Y is the baseline in logical px.
type Text struct {
	Value string
	X, Y  float64
	Size  float64 // Font size in logical px
	Align Align
	Color core.Color
}

// Surface is the rendering contract the game draws through.
type Surface interface {
	// Clear erases the whole surface.
	Clear()

	// DrawSprite blits the src frame of a sheet into dst.
	DrawSprite(sheet SheetID, src, dst core.RectF)

	// DrawText renders one line of text.
	DrawText(t Text)
}

// Drawable is implemented by everything visible on the surface.
type Drawable interface {
	Draw(dst Surface)
}

// Discard is a Surface that draws nothing.
var Discard Surface = discard{}

type discard struct{}

func (discard) Clear()                                     {}
func (discard) DrawSprite(SheetID, core.RectF, core.RectF) {}
func (discard) DrawText(Text)                              {}

// opKind identifies a recorded draw call.
type opKind int

const (
	opClear opKind = iota
	opSprite
	opText
)

// DrawOp is one recorded draw call.
type DrawOp struct {
	kind  opKind
	Sheet SheetID
	Src   core.RectF
	Dst   core.RectF
	Text  Text
}

// IsSprite reports whether the op is a sprite blit.
func (op DrawOp) IsSprite() bool { return op.kind == opSprite }

// IsText reports whether the op is a text draw.
func (op DrawOp) IsText() bool { return op.kind == opText }

// DrawList records draw calls so a host can replay them later.
// Hosts whose render pass is separate from their update pass
// tick the game into a DrawList and replay it when the frame is drawn.
type DrawList struct {
	ops []DrawOp
}

// Clear drops everything recorded so far and records the clear.
func (l *DrawList) Clear() {
	l.ops = append(l.ops[:0], DrawOp{kind: opClear})
}

// DrawSprite records a sprite blit.
func (l *DrawList) DrawSprite(sheet SheetID, src, dst core.RectF) {
	l.ops = append(l.ops, DrawOp{kind: opSprite, Sheet: sheet, Src: src, Dst: dst})
}

// DrawText records a text draw.
func (l *DrawList) DrawText(t Text) {
	l.ops = append(l.ops, DrawOp{kind: opText, Text: t})
}

// Ops returns the recorded calls.
func (l *DrawList) Ops() []DrawOp {
	return l.ops
}

// Replay issues every recorded call against dst in order.
func (l *DrawList) Replay(dst Surface) {
	for _, op := range l.ops {
		switch op.kind {
		case opClear:
			dst.Clear()
		case opSprite:
			dst.DrawSprite(op.Sheet, op.Src, op.Dst)
		case opText:
			dst.DrawText(op.Text)
		}
	}
}
