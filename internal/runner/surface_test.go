package runner

import (
	"testing"

	"github.com/vovakirdan/shadow-runner/internal/core"
)

func TestDrawListClearStartsOver(t *testing.T) {
	var list DrawList
	list.DrawText(Text{Value: "stale"})
	list.Clear()
	list.DrawSprite(SheetBackground, core.NewRectF(0, 0, 1, 1), core.NewRectF(0, 0, 1, 1))

	ops := list.Ops()
	if len(ops) != 2 {
		t.Fatalf("len(ops) = %d, want 2", len(ops))
	}
	if ops[0].IsSprite() || ops[0].IsText() {
		t.Errorf("first op should be the clear")
	}
	if !ops[1].IsSprite() {
		t.Errorf("second op should be a sprite")
	}
}

func TestDrawListReplay(t *testing.T) {
	var src DrawList
	src.Clear()
	src.DrawSprite(SheetObstacle, core.NewRectF(160, 0, 160, 119), core.NewRectF(640, 601, 160, 119))
	src.DrawText(Text{Value: "Score: 3", X: 20, Y: 50})

	var dst DrawList
	dst.DrawText(Text{Value: "dropped by replayed clear"})
	src.Replay(&dst)

	got, want := dst.Ops(), src.Ops()
	if len(got) != len(want) {
		t.Fatalf("replayed %d ops, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("op %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSheetIDString(t *testing.T) {
	tests := map[SheetID]string{
		SheetBackground: "background",
		SheetPlayer:     "player",
		SheetObstacle:   "obstacle",
		SheetID(99):     "unknown",
	}
	for id, want := range tests {
		if got := id.String(); got != want {
			t.Errorf("SheetID(%d).String() = %q, want %q", int(id), got, want)
		}
	}
}
