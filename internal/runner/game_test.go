package runner

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/shadow-runner/internal/config"
	"github.com/vovakirdan/shadow-runner/internal/core"
)

// harmlessConfig shrinks the hitboxes so no collision can happen.
func harmlessConfig() config.RunnerConfig {
	cfg := testConfig()
	cfg.Hitbox.RadiusDivisor = 1e9
	return cfg
}

func TestNewGame(t *testing.T) {
	g := New(testConfig(), testRuntime())

	if st := g.State(); st.Score != 0 || st.GameOver {
		t.Errorf("State() = %+v, want zero", st)
	}
	if p := g.Player(); p.X != 0 || !p.OnGround() {
		t.Errorf("player at (%v, %v)", p.X, p.Y)
	}
	if len(g.Obstacles()) != 0 {
		t.Error("new game should have no obstacles")
	}
}

func TestTickDrawOrder(t *testing.T) {
	g := New(testConfig(), testRuntime(), WithRandom(fixedRandom(0.5)))
	var list DrawList

	if sig := g.Tick(0, &list); sig != core.Continue {
		t.Fatalf("Tick() = %v, want Continue", sig)
	}

	ops := list.Ops()
	if len(ops) != 6 {
		t.Fatalf("recorded %d ops, want 6", len(ops))
	}
	if ops[0].IsSprite() || ops[0].IsText() {
		t.Error("frame should start with a clear")
	}
	if ops[1].Sheet != SheetBackground || ops[2].Sheet != SheetBackground {
		t.Error("background should be drawn first")
	}
	if !ops[3].IsSprite() || ops[3].Sheet != SheetPlayer {
		t.Error("player should be drawn after the background")
	}
	if !ops[4].IsText() || !ops[5].IsText() {
		t.Error("status should be drawn last")
	}

	// Draw happens before update.
	if ops[1].Dst.X != 0 || g.Background().X != -20 {
		t.Errorf("background drawn at %v, now at %v", ops[1].Dst.X, g.Background().X)
	}
}

func TestTickSpawnsObstacle(t *testing.T) {
	g := New(testConfig(), testRuntime(), WithRandom(fixedRandom(0.5)))
	var list DrawList

	g.Tick(0, &list)
	g.Tick(2100, &list)
	if len(g.Obstacles()) != 0 {
		t.Fatal("no spawn before the timer passes the interval")
	}

	g.Tick(2116, &list)
	if len(g.Obstacles()) != 1 {
		t.Fatalf("len(Obstacles()) = %d, want 1", len(g.Obstacles()))
	}
	if x := g.Obstacles()[0].X; x != 632 {
		t.Errorf("obstacle X = %v, want 632", x)
	}

	var obstacles int
	for _, op := range list.Ops() {
		if op.Sheet == SheetObstacle && op.IsSprite() {
			obstacles++
		}
	}
	if obstacles != 1 {
		t.Errorf("obstacle drawn %d times, want 1", obstacles)
	}
}

func TestTickHaltsOnCollision(t *testing.T) {
	cfg := testConfig()
	g := New(cfg, testRuntime(), WithRandom(fixedRandom(0.5)))
	g.Tick(0, Discard)

	// Moves to 162 during the tick, inside the player's hitbox.
	g.state.Obstacles = append(g.state.Obstacles, newObstacleAt(cfg, 170))

	var list DrawList
	if sig := g.Tick(16, &list); sig != core.Halt {
		t.Fatalf("Tick() = %v, want Halt", sig)
	}
	if !g.GameOver() {
		t.Fatal("GameOver() = false after collision")
	}

	// The banner is drawn on the same frame.
	var banner bool
	for _, op := range list.Ops() {
		if op.IsText() && op.Text.Value == "GAME OVER" {
			banner = true
		}
	}
	if !banner {
		t.Error("game-over banner not drawn")
	}

	bgX := g.Background().X
	timer := g.spawner.Timer()
	obstacleX := g.Obstacles()[0].X

	list = DrawList{}
	if sig := g.Tick(5000, &list); sig != core.Halt {
		t.Fatalf("Tick() after game over = %v, want Halt", sig)
	}
	if g.Background().X != bgX || g.spawner.Timer() != timer || g.Obstacles()[0].X != obstacleX {
		t.Error("world advanced after game over")
	}
	if len(g.Obstacles()) != 1 {
		t.Errorf("len(Obstacles()) = %d, want 1", len(g.Obstacles()))
	}
	if len(list.Ops()) != 0 {
		t.Error("a halted tick should not draw")
	}
}

func TestRestartThroughControls(t *testing.T) {
	cfg := testConfig()
	g := New(cfg, testRuntime(), WithRandom(fixedRandom(0.5)))
	g.Controls().KeyDown(KeyRight)
	for now := 0.0; now < 3000; now += 16 {
		g.Tick(now, Discard)
	}
	g.Controls().KeyUp(KeyRight)

	g.state.Obstacles = append(g.state.Obstacles, newObstacleAt(cfg, g.Player().X+70))
	g.Tick(3000, Discard)
	if !g.GameOver() {
		t.Fatal("expected game over")
	}

	g.Controls().KeyDown(KeyEnter)
	assertFreshRun(t, g)

	// Restarting again changes nothing.
	g.Restart()
	assertFreshRun(t, g)

	if sig := g.Tick(0, Discard); sig != core.Continue {
		t.Errorf("Tick(0) after restart = %v, want Continue", sig)
	}
	if g.Player().Anim.Timer != 0 {
		t.Errorf("first tick after restart should have zero delta, anim timer %v", g.Player().Anim.Timer)
	}
}

func assertFreshRun(t *testing.T, g *Game) {
	t.Helper()

	if st := g.State(); st.Score != 0 || st.GameOver {
		t.Errorf("State() = %+v, want zero", st)
	}
	if len(g.Obstacles()) != 0 {
		t.Errorf("len(Obstacles()) = %d, want 0", len(g.Obstacles()))
	}
	p := g.Player()
	if p.X != 100 || p.Y != 520 || p.VY != 0 {
		t.Errorf("player = (%v, %v) vy %v, want (100, 520) vy 0", p.X, p.Y, p.VY)
	}
	if g.Background().X != 0 {
		t.Errorf("background X = %v, want 0", g.Background().X)
	}
	if g.spawner.Timer() != 0 {
		t.Errorf("spawn timer = %v, want 0", g.spawner.Timer())
	}
	if g.lastTime != 0 {
		t.Errorf("lastTime = %v, want 0", g.lastTime)
	}
}

func TestScoreCountsRetiredObstacles(t *testing.T) {
	g := New(harmlessConfig(), testRuntime())
	r := rand.New(rand.NewSource(3))
	keys := []Key{KeyLeft, KeyRight, KeyUp}

	prevScore := 0
	for i := 1; i <= 4000; i++ {
		for _, k := range keys {
			if r.Intn(4) == 0 {
				g.Controls().KeyDown(k)
			} else {
				g.Controls().KeyUp(k)
			}
		}

		before := make(map[*Obstacle]bool, len(g.Obstacles()))
		for _, o := range g.Obstacles() {
			before[o] = true
		}

		if sig := g.Tick(float64(i*16), Discard); sig != core.Continue {
			t.Fatalf("tick %d: harmless run halted", i)
		}

		for _, o := range g.Obstacles() {
			delete(before, o)
			if o.Retired || o.X < -o.Width {
				t.Fatalf("tick %d: retired obstacle still live at %v", i, o.X)
			}
		}

		score := g.State().Score
		if score-prevScore != len(before) {
			t.Fatalf("tick %d: score rose by %d, %d obstacles retired", i, score-prevScore, len(before))
		}
		prevScore = score

		p := g.Player()
		if p.X < 0 || p.X > 600 || p.Y > 520 {
			t.Fatalf("tick %d: player out of bounds at (%v, %v)", i, p.X, p.Y)
		}
	}

	if prevScore == 0 {
		t.Error("expected some obstacles to pass in 64 s")
	}
}

func TestSameSeedSameRun(t *testing.T) {
	run := func() (int, []float64) {
		g := New(harmlessConfig(), testRuntime())
		for i := 0; i < 2000; i++ {
			g.Tick(float64(i*16), Discard)
		}
		var xs []float64
		for _, o := range g.Obstacles() {
			xs = append(xs, o.X)
		}
		return g.State().Score, xs
	}

	score1, xs1 := run()
	score2, xs2 := run()
	if score1 != score2 || len(xs1) != len(xs2) {
		t.Fatalf("runs differ: score %d vs %d, %d vs %d obstacles", score1, score2, len(xs1), len(xs2))
	}
	for i := range xs1 {
		if xs1[i] != xs2[i] {
			t.Errorf("obstacle %d at %v vs %v", i, xs1[i], xs2[i])
		}
	}
}
