package runner

import (
	"testing"
)

func TestObstacleRetiresPastLeftEdge(t *testing.T) {
	cfg := testConfig()

	o := newObstacleAt(cfg, -152)
	if o.Update(16) {
		t.Fatalf("obstacle at x=%v should not retire", o.X)
	}
	if o.X != -160 {
		t.Fatalf("X = %v, want -160", o.X)
	}

	o = newObstacleAt(cfg, -153)
	if !o.Update(16) {
		t.Fatalf("obstacle at x=%v should retire", o.X)
	}
	if !o.Retired {
		t.Error("Retired flag not set")
	}
	if o.Update(16) {
		t.Error("a retired obstacle retires only once")
	}
}

func TestSpawnerPlacesAtRightEdge(t *testing.T) {
	s := NewSpawner(testConfig(), fixedRandom(0.5), nil)
	var st State

	s.timer = 2001
	if !s.spawnDue(16, &st) {
		t.Fatal("spawn expected once the timer passed the interval")
	}
	if len(st.Obstacles) != 1 {
		t.Fatalf("len(Obstacles) = %d, want 1", len(st.Obstacles))
	}
	o := st.Obstacles[0]
	if o.X != 640 || o.Y != 601 {
		t.Errorf("spawn position = (%v, %v), want (640, 601)", o.X, o.Y)
	}
	if o.Width != 160 || o.Height != 119 || o.Speed != 8 {
		t.Errorf("spawn size %vx%v speed %v", o.Width, o.Height, o.Speed)
	}
	if s.Timer() != 0 {
		t.Errorf("Timer() = %v after spawn, want 0", s.Timer())
	}
}

func TestSpawnerIntervalIsStrict(t *testing.T) {
	s := NewSpawner(testConfig(), fixedRandom(0.5), nil)
	var st State

	s.timer = 2000
	if s.spawnDue(16, &st) {
		t.Fatal("timer equal to the interval should not spawn")
	}
	if s.Timer() != 2016 {
		t.Errorf("Timer() = %v, want 2016", s.Timer())
	}
}

func TestSpawnerRedrawsIntervalEveryTick(t *testing.T) {
	rng := &sequenceRandom{samples: []float64{0.9, 0.1}}
	s := NewSpawner(testConfig(), rng, nil)
	var st State

	// 2000 ms is below the first draw (2400) but above the second (1600).
	s.timer = 2000
	if s.spawnDue(0, &st) {
		t.Fatal("first tick should not spawn")
	}
	if !s.spawnDue(0, &st) {
		t.Fatal("second tick should spawn with a fresh interval")
	}
}

func TestSpawnerSpawnsAfterLongGap(t *testing.T) {
	s := NewSpawner(testConfig(), fixedRandom(0.999), nil)
	var st State

	s.Tick(2600, &st, Discard)
	if len(st.Obstacles) != 0 {
		t.Fatal("the gap is only counted after the tick")
	}

	s.Tick(16, &st, Discard)
	if len(st.Obstacles) != 1 {
		t.Fatalf("len(Obstacles) = %d, want 1", len(st.Obstacles))
	}
	// Spawned and moved within the same tick.
	if x := st.Obstacles[0].X; x != 632 {
		t.Errorf("X = %v, want 632", x)
	}
}

func TestSpawnerTickScoresAndSweeps(t *testing.T) {
	cfg := testConfig()
	s := NewSpawner(cfg, fixedRandom(0.5), nil)
	gone := newObstacleAt(cfg, -153)
	stays := newObstacleAt(cfg, 300)
	st := State{Obstacles: []*Obstacle{gone, stays}}

	var list DrawList
	s.Tick(16, &st, &list)

	if st.Score != 1 {
		t.Errorf("Score = %d, want 1", st.Score)
	}
	if len(st.Obstacles) != 1 || st.Obstacles[0] != stays {
		t.Fatalf("Obstacles = %v, want only the on-screen one", st.Obstacles)
	}

	// Both are drawn at their pre-update position.
	ops := list.Ops()
	if len(ops) != 2 {
		t.Fatalf("recorded %d ops, want 2", len(ops))
	}
	if ops[0].Dst.X != -153 || ops[1].Dst.X != 300 {
		t.Errorf("drawn at %v and %v, want -153 and 300", ops[0].Dst.X, ops[1].Dst.X)
	}
}

func TestSpawnerReset(t *testing.T) {
	s := NewSpawner(testConfig(), fixedRandom(0.5), nil)
	s.Tick(500, &State{}, Discard)
	s.Tick(500, &State{}, Discard)
	if s.Timer() != 1000 {
		t.Fatalf("Timer() = %v, want 1000", s.Timer())
	}

	s.Reset()
	if s.Timer() != 0 {
		t.Errorf("Timer() = %v after Reset, want 0", s.Timer())
	}
}
