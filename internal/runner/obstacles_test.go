package runner

import (
	"testing"

	"github.com/feliform/catdash/internal/config"
)

func newTestSpawner(seed int64) (*Spawner, *config.Config) {
	cfg := config.DefaultConfig()
	return NewSpawner(seed, &cfg, config.NewDifficulty(&cfg)), &cfg
}

func TestSpawnIntervalGating(t *testing.T) {
	s, cfg := newTestSpawner(7)
	interval := float64(cfg.Spawn.BaseIntervalMS)

	if o := s.TrySpawn(interval-1, 0); o != nil {
		t.Fatal("spawned before the interval elapsed")
	}
	if o := s.TrySpawn(interval, 0); o == nil {
		t.Fatal("did not spawn once the interval elapsed")
	}
	if o := s.TrySpawn(interval+1, 0); o != nil {
		t.Fatal("spawned again immediately after a spawn")
	}
	if o := s.TrySpawn(interval*2, 0); o == nil {
		t.Fatal("did not spawn after a full second interval")
	}
}

func TestSpawnGeometryAndSpeed(t *testing.T) {
	s, cfg := newTestSpawner(11)
	base := cfg.Difficulty.BaseSpeed
	jitter := cfg.Spawn.SpeedJitter

	now := 0.0
	for i := 0; i < 200; i++ {
		now += float64(cfg.Spawn.BaseIntervalMS)
		o := s.TrySpawn(now, 0)
		if o == nil {
			t.Fatalf("spawn %d failed", i)
		}

		if o.X != cfg.World.Width {
			t.Errorf("%s spawned at X = %v, want %v", o.Type, o.X, cfg.World.Width)
		}
		bottom := o.Y + o.H
		if bottom > cfg.World.GroundLevel+1e-9 {
			t.Errorf("%s bottom %v sinks below ground %v", o.Type, bottom, cfg.World.GroundLevel)
		}

		spec := specFor(o.Type)
		lift := cfg.World.GroundLevel - bottom
		if spec.liftMax == 0 && lift > 1e-9 {
			t.Errorf("ground type %s floating %v above ground", o.Type, lift)
		}
		if spec.liftMax > 0 && (lift < spec.liftMin-1e-9 || lift > spec.liftMax+1e-9) {
			t.Errorf("%s lift %v outside band [%v, %v]", o.Type, lift, spec.liftMin, spec.liftMax)
		}

		wantW, wantH := spec.width, spec.height
		if o.W < wantW*spec.scaleMin-1e-9 || o.W > wantW*spec.scaleMax+1e-9 {
			t.Errorf("%s width %v outside scale range", o.Type, o.W)
		}
		if o.H < wantH*spec.scaleMin-1e-9 || o.H > wantH*spec.scaleMax+1e-9 {
			t.Errorf("%s height %v outside scale range", o.Type, o.H)
		}

		if o.Speed < base-jitter-1e-9 || o.Speed > base+jitter+1e-9 {
			t.Errorf("%s speed %v outside jitter band around %v", o.Type, o.Speed, base)
		}
		// Drain so the list does not grow unbounded.
		s.obstacles = s.obstacles[:0]
	}
}

func TestAntiRepeatReducesImmediateRepeats(t *testing.T) {
	const draws = 3000

	repeats := func(historySize int, seed int64) int {
		cfg := config.DefaultConfig()
		cfg.Spawn.HistorySize = historySize
		s := NewSpawner(seed, &cfg, config.NewDifficulty(&cfg))

		count := 0
		prev := ObstacleType(-1)
		for i := 0; i < draws; i++ {
			tp := s.pickType()
			s.pushHistory(tp)
			if tp == prev {
				count++
			}
			prev = tp
		}
		return count
	}

	with := repeats(3, 42)
	without := repeats(0, 42)
	if with >= without {
		t.Errorf("anti-repeat ineffective: %d repeats with history vs %d without", with, without)
	}
}

func TestHistoryRingStaysBounded(t *testing.T) {
	s, cfg := newTestSpawner(5)

	for i := 0; i < 50; i++ {
		s.pushHistory(ObstacleType(i % int(obstacleTypeCount)))
		if len(s.history) > cfg.Spawn.HistorySize {
			t.Fatalf("history grew to %d, cap is %d", len(s.history), cfg.Spawn.HistorySize)
		}
	}
	if len(s.history) != cfg.Spawn.HistorySize {
		t.Errorf("history length = %d, want %d", len(s.history), cfg.Spawn.HistorySize)
	}
}

func TestResetPatternClearsHistoryAndRestartsTimer(t *testing.T) {
	s, cfg := newTestSpawner(9)

	interval := float64(cfg.Spawn.BaseIntervalMS)
	if o := s.TrySpawn(interval, 0); o == nil {
		t.Fatal("initial spawn failed")
	}

	now := interval + 100
	s.ResetPattern(99, now)

	if len(s.history) != 0 {
		t.Errorf("history survived ResetPattern: %v", s.history)
	}
	if o := s.TrySpawn(now+interval-1, 0); o != nil {
		t.Error("spawn timer was not restarted from the reset point")
	}
	if o := s.TrySpawn(now+interval, 0); o == nil {
		t.Error("no spawn a full interval after the reset point")
	}
}

func TestSameSeedSameSpawnSequence(t *testing.T) {
	a, cfg := newTestSpawner(1234)
	b, _ := newTestSpawner(1234)

	now := 0.0
	for i := 0; i < 50; i++ {
		now += float64(cfg.Spawn.BaseIntervalMS)
		oa := a.TrySpawn(now, 0)
		ob := b.TrySpawn(now, 0)
		if oa == nil || ob == nil {
			t.Fatalf("spawn %d failed", i)
		}
		if oa.Type != ob.Type || oa.Y != ob.Y || oa.W != ob.W || oa.Speed != ob.Speed {
			t.Fatalf("spawn %d diverged: %+v vs %+v", i, *oa, *ob)
		}
	}
}

func TestObstaclesScrollLeftAndRetire(t *testing.T) {
	s, cfg := newTestSpawner(3)
	o := s.TrySpawn(float64(cfg.Spawn.BaseIntervalMS), 0)
	if o == nil {
		t.Fatal("spawn failed")
	}

	x := o.X
	s.Update()
	if o.X != x-o.Speed {
		t.Errorf("obstacle moved to %v, want %v", o.X, x-o.Speed)
	}

	o.X = -o.W - 1
	s.Update()
	if len(s.Obstacles()) != 0 {
		t.Error("off-screen obstacle was not retired")
	}
}

func TestPowerUpPaletteCycles(t *testing.T) {
	o := &Obstacle{Type: ObstacleStar}

	for i := 0; i < paletteCycleTicks; i++ {
		o.update()
	}
	if o.PaletteIndex != 1 {
		t.Errorf("palette index = %d after one cycle period, want 1", o.PaletteIndex)
	}

	for i := 0; i < paletteCycleTicks*(paletteSize-1); i++ {
		o.update()
	}
	if o.PaletteIndex != 0 {
		t.Errorf("palette index = %d after a full rotation, want 0", o.PaletteIndex)
	}
}

func TestUnknownTypeFallsBackToDefaultSpec(t *testing.T) {
	spec := specFor(ObstacleType(99))
	if spec.name != "stone" {
		t.Errorf("fallback spec = %q, want stone", spec.name)
	}
}
