package runner

import (
	"math/rand"

	"github.com/feliform/catdash/internal/config"
	"github.com/feliform/catdash/internal/core"
)

// ObstacleType identifies one spawnable hazard or power-up.
type ObstacleType int

const (
	ObstacleStone ObstacleType = iota
	ObstacleCactus
	ObstacleBush
	ObstacleBalloon
	ObstacleBird
	ObstacleFeather
	ObstacleStar

	obstacleTypeCount
)

func (t ObstacleType) String() string {
	if t < 0 || t >= obstacleTypeCount {
		return "unknown"
	}
	return typeSpecs[t].name
}

// Behavior describes what happens when the actor overlaps an obstacle.
type Behavior int

const (
	// BehaviorFatal kills the actor on any contact.
	BehaviorFatal Behavior = iota
	// BehaviorFatalAirborne kills only when the actor is off the ground.
	BehaviorFatalAirborne
	// BehaviorFatalUnlessSliding kills unless the actor is sliding.
	BehaviorFatalUnlessSliding
	// BehaviorGrantJump is collected on contact and stores a mid-air jump.
	BehaviorGrantJump
	// BehaviorGrantShot is collected on contact and stores a projectile shot.
	BehaviorGrantShot
)

// typeSpec is the static definition of one obstacle type. Lift is the gap
// between the ground and the obstacle's bottom edge; zero means it sits on
// the ground.
type typeSpec struct {
	name               string
	width, height      float64
	liftMin, liftMax   float64
	scaleMin, scaleMax float64
	weight             int
	behavior           Behavior
	bonus              bool // counts toward the combo chain
}

var typeSpecs = [obstacleTypeCount]typeSpec{
	ObstacleStone:   {name: "stone", width: 52, height: 52, scaleMin: 0.9, scaleMax: 1.3, weight: 25, behavior: BehaviorFatal},
	ObstacleCactus:  {name: "cactus", width: 40, height: 80, scaleMin: 0.9, scaleMax: 1.3, weight: 25, behavior: BehaviorFatal},
	ObstacleBush:    {name: "bush", width: 66, height: 42, scaleMin: 0.9, scaleMax: 1.3, weight: 20, behavior: BehaviorFatal},
	ObstacleBalloon: {name: "balloon", width: 48, height: 84, liftMin: 90, liftMax: 150, scaleMin: 0.9, scaleMax: 1.3, weight: 12, behavior: BehaviorFatalAirborne, bonus: true},
	ObstacleBird:    {name: "bird", width: 50, height: 36, liftMin: 12, liftMax: 60, scaleMin: 0.9, scaleMax: 1.2, weight: 8, behavior: BehaviorFatalUnlessSliding, bonus: true},
	ObstacleFeather: {name: "feather", width: 30, height: 30, liftMin: 160, liftMax: 230, scaleMin: 1, scaleMax: 1, weight: 5, behavior: BehaviorGrantJump},
	ObstacleStar:    {name: "star", width: 32, height: 32, liftMin: 100, liftMax: 170, scaleMin: 1, scaleMax: 1, weight: 5, behavior: BehaviorGrantShot},
}

// specFor returns the spec for t, falling back to stone for out-of-range
// values so a corrupt type never panics mid-run.
func specFor(t ObstacleType) typeSpec {
	if t < 0 || t >= obstacleTypeCount {
		return typeSpecs[ObstacleStone]
	}
	return typeSpecs[t]
}

// PowerUp reports whether the type grants a charge instead of threatening.
func (t ObstacleType) PowerUp() bool {
	b := specFor(t).behavior
	return b == BehaviorGrantJump || b == BehaviorGrantShot
}

// Power-up palette cycling.
const (
	paletteSize       = 5
	paletteCycleTicks = 8
)

// Obstacle is one live spawned entity scrolling left across the world.
type Obstacle struct {
	Type  ObstacleType
	X, Y  float64 // top-left corner
	W, H  float64
	Speed float64

	// Scored guards against awarding pass points twice.
	Scored bool
	// PaletteIndex rotates for power-ups to make them shimmer.
	PaletteIndex int

	paletteTimer int
	destroyed    bool
}

// Rect returns the obstacle's collision rectangle.
func (o *Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

func (o *Obstacle) update() {
	o.X -= o.Speed
	if o.Type.PowerUp() {
		o.paletteTimer++
		if o.paletteTimer >= paletteCycleTicks {
			o.paletteTimer = 0
			o.PaletteIndex = (o.PaletteIndex + 1) % paletteSize
		}
	}
}

// Spawner emits obstacles on a difficulty-scaled timer with weighted random
// type selection and a short anti-repeat history. It owns the live obstacle
// list and its own RNG.
type Spawner struct {
	cfg  *config.Config
	diff *config.Difficulty
	rng  *rand.Rand

	obstacles []*Obstacle

	// history is a bounded ring of the most recent spawn types.
	history []ObstacleType
	histPos int

	lastSpawnMS float64
}

// NewSpawner creates a spawner with a deterministic RNG.
func NewSpawner(seed int64, cfg *config.Config, diff *config.Difficulty) *Spawner {
	return &Spawner{
		cfg:     cfg,
		diff:    diff,
		rng:     rand.New(rand.NewSource(seed)),
		history: make([]ObstacleType, 0, cfg.Spawn.HistorySize),
	}
}

// Reset clears all obstacles and history and reseeds the RNG for a new run.
func (s *Spawner) Reset(seed int64) {
	s.obstacles = s.obstacles[:0]
	s.history = s.history[:0]
	s.histPos = 0
	s.lastSpawnMS = 0
	s.rng = rand.New(rand.NewSource(seed))
}

// ResetPattern reseeds the RNG and forgets the anti-repeat history without
// touching live obstacles. The spawn timer restarts from nowMS, so theme
// swaps cannot be milked for extra spawn gaps.
func (s *Spawner) ResetPattern(seed int64, nowMS float64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.history = s.history[:0]
	s.histPos = 0
	s.lastSpawnMS = nowMS
}

// TrySpawn emits a new obstacle if the difficulty-scaled interval has
// elapsed since the last spawn. Returns the new obstacle or nil.
func (s *Spawner) TrySpawn(nowMS float64, score int) *Obstacle {
	if nowMS-s.lastSpawnMS < s.diff.IntervalForScore(score) {
		return nil
	}
	s.lastSpawnMS = nowMS

	t := s.pickType()
	spec := specFor(t)
	scale := spec.scaleMin
	if spec.scaleMax > spec.scaleMin {
		scale += s.rng.Float64() * (spec.scaleMax - spec.scaleMin)
	}
	w := spec.width * scale
	h := spec.height * scale

	lift := 0.0
	if spec.liftMax > 0 {
		lift = spec.liftMin + s.rng.Float64()*(spec.liftMax-spec.liftMin)
	}

	jitter := s.cfg.Spawn.SpeedJitter
	speed := s.diff.SpeedForScore(score) + (s.rng.Float64()*2-1)*jitter

	o := &Obstacle{
		Type:  t,
		X:     s.cfg.World.Width,
		Y:     s.cfg.World.GroundLevel - lift - h,
		W:     w,
		H:     h,
		Speed: speed,
	}
	s.obstacles = append(s.obstacles, o)
	s.pushHistory(t)
	return o
}

// pickType selects a type by weighted random draw. Types present in the
// recent-spawn history have their weight halved (floored at 1) so the same
// obstacle is less likely to appear back to back.
func (s *Spawner) pickType() ObstacleType {
	total := 0
	var weights [obstacleTypeCount]int
	for t := ObstacleType(0); t < obstacleTypeCount; t++ {
		w := typeSpecs[t].weight
		if s.inHistory(t) {
			w /= 2
			if w < 1 {
				w = 1
			}
		}
		weights[t] = w
		total += w
	}
	roll := s.rng.Intn(total)
	for t := ObstacleType(0); t < obstacleTypeCount; t++ {
		roll -= weights[t]
		if roll < 0 {
			return t
		}
	}
	return ObstacleStone
}

func (s *Spawner) inHistory(t ObstacleType) bool {
	for _, h := range s.history {
		if h == t {
			return true
		}
	}
	return false
}

func (s *Spawner) pushHistory(t ObstacleType) {
	size := s.cfg.Spawn.HistorySize
	if size <= 0 {
		return
	}
	if len(s.history) < size {
		s.history = append(s.history, t)
		s.histPos = len(s.history) % size
		return
	}
	s.history[s.histPos] = t
	s.histPos = (s.histPos + 1) % size
}

// Update moves every obstacle and drops destroyed or off-screen ones.
func (s *Spawner) Update() {
	alive := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.destroyed {
			continue
		}
		o.update()
		if o.X+o.W < 0 {
			continue
		}
		alive = append(alive, o)
	}
	s.obstacles = alive
}

// RemoveDestroyed drops obstacles consumed during collision resolution
// (collected power-ups, shot obstacles) in the same tick, so they never
// linger into a render.
func (s *Spawner) RemoveDestroyed() {
	alive := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.destroyed {
			continue
		}
		alive = append(alive, o)
	}
	s.obstacles = alive
}

// Obstacles returns the live obstacle list.
func (s *Spawner) Obstacles() []*Obstacle {
	return s.obstacles
}
