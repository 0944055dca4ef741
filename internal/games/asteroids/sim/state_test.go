package sim

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func newTestSim(seed int64) *Simulation {
	return New(config.DefaultAsteroidsConfig(), NewRand(seed))
}

// still returns a stationary, unspinning asteroid at pos.
func still(sim *Simulation, size Size, pos core.Vec2) Asteroid {
	a := NewAsteroid(sim.rng, sim.cfg, size, &pos)
	a.Vel = core.Vec2{}
	a.RotationSpeed = 0
	return a
}

// playing returns a playing state with the ship parked at shipPos facing up.
func playing(sim *Simulation, shipPos core.Vec2, asteroids ...Asteroid) State {
	st := sim.Start()
	st.Ship.Pos = shipPos
	st.Asteroids = asteroids
	return st
}

func TestMenuTickIsNoop(t *testing.T) {
	sim := newTestSim(1)
	st := sim.Menu()

	if st.Phase != PhaseMenu {
		t.Fatalf("initial phase = %v, expected menu", st.Phase)
	}
	next := sim.Tick(st, Input{Thrust: true, Fire: true})
	if !reflect.DeepEqual(st, next) {
		t.Error("Tick in menu should return the state unchanged")
	}
}

func TestStart(t *testing.T) {
	sim := newTestSim(1)
	st := sim.Start()

	if st.Phase != PhasePlaying {
		t.Errorf("phase = %v, expected playing", st.Phase)
	}
	if st.Level != 1 || st.Score != 0 {
		t.Errorf("level/score = %d/%d, expected 1/0", st.Level, st.Score)
	}
	if len(st.Asteroids) != 4 {
		t.Errorf("expected 3+1 asteroids, got %d", len(st.Asteroids))
	}
	for _, a := range st.Asteroids {
		if a.Size != Large {
			t.Errorf("level start should seed large asteroids, got %v", a.Size)
		}
	}
	if st.Ship.Pos != core.V(400, 300) {
		t.Errorf("ship at %v, expected centre", st.Ship.Pos)
	}
	if st.Ship.Rotation != -math.Pi/2 {
		t.Errorf("ship rotation %f, expected -pi/2", st.Ship.Rotation)
	}
	if len(st.Bullets) != 0 || len(st.Particles) != 0 {
		t.Error("start should clear bullets and particles")
	}
}

func TestSteering(t *testing.T) {
	sim := newTestSim(1)
	far := still(sim, Large, core.V(700, 100))

	tests := []struct {
		name     string
		in       Input
		rotation float64
	}{
		{"left", Input{Left: true}, -math.Pi/2 - 0.1},
		{"right", Input{Right: true}, -math.Pi/2 + 0.1},
		{"both cancel", Input{Left: true, Right: true}, -math.Pi / 2},
		{"none", Input{}, -math.Pi / 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := playing(sim, core.V(400, 300), far)
			next := sim.Tick(st, tc.in)
			if math.Abs(next.Ship.Rotation-tc.rotation) > 1e-12 {
				t.Errorf("rotation = %f, expected %f", next.Ship.Rotation, tc.rotation)
			}
		})
	}
}

func TestThrustAndFriction(t *testing.T) {
	sim := newTestSim(1)
	st := playing(sim, core.V(400, 300), still(sim, Large, core.V(700, 500)))

	st = sim.Tick(st, Input{Thrust: true})
	if !st.Ship.Thrusting {
		t.Error("ship should be thrusting while the key is held")
	}
	wantVY := -0.15 * 0.99
	if math.Abs(st.Ship.Vel.Y-wantVY) > 1e-12 {
		t.Errorf("vel.y = %f, expected %f", st.Ship.Vel.Y, wantVY)
	}
	if math.Abs(st.Ship.Pos.Y-(300+wantVY)) > 1e-12 {
		t.Errorf("pos.y = %f, expected %f", st.Ship.Pos.Y, 300+wantVY)
	}

	st = sim.Tick(st, Input{})
	if st.Ship.Thrusting {
		t.Error("releasing thrust should clear the flag")
	}
	if math.Abs(st.Ship.Vel.Y-wantVY*0.99) > 1e-12 {
		t.Errorf("friction not applied, vel.y = %f", st.Ship.Vel.Y)
	}
}

func TestSplitAndScore(t *testing.T) {
	tests := []struct {
		size      Size
		points    int
		fragments int
		child     Size
	}{
		{Large, 20, 2, Medium},
		{Medium, 50, 2, Small},
	}

	for _, tc := range tests {
		t.Run(tc.size.String(), func(t *testing.T) {
			sim := newTestSim(2)
			at := core.V(400, 300)
			keep := still(sim, Large, core.V(700, 500))
			st := playing(sim, core.V(100, 100), still(sim, tc.size, at), keep)
			st.Bullets = []Bullet{{Pos: at, Life: 10}}

			next := sim.Tick(st, Input{})

			if next.Score != tc.points {
				t.Errorf("score = %d, expected %d", next.Score, tc.points)
			}
			if len(next.Bullets) != 0 {
				t.Error("bullet should be consumed by the hit")
			}
			if len(next.Particles) != 10 {
				t.Errorf("expected 10 explosion particles, got %d", len(next.Particles))
			}

			var children int
			for _, a := range next.Asteroids {
				if a.Pos == keep.Pos {
					continue
				}
				children++
				if a.Size != tc.child || a.Pos != at {
					t.Errorf("fragment %v at %v, expected %v at %v", a.Size, a.Pos, tc.child, at)
				}
			}
			if children != tc.fragments {
				t.Errorf("expected %d fragments, got %d", tc.fragments, children)
			}
		})
	}
}

func TestSmallAsteroidVanishesAndLevelClears(t *testing.T) {
	sim := newTestSim(3)
	at := core.V(400, 300)
	st := playing(sim, core.V(100, 100), still(sim, Small, at))
	st.Score = 70
	st.Bullets = []Bullet{{Pos: at, Life: 10}}

	next := sim.Tick(st, Input{})

	if next.Score != 170 {
		t.Errorf("score = %d, expected 170", next.Score)
	}
	if !next.Events.LevelCleared {
		t.Error("clearing the last asteroid should clear the level")
	}
	if next.Level != 2 {
		t.Errorf("level = %d, expected 2", next.Level)
	}
	if len(next.Asteroids) != 5 {
		t.Errorf("level 2 should seed 3+2 asteroids, got %d", len(next.Asteroids))
	}
	for _, a := range next.Asteroids {
		if a.Size != Large {
			t.Errorf("new wave should be large, got %v", a.Size)
		}
	}
	if next.Phase != PhasePlaying {
		t.Errorf("phase = %v, expected playing", next.Phase)
	}
}

func TestOneAsteroidPerBullet(t *testing.T) {
	sim := newTestSim(4)
	at := core.V(400, 300)

	st := playing(sim, core.V(100, 100), still(sim, Small, at), still(sim, Small, at.Add(core.V(5, 0))))
	st.Bullets = []Bullet{{Pos: at.Add(core.V(2, 0)), Life: 10}}

	next := sim.Tick(st, Input{})
	if next.Events.AsteroidsDestroyed != 1 {
		t.Errorf("one bullet destroyed %d asteroids", next.Events.AsteroidsDestroyed)
	}
	if len(next.Asteroids) != 1 {
		t.Errorf("expected 1 asteroid left, got %d", len(next.Asteroids))
	}

	// Two bullets on one asteroid: the second survives
	st = playing(sim, core.V(100, 100), still(sim, Small, at), still(sim, Large, core.V(700, 500)))
	st.Bullets = []Bullet{{Pos: at, Life: 10}, {Pos: at, Life: 10}}
	next = sim.Tick(st, Input{})
	if len(next.Bullets) != 1 {
		t.Errorf("expected the second bullet to survive, got %d bullets", len(next.Bullets))
	}
	if next.Score != 100 {
		t.Errorf("score = %d, expected 100", next.Score)
	}
}

func TestShipCollisionEndsGame(t *testing.T) {
	sim := newTestSim(5)
	st := playing(sim, core.V(400, 300), still(sim, Medium, core.V(430, 300)))
	st.Score = 120

	next := sim.Tick(st, Input{Thrust: true})

	if next.Phase != PhaseGameOver {
		t.Fatalf("phase = %v, expected gameover", next.Phase)
	}
	if !next.Events.ShipDestroyed {
		t.Error("ShipDestroyed event missing")
	}
	if next.Score != 120 {
		t.Errorf("score changed on death: %d", next.Score)
	}
	if next.Level != 1 {
		t.Errorf("level changed on death: %d", next.Level)
	}

	exploded := 0
	for _, p := range next.Particles {
		if p.MaxLife == 60 {
			exploded++
		}
	}
	if exploded != 30 {
		t.Errorf("expected a 30 particle ship explosion, got %d", exploded)
	}

	// Game over halts the simulation until restart
	frozen := next
	for i := 0; i < 10; i++ {
		next = sim.Tick(next, Input{Fire: true, Thrust: true, Left: true})
	}
	if !reflect.DeepEqual(frozen, next) {
		t.Error("ticks after game over should not change the state")
	}

	restarted := sim.Start()
	if restarted.Phase != PhasePlaying || restarted.Score != 0 || restarted.Level != 1 {
		t.Errorf("restart should reset the session, got %v score %d level %d", restarted.Phase, restarted.Score, restarted.Level)
	}
}

func TestTouchingIsNotCollision(t *testing.T) {
	sim := newTestSim(6)
	// Ship radius 15 plus small radius 15
	st := playing(sim, core.V(400, 300), still(sim, Small, core.V(430, 300)))

	next := sim.Tick(st, Input{})
	if next.Phase != PhasePlaying {
		t.Error("circles exactly touching should not end the game")
	}
}

func TestFireRateWallClock(t *testing.T) {
	sim := newTestSim(7)
	st := playing(sim, core.V(400, 300), still(sim, Large, core.V(700, 500)))

	t0 := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	offsets := []time.Duration{0, 50, 100, 199, 200, 250, 399, 400}
	want := []bool{true, false, false, false, true, false, false, true}

	for i, off := range offsets {
		st = sim.Tick(st, Input{Fire: true, Now: t0.Add(off * time.Millisecond)})
		if st.Events.Fired != want[i] {
			t.Errorf("fire at +%dms: fired=%v, expected %v", off, st.Events.Fired, want[i])
		}
	}
	if len(st.Bullets) != 3 {
		t.Errorf("expected 3 bullets in flight, got %d", len(st.Bullets))
	}
}

func TestFireRateTicks(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	cfg.Bullets.Limiter = config.LimiterTicks
	sim := New(cfg, NewRand(8))
	st := playing(sim, core.V(400, 300), still(sim, Large, core.V(700, 500)))

	// Wall-clock time is ignored in tick mode
	now := time.Now()
	shots := 0
	for i := 0; i < 25; i++ {
		st = sim.Tick(st, Input{Fire: true, Now: now})
		if st.Events.Fired {
			shots++
		}
	}
	// Ticks 1, 13 and 25
	if shots != 3 {
		t.Errorf("expected 3 shots in 25 ticks with a 12 tick cooldown, got %d", shots)
	}
}

func TestFireWithoutTimestampFallsBackToTicks(t *testing.T) {
	sim := newTestSim(9)
	st := playing(sim, core.V(400, 300), still(sim, Large, core.V(700, 500)))

	shots := 0
	for i := 0; i < 12; i++ {
		st = sim.Tick(st, Input{Fire: true})
		if st.Events.Fired {
			shots++
		}
	}
	if shots != 1 {
		t.Errorf("expected 1 shot in 12 ticks, got %d", shots)
	}
}

func TestBulletLifetime(t *testing.T) {
	sim := newTestSim(10)
	st := playing(sim, core.V(400, 300), still(sim, Large, core.V(100, 500)))
	st.Ship.Rotation = 0 // fire to the right, away from the asteroid

	st = sim.Tick(st, Input{Fire: true})
	if len(st.Bullets) != 1 || st.Bullets[0].Life != 59 {
		t.Fatalf("expected one bullet with life 59, got %+v", st.Bullets)
	}

	prev := st.Bullets[0].Life
	for i := 0; i < 58; i++ {
		st = sim.Tick(st, Input{})
		if len(st.Bullets) != 1 {
			t.Fatalf("bullet vanished early at tick %d", i)
		}
		if st.Bullets[0].Life >= prev {
			t.Fatalf("bullet life did not decrease: %d -> %d", prev, st.Bullets[0].Life)
		}
		prev = st.Bullets[0].Life
	}

	st = sim.Tick(st, Input{})
	if len(st.Bullets) != 0 {
		t.Errorf("bullet should expire after 60 ticks, life %d", st.Bullets[0].Life)
	}
}

func TestWorkedExample(t *testing.T) {
	sim := newTestSim(11)
	target := core.V(400, 300)
	st := playing(sim, core.V(400, 450), still(sim, Large, target))

	st = sim.Tick(st, Input{Fire: true})
	if len(st.Bullets) != 1 {
		t.Fatalf("expected a bullet after firing, got %d", len(st.Bullets))
	}

	for i := 0; i < 30 && st.Score == 0; i++ {
		st = sim.Tick(st, Input{})
	}

	if st.Score != 20 {
		t.Fatalf("score = %d, expected 20", st.Score)
	}
	if st.Phase != PhasePlaying {
		t.Fatalf("phase = %v, expected playing", st.Phase)
	}
	if len(st.Asteroids) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(st.Asteroids))
	}
	for _, a := range st.Asteroids {
		if a.Size != Medium || a.Pos != target {
			t.Errorf("fragment %v at %v, expected medium at %v", a.Size, a.Pos, target)
		}
	}
}

func TestWrapInvariant(t *testing.T) {
	sim := newTestSim(12)
	rng := NewRand(99)
	st := sim.Start()

	inWorld := func(p core.Vec2) bool {
		return p.X >= 0 && p.X < 800 && p.Y >= 0 && p.Y < 600
	}

	for tick := 0; tick < 3000; tick++ {
		in := Input{
			Left:   rng.Intn(3) == 0,
			Right:  rng.Intn(3) == 0,
			Thrust: rng.Intn(2) == 0,
			Fire:   rng.Intn(4) == 0,
		}
		st = sim.Tick(st, in)

		if !inWorld(st.Ship.Pos) {
			t.Fatalf("tick %d: ship at %v", tick, st.Ship.Pos)
		}
		for _, b := range st.Bullets {
			if !inWorld(b.Pos) {
				t.Fatalf("tick %d: bullet at %v", tick, b.Pos)
			}
		}
		for _, p := range st.Particles {
			if !inWorld(p.Pos) {
				t.Fatalf("tick %d: particle at %v", tick, p.Pos)
			}
		}
		// A fresh wave starts outside the screen and wraps on its first move
		if !st.Events.LevelCleared {
			for _, a := range st.Asteroids {
				if !inWorld(a.Pos) {
					t.Fatalf("tick %d: asteroid at %v", tick, a.Pos)
				}
			}
		}

		if st.Phase == PhaseGameOver {
			st = sim.Start()
		}
	}
}

func TestScoreAndLevelMonotonic(t *testing.T) {
	sim := newTestSim(13)
	st := sim.Start()

	for tick := 0; tick < 2000 && st.Phase == PhasePlaying; tick++ {
		prevScore, prevLevel := st.Score, st.Level
		st = sim.Tick(st, Input{Right: tick%3 == 0, Fire: true})
		if st.Score < prevScore || st.Level < prevLevel {
			t.Fatalf("tick %d: score %d->%d level %d->%d", tick, prevScore, st.Score, prevLevel, st.Level)
		}
		if st.Score-prevScore != st.Events.Points {
			t.Fatalf("tick %d: score delta %d does not match events %d", tick, st.Score-prevScore, st.Events.Points)
		}
	}
}

func TestDeterministic(t *testing.T) {
	run := func() State {
		sim := newTestSim(2024)
		st := sim.Start()
		for tick := 0; tick < 500; tick++ {
			st = sim.Tick(st, Input{
				Left:   tick%7 < 2,
				Thrust: tick%5 == 0,
				Fire:   tick%2 == 0,
			})
			if st.Phase != PhasePlaying {
				break
			}
		}
		return st
	}

	if a, b := run(), run(); !reflect.DeepEqual(a, b) {
		t.Error("same seed and inputs should produce identical states")
	}
}

func TestTickDoesNotMutateInput(t *testing.T) {
	sim := newTestSim(14)
	at := core.V(400, 300)
	st := playing(sim, core.V(100, 100), still(sim, Large, at), still(sim, Large, core.V(700, 500)))
	st.Bullets = []Bullet{{Pos: at, Life: 10}}
	st.Particles = []Particle{{Pos: at, Vel: core.V(1, 0), Life: 5, MaxLife: 10}}

	before := State{
		Asteroids: append([]Asteroid(nil), st.Asteroids...),
		Bullets:   append([]Bullet(nil), st.Bullets...),
		Particles: append([]Particle(nil), st.Particles...),
	}

	sim.Tick(st, Input{Fire: true, Thrust: true})

	if !reflect.DeepEqual(before.Asteroids, st.Asteroids) ||
		!reflect.DeepEqual(before.Bullets, st.Bullets) ||
		!reflect.DeepEqual(before.Particles, st.Particles) {
		t.Error("Tick modified the collections of its input state")
	}
}
