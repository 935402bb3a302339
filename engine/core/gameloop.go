package core

import "time"

// GameState represents the state of the loop driving the simulation
type GameState uint8

const (
	StateStopped GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// GameLoop manages the fixed-timestep game loop for deterministic simulation
type GameLoop struct {
	World       *World
	State       GameState
	TickRate    float64 // fixed ticks per second
	OnRestart   func(w *World)
	accumulator float64
	lastTime    time.Time
	now         func() time.Time
}

// NewGameLoop creates a game loop over w at w's tick rate
func NewGameLoop(w *World) *GameLoop {
	return &GameLoop{
		World:    w,
		TickRate: w.TickRate,
		now:      time.Now,
		lastTime: time.Now(),
	}
}

// Update should be called every render frame. It runs the simulation
// at fixed timestep and returns the interpolation alpha for rendering.
func (gl *GameLoop) Update() float64 {
	now := gl.now()
	frameTime := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now
	return gl.Advance(frameTime)
}

// Advance feeds frameTime seconds of wall time into the accumulator and
// runs as many fixed ticks as fit
func (gl *GameLoop) Advance(frameTime float64) float64 {
	// Cap frame time to avoid spiral of death
	if frameTime > 0.25 {
		frameTime = 0.25
	}

	dt := 1.0 / gl.TickRate
	if gl.State != StatePlaying {
		return 0
	}
	gl.accumulator += frameTime

	for gl.accumulator >= dt {
		gl.World.Tick(dt)
		gl.accumulator -= dt
		if gl.World.GameOver() {
			gl.halt()
			return 0
		}
	}

	return gl.accumulator / dt
}

// Step runs exactly one tick regardless of wall time
func (gl *GameLoop) Step() {
	if gl.State != StatePlaying {
		return
	}
	gl.World.Tick(1.0 / gl.TickRate)
	if gl.World.GameOver() {
		gl.halt()
	}
}

func (gl *GameLoop) halt() {
	gl.State = StateGameOver
	gl.accumulator = 0
}

// Play starts or resumes the game
func (gl *GameLoop) Play() {
	gl.State = StatePlaying
	gl.lastTime = gl.now()
}

// Pause pauses the game
func (gl *GameLoop) Pause() {
	if gl.State == StatePlaying {
		gl.State = StatePaused
	}
}

// Restart cancels everything pending, hands the world to OnRestart to be
// re-initialized, and resumes ticking
func (gl *GameLoop) Restart() {
	gl.World.Scheduler.CancelAll()
	if gl.OnRestart != nil {
		gl.OnRestart(gl.World)
	}
	gl.accumulator = 0
	gl.Play()
}

// RestartIfOver restarts only a finished run and reports whether it did
func (gl *GameLoop) RestartIfOver() bool {
	if gl.State != StateGameOver {
		return false
	}
	gl.Restart()
	return true
}

// CurrentTick returns the current simulation tick
func (gl *GameLoop) CurrentTick() uint64 {
	return gl.World.TickCount
}
