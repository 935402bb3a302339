package core

import (
	"log"
	"math/rand"

	"github.com/1siamBot/wave-arena/engine/maplib"
)

// RunPhase is the state of the wave/run controller
type RunPhase uint8

const (
	PhaseWaveTransition RunPhase = iota // banner shown, next wave not spawned yet
	PhaseActive
	PhaseGameOver
)

func (p RunPhase) String() string {
	switch p {
	case PhaseWaveTransition:
		return "wave-transition"
	case PhaseActive:
		return "active"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// RunState tracks wave progression
type RunState struct {
	Wave       int
	Phase      RunPhase
	transition *Task
}

// SetTransition records the pending wave-start task, cancelling a stale one
func (r *RunState) SetTransition(t *Task) {
	r.transition.Cancel()
	r.transition = t
}

// TransitionPending reports whether a wave-start task is waiting to run
func (r *RunState) TransitionPending() bool {
	return !r.transition.Cancelled()
}

// World is the whole simulation state. It is owned by the tick: systems
// mutate it one phase at a time and nothing touches it concurrently.
type World struct {
	Arena     *maplib.Arena
	Hero      *Hero
	Arsenal   *Arsenal
	Enemies   []*Enemy
	Pickups   []*Pickup
	Hazards   []*Hazard
	Particles []*Particle
	Run       RunState

	Intent    Intent
	Scheduler *Scheduler
	Events    *EventBus
	Rand      *rand.Rand

	systems   []System
	TickCount uint64
	TickRate  float64 // ticks per second
}

// System processes the world each tick
type System interface {
	Update(w *World, dt float64)
	Priority() int
}

// NewWorld creates a world with the hero at the arena centre
func NewWorld(arena *maplib.Arena, tickRate float64, seed int64) *World {
	return &World{
		Arena:     arena,
		Hero:      NewHero(arena.Width/2, arena.Height/2),
		Arsenal:   NewArsenal(),
		Run:       RunState{Wave: 1, Phase: PhaseWaveTransition},
		Scheduler: NewScheduler(),
		Events:    NewEventBus(),
		Rand:      rand.New(rand.NewSource(seed)),
		TickRate:  tickRate,
	}
}

// AddSystem registers a system
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	// Sort by priority (simple insertion)
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i].Priority() < w.systems[i-1].Priority() {
			w.systems[i], w.systems[i-1] = w.systems[i-1], w.systems[i]
		}
	}
}

// Tick runs one simulation step: due timers first, then every system in
// priority order. A finished run does not tick.
func (w *World) Tick(dt float64) {
	if w.GameOver() {
		return
	}
	w.Scheduler.Advance(dt)
	for _, s := range w.systems {
		s.Update(w, dt)
	}
	w.Intent.consumeEdges()
	w.TickCount++
}

// Emit queues an event stamped with the current tick
func (w *World) Emit(t EventType, payload interface{}) {
	w.Events.Emit(Event{Type: t, Tick: w.TickCount, Payload: payload})
}

// GameOver reports whether the run has ended
func (w *World) GameOver() bool {
	return w.Run.Phase == PhaseGameOver
}

// EndRun moves the run to game over. Only the first call has any effect;
// it reports whether this call ended the run.
func (w *World) EndRun() bool {
	if w.GameOver() {
		return false
	}
	w.Run.Phase = PhaseGameOver
	w.Run.transition = nil
	w.Arsenal.StopAutoFire()
	w.Scheduler.CancelAll()
	w.Emit(EvtGameOver, w.Hero.Score)
	log.Printf("Game over on wave %d, score %d", w.Run.Wave, w.Hero.Score)
	return true
}

// ClearTransient empties every per-run entity store
func (w *World) ClearTransient() {
	w.Enemies = w.Enemies[:0]
	w.Pickups = w.Pickups[:0]
	w.Hazards = w.Hazards[:0]
	w.Particles = w.Particles[:0]
	w.Hero.Projectiles = w.Hero.Projectiles[:0]
}

// EntityCount returns the number of live dynamic entities
func (w *World) EntityCount() int {
	return 1 + len(w.Enemies) + len(w.Pickups) + len(w.Hazards) +
		len(w.Particles) + len(w.Hero.Projectiles)
}
