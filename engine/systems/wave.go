package systems

import (
	"log"

	"github.com/1siamBot/wave-arena/engine/core"
)

// DefaultWaveDelay is the pause between a wave being announced and its spawn
const DefaultWaveDelay = 2.0

// WaveSystem is the wave/run controller. It advances to the next wave when
// the arena is cleared and owns run start/restart.
type WaveSystem struct {
	Spawner *Spawner
	Delay   float64 // seconds between announcement and spawn

	// RegenerateObstacles rebuilds obstacles at every wave start instead of
	// once per run
	RegenerateObstacles bool
}

func (s *WaveSystem) Priority() int { return 40 }

func (s *WaveSystem) Update(w *core.World, _ float64) {
	if w.Run.Phase != core.PhaseActive {
		return
	}
	if len(w.Enemies) == 0 {
		log.Printf("Wave %d cleared, score %d", w.Run.Wave, w.Hero.Score)
		w.Run.Wave++
		s.StartWave(w)
	}
}

// StartWave announces the current wave and schedules its spawn
func (s *WaveSystem) StartWave(w *core.World) {
	wave := w.Run.Wave
	w.Run.Phase = core.PhaseWaveTransition
	w.Emit(core.EvtWaveAnnounced, core.WavePayload{Wave: wave})
	log.Printf("Wave %d incoming", wave)

	w.Run.SetTransition(w.Scheduler.After(s.Delay, func() {
		if w.GameOver() || w.Run.Wave != wave {
			return
		}
		if s.RegenerateObstacles && wave > 1 {
			s.Spawner.GenerateObstacles(w)
		}
		n := s.Spawner.SpawnWave(w)
		w.Run.Phase = core.PhaseActive
		w.Emit(core.EvtWaveStarted, core.WavePayload{Wave: wave, Enemies: n})
	}))
}

// StartRun resets every piece of run state and begins wave 1. Pending
// timers are cancelled before anything is mutated.
func (s *WaveSystem) StartRun(w *core.World) {
	w.Scheduler.CancelAll()
	w.Arsenal.Reset()
	w.Hero.Reset()
	w.ClearTransient()
	w.Intent.Slots = w.Intent.Slots[:0]
	w.Intent.TriggerPressed = false
	w.Intent.TriggerReleased = false
	w.Run = core.RunState{Wave: 1, Phase: core.PhaseWaveTransition}

	s.Spawner.GenerateObstacles(w)
	w.Emit(core.EvtRunRestarted, nil)
	log.Printf("Run started with %d obstacles", len(w.Arena.Obstacles()))
	s.StartWave(w)
}
