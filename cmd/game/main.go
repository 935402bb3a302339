package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/1siamBot/wave-arena/engine/ai"
	"github.com/1siamBot/wave-arena/engine/config"
	"github.com/1siamBot/wave-arena/engine/core"
	"github.com/1siamBot/wave-arena/engine/input"
	"github.com/1siamBot/wave-arena/engine/maplib"
	"github.com/1siamBot/wave-arena/engine/render"
	"github.com/1siamBot/wave-arena/engine/systems"
	"github.com/1siamBot/wave-arena/engine/ui"
)

// errExit ends ebiten.RunGame cleanly
var errExit = errors.New("exit requested")

// Game implements ebiten.Game interface
type Game struct {
	gameLoop *core.GameLoop
	input    *input.InputState
	renderer *render.ArenaRenderer
	hud      *ui.HUD
	overlay  *ui.Overlay
	stats    *runStats

	screenW, screenH int
}

// runStats tallies the current run from dispatched events
type runStats struct {
	kills, explosionKills, shots int
}

func (s *runStats) reset() { *s = runStats{} }

// buildWorld assembles the simulation: arena, world and every system in
// tick order. The run is not started.
func buildWorld(cfg config.Config) (*core.World, *systems.WaveSystem) {
	arena := maplib.NewArena(cfg.ArenaWidth, cfg.ArenaHeight)
	w := core.NewWorld(arena, cfg.TickRate, cfg.Seed)

	waves := &systems.WaveSystem{
		Spawner:             systems.NewSpawner(cfg.MaxPlacementAttempts),
		Delay:               cfg.WaveDelay,
		RegenerateObstacles: cfg.RegenerateObstaclesEachWave,
	}
	w.AddSystem(&systems.ControlSystem{AutoFireInterval: cfg.AutoFireInterval})
	w.AddSystem(&systems.MovementSystem{})
	w.AddSystem(&systems.ProjectileSystem{})
	w.AddSystem(&ai.AISystem{})
	w.AddSystem(&systems.AnimationSystem{})
	w.AddSystem(&systems.CombatSystem{})
	w.AddSystem(waves)
	return w, waves
}

// subscribe wires the event handlers that run after each frame's ticks
func subscribe(w *core.World, stats *runStats) {
	w.Events.On(core.EvtEnemyKilled, func(e core.Event) {
		stats.kills++
		if p, ok := e.Payload.(core.KillPayload); ok && p.Explosion {
			stats.explosionKills++
		}
	})
	w.Events.On(core.EvtProjectileFired, func(core.Event) {
		stats.shots++
	})
	w.Events.On(core.EvtWaveStarted, func(e core.Event) {
		if p, ok := e.Payload.(core.WavePayload); ok {
			log.Printf("Wave %d started with %d enemies", p.Wave, p.Enemies)
		}
	})
	w.Events.On(core.EvtGameOver, func(core.Event) {
		log.Printf("Run stats: %d kills (%d by barrels), %d shots fired",
			stats.kills, stats.explosionKills, stats.shots)
	})
	w.Events.On(core.EvtRunRestarted, func(core.Event) {
		stats.reset()
	})
}

func NewGame(cfg config.Config) *Game {
	w, waves := buildWorld(cfg)
	g := &Game{
		gameLoop: core.NewGameLoop(w),
		input:    input.NewInputState(),
		renderer: render.NewArenaRenderer(),
		stats:    &runStats{},
		screenW:  int(cfg.ArenaWidth),
		screenH:  int(cfg.ArenaHeight),
	}
	g.hud = ui.NewHUD(g.screenW, g.screenH)
	g.overlay = ui.NewOverlay(g.screenW, g.screenH)
	subscribe(w, g.stats)
	w.Events.On(core.EvtHazardDetonated, func(e core.Event) {
		kills, _ := e.Payload.(int)
		g.renderer.Camera.Shake(0.4 + 0.1*float64(kills))
	})

	g.gameLoop.OnRestart = waves.StartRun
	waves.StartRun(w)
	g.gameLoop.Play()
	return g
}

func (g *Game) Update() error {
	g.input.Update()

	if g.input.ExitRequested() {
		return errExit
	}
	if g.input.RestartRequested() && g.gameLoop.RestartIfOver() {
		log.Printf("Run restarted")
	}
	if g.input.PauseToggled() {
		switch g.gameLoop.State {
		case core.StatePlaying:
			g.gameLoop.Pause()
		case core.StatePaused:
			g.gameLoop.Play()
		}
	}

	g.input.Apply(&g.gameLoop.World.Intent)
	g.gameLoop.Update()
	g.gameLoop.World.Events.Dispatch()
	g.renderer.Camera.Update(1 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	w := g.gameLoop.World
	g.renderer.Draw(screen, w)
	g.hud.Draw(screen, w)
	g.overlay.Draw(screen, w, g.gameLoop.State == core.StatePaused)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ebiten.SetWindowSize(int(cfg.ArenaWidth), int(cfg.ArenaHeight))
	ebiten.SetWindowTitle("Wave Arena")
	ebiten.SetTPS(int(cfg.TickRate))

	game := NewGame(cfg)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, errExit) {
		log.Fatal(err)
	}
}
