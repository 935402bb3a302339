package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/1siamBot/wave-arena/engine/core"
)

// Key bindings
var (
	KeysUp      = []ebiten.Key{ebiten.KeyW, ebiten.KeyUp}
	KeysDown    = []ebiten.Key{ebiten.KeyS, ebiten.KeyDown}
	KeysLeft    = []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}
	KeysRight   = []ebiten.Key{ebiten.KeyD, ebiten.KeyRight}
	KeyDash     = ebiten.KeyZ
	KeySprint   = ebiten.KeyShift
	KeyRestart  = ebiten.KeyR
	KeyPause    = ebiten.KeyP
	KeyExit     = ebiten.KeyEscape
	hotbarKeys  = [...]ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}
	trackedKeys = []ebiten.Key{
		ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD,
		ebiten.KeyUp, ebiten.KeyDown, ebiten.KeyLeft, ebiten.KeyRight,
		ebiten.KeyZ, ebiten.KeyShift, ebiten.KeyR, ebiten.KeyP, ebiten.KeyEscape,
		ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
	}
)

// InputState tracks mouse and keyboard state per frame
type InputState struct {
	// Mouse
	MouseX, MouseY   int
	LeftPressed      bool
	LeftJustPressed  bool
	LeftJustReleased bool

	// Keyboard
	KeysPressed     map[ebiten.Key]bool
	KeysJustPressed map[ebiten.Key]bool
}

func NewInputState() *InputState {
	return &InputState{
		KeysPressed:     make(map[ebiten.Key]bool),
		KeysJustPressed: make(map[ebiten.Key]bool),
	}
}

// Update should be called every frame
func (s *InputState) Update() {
	s.MouseX, s.MouseY = ebiten.CursorPosition()

	s.LeftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.LeftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	for _, k := range trackedKeys {
		s.KeysPressed[k] = ebiten.IsKeyPressed(k)
		s.KeysJustPressed[k] = inpututil.IsKeyJustPressed(k)
	}
}

func (s *InputState) anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if s.KeysPressed[k] {
			return true
		}
	}
	return false
}

// Apply writes this frame's input into the simulation intent. Held state
// is overwritten; edges accumulate until a tick consumes them, so a frame
// that runs no tick loses nothing.
func (s *InputState) Apply(in *core.Intent) {
	in.Up = s.anyPressed(KeysUp)
	in.Down = s.anyPressed(KeysDown)
	in.Left = s.anyPressed(KeysLeft)
	in.Right = s.anyPressed(KeysRight)
	in.Dash = s.KeysPressed[KeyDash]
	in.Sprint = s.KeysPressed[KeySprint]

	in.AimX, in.AimY = float64(s.MouseX), float64(s.MouseY)

	for i, k := range hotbarKeys {
		if s.KeysJustPressed[k] {
			in.Slots = append(in.Slots, i+1)
		}
	}
	if s.LeftJustPressed {
		in.TriggerPressed = true
	}
	if s.LeftJustReleased {
		in.TriggerReleased = true
	}
}

// RestartRequested reports whether the restart key went down this frame
func (s *InputState) RestartRequested() bool {
	return s.KeysJustPressed[KeyRestart]
}

// PauseToggled reports whether the pause key went down this frame
func (s *InputState) PauseToggled() bool {
	return s.KeysJustPressed[KeyPause]
}

// ExitRequested reports whether the exit key went down this frame
func (s *InputState) ExitRequested() bool {
	return s.KeysJustPressed[KeyExit]
}
