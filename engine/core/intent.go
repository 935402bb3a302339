package core

// Intent is the normalized player input for one tick. Held keys persist
// across ticks; Slots and the trigger edges are consumed by the tick.
type Intent struct {
	Up, Down, Left, Right bool
	Dash, Sprint          bool

	AimX, AimY float64

	Slots           []int // hotbar slots (1..4) pressed since the last tick
	TriggerPressed  bool
	TriggerReleased bool
}

// Direction returns the raw -1/0/1 movement axes
func (in *Intent) Direction() (dx, dy float64) {
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	return dx, dy
}

// consumeEdges clears the one-shot parts of the intent
func (in *Intent) consumeEdges() {
	in.Slots = in.Slots[:0]
	in.TriggerPressed = false
	in.TriggerReleased = false
}
