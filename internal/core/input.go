package core

// Action represents a semantic input action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // A, Left arrow - move left (held)
	ActionRight        // D, Right arrow - move right (held)
	ActionJump         // W, Up, Space - jump (held)
	ActionRun          // Shift+direction - sprint modifier (held)
	ActionFire         // F, J - fire a bullet (edge-triggered)
	ActionReset        // R - restart the run (edge-triggered)
	ActionQuit         // Q, Ctrl+C - exit (edge-triggered)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionRun:
		return "Run"
	case ActionFire:
		return "Fire"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Held reports whether the action is sampled as a held state rather than an edge.
func (a Action) Held() bool {
	switch a {
	case ActionLeft, ActionRight, ActionJump, ActionRun:
		return true
	default:
		return false
	}
}

// InputSnapshot is the input state consumed by one simulation tick.
// Left, Right, Jump and Run are held states; Fire, Reset and Quit are
// true only on the tick their key was newly pressed.
type InputSnapshot struct {
	Left  bool
	Right bool
	Jump  bool
	Run   bool

	Fire  bool
	Reset bool
	Quit  bool
}

// Set marks an action as active in this snapshot.
func (in *InputSnapshot) Set(a Action) {
	switch a {
	case ActionLeft:
		in.Left = true
	case ActionRight:
		in.Right = true
	case ActionJump:
		in.Jump = true
	case ActionRun:
		in.Run = true
	case ActionFire:
		in.Fire = true
	case ActionReset:
		in.Reset = true
	case ActionQuit:
		in.Quit = true
	}
}

// ClearEdges resets the edge-triggered actions, keeping held state.
func (in *InputSnapshot) ClearEdges() {
	in.Fire = false
	in.Reset = false
	in.Quit = false
}
