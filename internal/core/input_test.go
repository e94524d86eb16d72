package core

import "testing"

func TestInputSnapshotSet(t *testing.T) {
	tests := []struct {
		action   Action
		expected InputSnapshot
	}{
		{ActionLeft, InputSnapshot{Left: true}},
		{ActionRight, InputSnapshot{Right: true}},
		{ActionJump, InputSnapshot{Jump: true}},
		{ActionRun, InputSnapshot{Run: true}},
		{ActionFire, InputSnapshot{Fire: true}},
		{ActionReset, InputSnapshot{Reset: true}},
		{ActionQuit, InputSnapshot{Quit: true}},
		{ActionNone, InputSnapshot{}},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			var in InputSnapshot
			in.Set(tc.action)
			if in != tc.expected {
				t.Errorf("Set(%s) = %+v, expected %+v", tc.action, in, tc.expected)
			}
		})
	}
}

func TestInputSnapshotClearEdges(t *testing.T) {
	var in InputSnapshot
	for _, a := range []Action{ActionLeft, ActionRun, ActionFire, ActionReset, ActionQuit} {
		in.Set(a)
	}

	in.ClearEdges()

	if !in.Left || !in.Run {
		t.Error("ClearEdges should keep held actions")
	}
	if in.Fire || in.Reset || in.Quit {
		t.Error("ClearEdges should clear edge-triggered actions")
	}
}

func TestActionHeld(t *testing.T) {
	tests := []struct {
		action Action
		held   bool
	}{
		{ActionLeft, true},
		{ActionRight, true},
		{ActionJump, true},
		{ActionRun, true},
		{ActionFire, false},
		{ActionReset, false},
		{ActionQuit, false},
		{ActionNone, false},
	}

	for _, tc := range tests {
		if tc.action.Held() != tc.held {
			t.Errorf("%s.Held() = %v, expected %v", tc.action, tc.action.Held(), tc.held)
		}
	}
}
