package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionNone)
	f.Set(ActionDown)
	f.Set(ActionUp)

	got := f.Actions()
	want := []Action{ActionUp, ActionDown, ActionUp}
	if len(got) != len(want) {
		t.Fatalf("Actions() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
	if !f.Has(ActionDown) || f.Has(ActionQuit) {
		t.Error("Has() reported wrong membership")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionQuit)

	f.Clear()
	if f.Len() != 0 {
		t.Errorf("Clear() left %d actions", f.Len())
	}
	if f.Has(ActionQuit) {
		t.Error("Has() still reports an action after Clear()")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionUp:      "Up",
		ActionDown:    "Down",
		ActionPause:   "Pause",
		ActionRestart: "Restart",
		ActionQuit:    "Quit",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if a.String() != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, a.String(), want)
		}
	}
}
