package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	var f InputFrame
	f.Push(ActionJumpPressed)
	f.Push(ActionNone)
	f.Push(ActionJumpReleased)

	if len(f.Actions) != 2 {
		t.Fatalf("len = %d, expected 2", len(f.Actions))
	}
	if f.Actions[0] != ActionJumpPressed || f.Actions[1] != ActionJumpReleased {
		t.Errorf("order = %v, expected press then release", f.Actions)
	}
	if !f.Has(ActionJumpReleased) || f.Has(ActionDuckPressed) {
		t.Error("Has() returned wrong membership")
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame(ActionDuckPressed)
	c := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("Clear() should empty the frame")
	}
	if !c.Has(ActionDuckPressed) {
		t.Error("clone lost its action after original was cleared")
	}
}

func TestActionString(t *testing.T) {
	if ActionJumpReleased.String() != "JumpReleased" {
		t.Errorf("got %q, expected JumpReleased", ActionJumpReleased.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("got %q, expected Unknown", Action(99).String())
	}
}
