package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("frame should have ActionLeft after Set")
	}
	if f.Has(ActionRight) {
		t.Error("frame should not have ActionRight")
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionStop) {
		t.Error("zero frame should report no actions")
	}
	f.Set(ActionStop)
	if !f.Has(ActionStop) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionRulesOpen.String() != "RulesOpen" {
		t.Errorf("ActionRulesOpen.String() = %q", ActionRulesOpen.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{{Kind: EventBrickHit}, {Kind: EventLevelUp, Level: 2}}}
	if !r.Has(EventLevelUp) {
		t.Error("expected EventLevelUp")
	}
	if r.Has(EventGameReset) {
		t.Error("did not expect EventGameReset")
	}
}
