package optics

import "testing"

func TestStackTotalPathMM(t *testing.T) {
	stack := Stack{
		{Material: "bk7", ThicknessMM: 5, Type: Dispersive, Index: 1.5168},
		{Material: "air", ThicknessMM: 95, Type: Gap, Index: 1.0},
		{Material: "sf11", ThicknessMM: 3, Type: Dispersive, Index: 1.7847},
	}

	if got := stack.TotalPathMM(); got != 103 {
		t.Errorf("total path: got %.3f, want 103", got)
	}
	if got := stack.Dispersive(); got != 2 {
		t.Errorf("dispersive count: got %d, want 2", got)
	}
}

func TestEmptyStack(t *testing.T) {
	var stack Stack
	if stack.TotalPathMM() != 0 {
		t.Error("empty stack should have zero path")
	}
	if stack.Dispersive() != 0 {
		t.Error("empty stack should have no dispersive elements")
	}
}
