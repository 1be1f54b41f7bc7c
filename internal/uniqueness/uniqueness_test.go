package uniqueness

import "testing"

func TestErShape(t *testing.T) {
	if _, _, ok := erShape([]int{0, 1, 9}); !ok {
		t.Error("cells confined to one row and one column within a box should report an ER shape")
	}
	if _, _, ok := erShape([]int{0, 10, 20}); ok {
		t.Error("cells scattered across rows and columns should not report an ER shape")
	}
}

func TestContainsBoth(t *testing.T) {
	if !containsBoth([]int{1, 2, 3}, 2, 3) {
		t.Error("expected both 2 and 3 to be present")
	}
	if containsBoth([]int{1, 2, 3}, 2, 9) {
		t.Error("9 is not present, should report false")
	}
}
