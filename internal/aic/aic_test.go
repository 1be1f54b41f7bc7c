package aic

import (
	"testing"
)

func TestPopcount(t *testing.T) {
	if popcount(0) != 0 {
		t.Error("popcount of 0 should be 0")
	}
	if popcount(0b101) != 2 {
		t.Error("popcount of 0b101 should be 2")
	}
	if popcount(0x1FF) != 9 {
		t.Error("popcount of 0x1FF should be 9")
	}
}

func TestFlip(t *testing.T) {
	if flip(0) != 1 || flip(1) != 0 {
		t.Error("flip should toggle between the two colors of a pair")
	}
	if flip(2) != 3 || flip(3) != 2 {
		t.Error("flip should toggle within any color pair, not just 0/1")
	}
}
