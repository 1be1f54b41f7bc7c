package core

import "testing"

func TestCandidatesBasic(t *testing.T) {
	var c Candidates
	if !c.IsEmpty() {
		t.Error("zero value should be empty")
	}
	c = c.Set(1).Set(5).Set(9)
	if c.Count() != 3 {
		t.Errorf("expected count 3, got %d", c.Count())
	}
	if !c.Has(5) || c.Has(4) {
		t.Error("Has is inconsistent with Set")
	}
	c = c.Clear(5)
	if c.Has(5) || c.Count() != 2 {
		t.Error("Clear did not remove the digit")
	}
}

func TestCandidatesOnly(t *testing.T) {
	c := NewCandidates([]int{7})
	d, ok := c.Only()
	if !ok || d != 7 {
		t.Errorf("expected Only()=7,true got %d,%v", d, ok)
	}
	c = c.Set(2)
	if _, ok := c.Only(); ok {
		t.Error("two candidates should not report Only")
	}
}

func TestAllCandidatesCoversOneToNine(t *testing.T) {
	all := AllCandidates()
	for d := 1; d <= GridSize; d++ {
		if !all.Has(d) {
			t.Errorf("AllCandidates missing digit %d", d)
		}
	}
	if all.Count() != GridSize {
		t.Errorf("expected 9 candidates, got %d", all.Count())
	}
}

func TestSectorsAndPeers(t *testing.T) {
	// cell 0 is R1C1, box 0
	peers := Peers[0]
	if len(peers) != 20 {
		t.Fatalf("expected 20 peers, got %d", len(peers))
	}
	for _, p := range peers {
		if !ArePeers(0, p) {
			t.Errorf("cell %d should be a peer of 0", p)
		}
	}
	if ArePeers(0, 0) {
		t.Error("a cell should not be its own peer")
	}
	// R1C1 and R1C9 share a row
	if !ArePeers(IndexOf(0, 0), IndexOf(0, 8)) {
		t.Error("cells in the same row should be peers")
	}
	// R1C1 and R9C9 share nothing
	if ArePeers(IndexOf(0, 0), IndexOf(8, 8)) {
		t.Error("cells in different row/col/box should not be peers")
	}
}

func TestCombinations(t *testing.T) {
	got := Combinations([]int{1, 2, 3}, 2)
	want := [][]int{{1, 2}, {1, 3}, {2, 3}}
	if len(got) != len(want) {
		t.Fatalf("expected %d combinations, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i][0] != want[i][0] || got[i][1] != want[i][1] {
			t.Errorf("combination %d = %v, want %v", i, got[i], want[i])
		}
	}
}
