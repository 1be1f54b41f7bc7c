package core

// Combinations returns all k-element combinations of slice, in lexicographic
// order of index, matching the enumeration order techniques rely on for
// their tie-break rules ("lexicographic cell tuple").
func Combinations(slice []int, k int) [][]int {
	if k <= 0 || k > len(slice) {
		return nil
	}
	return combinationsHelper(slice, k, 0, nil)
}

func combinationsHelper(slice []int, k, start int, current []int) [][]int {
	if len(current) == k {
		out := make([]int, k)
		copy(out, current)
		return [][]int{out}
	}
	var results [][]int
	for i := start; i <= len(slice)-(k-len(current)); i++ {
		results = append(results, combinationsHelper(slice, k, i+1, append(current, slice[i]))...)
	}
	return results
}

func ContainsInt(slice []int, val int) bool {
	for _, v := range slice {
		if v == val {
			return true
		}
	}
	return false
}

func IntersectInts(a, b []int) []int {
	bSet := make(map[int]bool, len(b))
	for _, v := range b {
		bSet[v] = true
	}
	var out []int
	for _, v := range a {
		if bSet[v] {
			out = append(out, v)
		}
	}
	return out
}
