// Package utils holds small generic helpers shared by the solver core
// and the variant implementations: uniqueness checking, combinatorics
// used by subset-sum / subset-membership enumeration, and a row/col
// to box mapping.
package utils

// HasUniqueNonZeros reports whether all non-zero values in values are
// unique and within 1..9. Zero (empty cell) is ignored; any other value
// outside 1..9 makes it return false.
func HasUniqueNonZeros(values []int) bool {
	seen := make(map[int]bool)
	for _, v := range values {
		if v == 0 {
			continue
		}
		if v < 1 || v > 9 {
			return false
		}
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// GenerateCombinations returns all combinations of n items taken k at
// a time, as index slices into [0, n).
func GenerateCombinations(n, k int) [][]int {
	if k > n || k < 0 {
		return [][]int{}
	}

	result := make([][]int, 0)
	combination := make([]int, k)

	var generate func(start, depth int)
	generate = func(start, depth int) {
		if depth == k {
			temp := make([]int, k)
			copy(temp, combination)
			result = append(result, temp)
			return
		}
		for i := start; i < n; i++ {
			combination[depth] = i
			generate(i+1, depth+1)
		}
	}

	generate(0, 0)
	return result
}

// DigitCombinations returns all size-k subsets of the given sorted,
// distinct digit pool, as slices of digits (not indices). Used by
// the Killer cage to enumerate candidate subsets.
func DigitCombinations(pool []int, k int) [][]int {
	idxCombos := GenerateCombinations(len(pool), k)
	out := make([][]int, 0, len(idxCombos))
	for _, combo := range idxCombos {
		digits := make([]int, k)
		for i, idx := range combo {
			digits[i] = pool[idx]
		}
		out = append(out, digits)
	}
	return out
}

// ContainsInt reports whether target is present in slice.
func ContainsInt(slice []int, target int) bool {
	for _, val := range slice {
		if val == target {
			return true
		}
	}
	return false
}

// GetBoxNumber returns the box number (0-8) for a given row and column.
func GetBoxNumber(row, col int) int {
	if row < 0 || row > 8 || col < 0 || col > 8 {
		return -1
	}
	return (row/3)*3 + (col / 3)
}

// Max returns the larger of a and b.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
