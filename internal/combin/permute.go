package combin

// Permutations calls fn with every ordered arrangement of k distinct
// indices from 0..n-1, in lexicographic order. The slice passed to fn is
// reused between calls; fn must copy it to retain it. Enumeration stops
// early when fn returns false.
//
// The traversal uses an explicit index stack rather than recursion so
// that large k does not grow the call stack.
func Permutations(n, k int, fn func(idx []int) bool) {
	if k <= 0 || k > n {
		return
	}

	idx := make([]int, k)
	used := make([]bool, n)
	depth := 0
	idx[0] = 0

	for depth >= 0 {
		advanced := false
		for i := idx[depth]; i < n; i++ {
			if used[i] {
				continue
			}
			idx[depth] = i
			used[i] = true
			advanced = true
			break
		}

		if !advanced {
			depth--
			if depth >= 0 {
				used[idx[depth]] = false
				idx[depth]++
			}
			continue
		}

		if depth == k-1 {
			if !fn(idx) {
				return
			}
			used[idx[depth]] = false
			idx[depth]++
			continue
		}

		depth++
		idx[depth] = 0
	}
}
