package sorting

import "golang.org/x/exp/constraints"

// BubbleSort sorts xs ascending in place. It stops after the first pass
// that makes no swap.
func BubbleSort[T constraints.Ordered](xs []T) {
	BubbleSortFunc(xs, func(a, b T) bool { return a < b })
}

func BubbleSortFunc[T any](xs []T, less func(a, b T) bool) {
	for i, n := 0, len(xs); i < n; i++ {
		sorted := true
		for j := 0; j < n-i-1; j++ {
			if less(xs[j+1], xs[j]) {
				xs[j], xs[j+1] = xs[j+1], xs[j]
				sorted = false
			}
		}
		if sorted {
			return
		}
	}
}

// MergeSort sorts xs ascending in place. It is stable and uses one
// auxiliary buffer of len(xs).
func MergeSort(xs []int) {
	if len(xs) < 2 {
		return
	}
	aux := make([]int, len(xs))
	sortMerge(xs, aux, 0, len(xs)-1)
}

func sortMerge(xs, aux []int, lo, hi int) {
	if hi <= lo {
		return
	}
	mid := lo + (hi-lo)/2
	sortMerge(xs, aux, lo, mid)
	sortMerge(xs, aux, mid+1, hi)
	merge(xs, aux, lo, mid, hi)
}

// merge joins the sorted runs xs[lo:mid+1] and xs[mid+1:hi+1]. Ties take
// from the left run.
func merge(xs, aux []int, lo, mid, hi int) {
	copy(aux[lo:hi+1], xs[lo:hi+1])
	i, j := lo, mid+1
	for k := lo; k <= hi; k++ {
		switch {
		case i > mid:
			xs[k] = aux[j]
			j++
		case j > hi:
			xs[k] = aux[i]
			i++
		case aux[j] < aux[i]:
			xs[k] = aux[j]
			j++
		default:
			xs[k] = aux[i]
			i++
		}
	}
}
