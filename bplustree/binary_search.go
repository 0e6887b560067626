package bplus

// binary search for search.go and deletion.go: index of target or -1
func binarySearch(keys [][]byte, target []byte, cmp func(a, b []byte) int) int {
	low := 0
	high := len(keys) - 1
	for low <= high {
		mid := low + (high-low)/2
		c := cmp(keys[mid], target)
		if c == 0 {
			return mid
		} else if c < 0 {
			low = mid + 1
		} else {
			high = mid - 1
		}
	}
	return -1
}

// binary search for insertion.go: first index with keys[i] >= target
func lowerBound(keys [][]byte, target []byte, cmp func(a, b []byte) int) int {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cmp(keys[mid], target) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// binary search for find_leaf.go: count of keys <= target, i.e. the child to follow
func upperBound(keys [][]byte, target []byte, cmp func(a, b []byte) int) int {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cmp(keys[mid], target) <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// insertAt inserts elem at index i in slice.
func insertAt[T any](slice []T, i int, elem T) []T {
	slice = append(slice, elem) // grow by 1
	copy(slice[i+1:], slice[i:])
	slice[i] = elem
	return slice
}

// removeAt removes element at index i from slice.
func removeAt[T any](slice []T, i int) []T {
	return append(slice[:i], slice[i+1:]...)
}

// childIndex returns the position of child in parent.children, or -1.
func childIndex(parent *Node, child int64) int {
	for i, c := range parent.children {
		if c == child {
			return i
		}
	}
	return -1
}
