package sekai

// extendSlice extends a slice by n elements, reallocating if necessary.
func extendSlice[T any](s []T, n int) []T {
	newLen := len(s) + n
	if cap(s) >= newLen {
		return s[:newLen]
	}
	newCap := max(2*cap(s), newLen)
	ns := make([]T, newLen, newCap)
	copy(ns, s)
	return ns
}

// extendTo grows s so that index i is addressable. Newly exposed elements are
// zero values and carry no meaning until the owner marks them present.
func extendTo[T any](s []T, i int) []T {
	if i < len(s) {
		return s
	}
	return extendSlice(s, i+1-len(s))
}
