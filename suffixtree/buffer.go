package suffixtree

// buffer is the append-only sequence every edge label indexes into.
type buffer[T comparable] struct {
	elems []T
}

func (b *buffer[T]) append(e T) int {
	b.elems = append(b.elems, e)
	return len(b.elems) - 1
}

func (b *buffer[T]) at(i int) T {
	return b.elems[i]
}

func (b *buffer[T]) len() int {
	return len(b.elems)
}

// equal reports whether the buffer matches pattern starting at index from.
// The caller guarantees from+len(pattern) <= b.len().
func (b *buffer[T]) equal(from int, pattern []T) bool {
	for i, p := range pattern {
		if b.elems[from+i] != p {
			return false
		}
	}
	return true
}
