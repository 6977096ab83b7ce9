package seq

// Partition splits items into those satisfying pred and the rest, preserving
// input order within each group. The input slice is not modified.
func Partition[T any](items []T, pred func(T) bool) (match, rest []T) {
	for _, item := range items {
		if pred(item) {
			match = append(match, item)
		} else {
			rest = append(rest, item)
		}
	}
	return match, rest
}

// PartitionCount returns how many items satisfy pred and how many do not.
func PartitionCount[T any](items []T, pred func(T) bool) (match, rest int) {
	for _, item := range items {
		if pred(item) {
			match++
		} else {
			rest++
		}
	}
	return match, rest
}
