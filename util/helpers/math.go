package helpers

import "golang.org/x/exp/constraints"

func Min[T constraints.Ordered](numbers ...T) T {
	var min T = numbers[0]
	for _, n := range numbers {
		if n < min {
			min = n
		}
	}
	return min
}

// CeilDiv returns ceil(total / unit), unit must be > 0.
func CeilDiv[T constraints.Unsigned](total, unit T) T {
	if total == 0 {
		return 0
	}
	return (total-1)/unit + 1
}
