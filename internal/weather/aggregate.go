package weather

import "golang.org/x/exp/constraints"

// Mean returns the arithmetic mean of values. For an empty slice it returns
// (0, false); the zero is the "no data" value, not a computed average.
func Mean[T Number](values []T) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}

	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values)), true
}

// FindMin returns the smallest value and the index of its last occurrence.
func FindMin[T constraints.Ordered](values []T) (Extreme[T], bool) {
	return findExtreme(values, func(a, b T) bool { return a <= b })
}

// FindMax returns the largest value and the index of its last occurrence.
func FindMax[T constraints.Ordered](values []T) (Extreme[T], bool) {
	return findExtreme(values, func(a, b T) bool { return a >= b })
}

// findExtreme scans left to right; replacing on equality makes ties resolve
// to the highest index.
func findExtreme[T constraints.Ordered](values []T, better func(candidate, current T) bool) (Extreme[T], bool) {
	if len(values) == 0 {
		return Extreme[T]{}, false
	}

	best := Extreme[T]{Value: values[0], Index: 0}
	for i := 1; i < len(values); i++ {
		if better(values[i], best.Value) {
			best = Extreme[T]{Value: values[i], Index: i}
		}
	}
	return best, true
}
