package engine

// intn returns an integer in [0, n). It returns 0 when n <= 1.
func (e *Engine) intn(n int) int {
	if n <= 1 {
		return 0
	}

	return min(int(e.rng.Next()*float64(n)), n-1)
}

// rangeInclusive draws uniformly from [lo, hi].
func (e *Engine) rangeInclusive(lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + e.intn(hi-lo+1)
}

// chance reports true with probability p.
func (e *Engine) chance(p float64) bool {
	return e.rng.Next() < p
}

// weightedIndex draws an index with probability proportional to its weight. Weights are
// treated as proportions of their sum; the first index whose cumulative weight meets or
// exceeds a draw in [0, sum) wins. Non-positive weights are never picked. It returns -1
// when no weight is positive.
func (e *Engine) weightedIndex(weights []float64) int {
	total := 0.0
	last := -1
	for i, w := range weights {
		if w > 0 {
			total += w
			last = i
		}
	}
	if last < 0 {
		return -1
	}

	draw := e.rng.Next() * total
	cumulative := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cumulative += w
		if cumulative >= draw {
			return i
		}
	}

	return last
}

// pick returns a uniformly chosen element of items, which must not be empty.
func pick[T any](e *Engine, items []T) T {
	return items[e.intn(len(items))]
}
