package partitioner

import (
	"fmt"
	"math"
)

// TrialCount. number of independent contraction trials for a graph with n vertices: ceil(n(n-1)log2(n)).
// a single trial keeps a fixed min cut with probability at least 2/(n(n-1)), so after this many trials
// the probability of never seeing it is polynomially small in n.
func TrialCount(n int) (int, error) {
	if n < 2 {
		return 0, fmt.Errorf("%w: trial count needs at least 2 vertices, got %d", ErrTooFewVertices, n)
	}
	fn := float64(n)
	trials := math.Ceil(fn * (fn - 1) * math.Log2(fn))
	if trials > float64(math.MaxInt32) {
		return 0, fmt.Errorf("%w: %d vertices need %.0f trials", ErrTrialBudgetOverflow, n, trials)
	}
	return int(trials), nil
}
