package partitioner

import "errors"

var (
	ErrInvalidGraph        = errors.New("invalid graph")
	ErrTooFewVertices      = errors.New("too few vertices")
	ErrTrialBudgetOverflow = errors.New("trial budget overflow")
)
