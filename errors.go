package batch

import "errors"

const Namespace = "batch"

var (
	ErrInvalidConfig = errors.New(Namespace + ": invalid configuration")
	ErrItemPanicked  = errors.New(Namespace + ": work item panicked")
)
