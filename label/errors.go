package label

import "errors"

// Sentinel errors for label classification.
var (
	// ErrLabelTooLong indicates a label's atom list has more than 5
	// elements; classification rejects it before installation.
	ErrLabelTooLong = errors.New("label: list longer than 5 atoms")
)
