package chained

import "errors"

// These are panic values reporting misuse of a table; no operation
// returns them as errors.
var (
	ErrNilTable         = errors.New("chained: nil table")
	ErrTableFreed       = errors.New("chained: table used after free")
	ErrNilApplyFunc     = errors.New("chained: nil apply func")
	ErrMutatedDuringMap = errors.New("chained: table mutated during map")
)
