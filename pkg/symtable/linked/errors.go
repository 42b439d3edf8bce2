package linked

import "errors"

// These are panic values reporting misuse of a table; no operation
// returns them as errors.
var (
	ErrNilTable         = errors.New("linked: nil table")
	ErrTableFreed       = errors.New("linked: table used after free")
	ErrNilApplyFunc     = errors.New("linked: nil apply func")
	ErrMutatedDuringMap = errors.New("linked: table mutated during map")
)
