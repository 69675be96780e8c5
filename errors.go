package style

import "errors"

// Sentinel errors for the five error kinds in §7: a malformed selector
// (ErrSyntax), an unknown identifier/keyword/type (ErrNotFound), a
// structural bound exceeded (ErrCapacity), a registration collision
// (ErrDuplicate), and a fatal allocation failure (ErrAllocation). No code
// in this package returns ErrNotFound or ErrAllocation: value-definition
// compile errors wrap valuedef's own ErrSyntax/ErrNotFound instead, and
// allocation failures are left to Go's runtime.
var (
	ErrSyntax     = errors.New("style: syntax error")
	ErrNotFound   = errors.New("style: not found")
	ErrCapacity   = errors.New("style: capacity exceeded")
	ErrDuplicate  = errors.New("style: duplicate registration")
	ErrAllocation = errors.New("style: allocation failed")
)
