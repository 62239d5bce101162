package cubik

import "errors"

// Sentinel errors for the cubik package.
var (
	// Initialization errors. Both are fatal: the registry and the
	// engine configuration are immutable and everything else depends
	// on them.
	ErrBadRegistry = errors.New("cubik: invalid face registry")
	ErrBadConfig   = errors.New("cubik: invalid engine configuration")
)
