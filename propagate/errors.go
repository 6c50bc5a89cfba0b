package propagate

import "errors"

// ErrCacheMiss marks a fatal internal condition: a cache
// lookup for a module id outside the owning Table's range. It indicates
// the caller handed the propagator a grid whose bitset domains reference
// modules the table doesn't define, which is a caller bug, not a
// recoverable runtime condition.
var ErrCacheMiss = errors.New("propagate: cache miss for out-of-range module id")
