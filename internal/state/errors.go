package state

import "errors"

// ErrStale is returned when snapshot data has not been updated within the stale threshold.
var ErrStale = errors.New("state: dynamics snapshot is stale")
