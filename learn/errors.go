package learn

import "errors"

// ErrInvalidConfig is returned when a Config's time budgets are not
// positive durations.
var ErrInvalidConfig = errors.New("learn: TimeSpan and MaxTotalTime must be positive")
