package loader

import "errors"

// ErrInvalidRow is returned when a CSV row has fewer than the three
// required columns, or a fourth (timestamp) column that isn't numeric.
var ErrInvalidRow = errors.New("loader: row must have subject,relation,object[,timestamp]")
