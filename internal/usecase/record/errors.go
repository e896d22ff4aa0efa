package record

import "errors"

// errNoRowReturned reports an insert whose RETURNING clause produced no row.
var errNoRowReturned = errors.New("insert returned no row")
