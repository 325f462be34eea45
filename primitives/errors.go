package primitives

import "errors"

// ErrInvalidArgument is returned by builders when they are given an argument
// that can never produce a valid flow, such as a non-positive take count. It
// is always returned before any collection starts.
var ErrInvalidArgument = errors.New("invalid argument")
