package dscache

import "errors"

// ErrMiss indicates a remote tier lookup found no value for the key.
var ErrMiss = errors.New("dscache: key not present")
