package errors

import "errors"

// requested record does not exist.
var ErrMissing = errors.New("missing")

// the store rejected a write because of a uniqueness constraint.
var ErrConflict = errors.New("conflict")
