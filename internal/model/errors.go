package model

import "errors"

// ErrNotFound is the repository-level sentinel for a missing row.
var ErrNotFound = errors.New("not found")
