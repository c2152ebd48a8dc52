package database

import "errors"

// ErrNotFound is returned by store layers when a well-formed identifier
// matches no document. Handlers translate it to a 404.
var ErrNotFound = errors.New("document not found")
