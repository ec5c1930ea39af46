package schema

import "errors"

// ErrSchema indicates that a record shape cannot serve the requested operation:
// no resolvable primary key or more than one key field.
var ErrSchema = errors.New("schema error")
