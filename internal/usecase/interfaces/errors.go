package interfaces

import "errors"

// ErrConditionalCheckFailed is returned by repositories when a guarded write
// loses its condition (stock decrement, mechanic availability flip, status
// compare-and-set). The use case layer translates it into the precise domain
// error after re-reading the record.
var ErrConditionalCheckFailed = errors.New("conditional check failed")
