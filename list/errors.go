package list

import "errors"

// ErrForeignElement flags an element handle that does not belong to the
// list it was passed to, including handles already removed.
var ErrForeignElement = errors.New("list: element not in this list")
