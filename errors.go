package vec

import "github.com/pkg/errors"

// ErrIndexOutOfRange is reported by At when the requested index is outside
// the live element range. Test for it with errors.Is.
var ErrIndexOutOfRange = errors.New("vec: index out of range")
