package enhance

import "github.com/pkg/errors"

// ErrBadArgument is the root of every argument-validation failure
// returned by this package. Callers can test for it with errors.Is;
// the wrapped message carries the offending parameter.
var ErrBadArgument = errors.New("bad argument")
