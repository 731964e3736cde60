package uotype

import "errors"

// ErrInvalidArgument is returned when a descriptor field does not fit its
// bit range or lies outside its enumerated values.
var ErrInvalidArgument = errors.New("invalid type descriptor argument")
