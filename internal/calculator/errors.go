package calculator

import "errors"

var ErrInvalidArgument = errors.New("invalid argument")
