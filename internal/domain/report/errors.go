package report

import "errors"

var ErrUnknownEntity = errors.New("unknown report entity")
