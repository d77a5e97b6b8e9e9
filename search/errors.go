package search

import "errors"

var ErrUnknownStrategy = errors.New("unknown search strategy")
