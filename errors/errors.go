package errors

import "fmt"

var (
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidEvent    = fmt.Errorf("invalid event")
	ErrInvalidScript   = fmt.Errorf("invalid script")
)
