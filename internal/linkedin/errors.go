package linkedin

import "errors"

var (
	ErrNavigation     = errors.New("navigation failure")
	ErrAuthentication = errors.New("authentication failed")
)
