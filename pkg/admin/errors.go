package admin

import "errors"

var (
	errNilStream   = errors.New("hierarchy stream cannot be nil")
	errNotAnArray  = errors.New("hierarchy must be a JSON array of provinces")
	errMissingCode = errors.New("province has no code")
)
