package dictionary

import "errors"

var (
	ErrInvalidDocument = errors.New("dictionary: document is not an object tree")
	ErrNotFound        = errors.New("dictionary: resource not found")
	ErrFetchFailed     = errors.New("dictionary: fetch failed")
)
