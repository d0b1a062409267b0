package storage

import "errors"

var (
	// ErrMalformedLine is returned when a persisted line cannot be decoded.
	ErrMalformedLine = errors.New("storage: malformed line")
	// ErrDuplicateKey is returned when the database rejects a row because
	// its key already exists.
	ErrDuplicateKey = errors.New("storage: duplicate key")
)
