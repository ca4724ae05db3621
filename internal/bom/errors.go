package bom

import "errors"

var (
	// ErrInputNotFound indicates the BOM file is missing or unreadable.
	ErrInputNotFound = errors.New("input not found")

	// ErrMalformedRecord indicates a BOM line could not be parsed into a record.
	ErrMalformedRecord = errors.New("malformed record")
)
