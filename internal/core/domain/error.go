package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest      = errors.New("error parsing request")
	ErrArchiveDisabled = errors.New("allocation archive is not configured")

	// * Input errors.
	ErrInputNotFound = errors.New("input file not found")
	ErrInputParse    = errors.New("input could not be parsed")

	// * Business errors.
	ErrEmptyBatch    = errors.New("no orders to allocate")
	ErrLimitExceeded = errors.New("remaining limit is not enough")
)
