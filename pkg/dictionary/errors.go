package dictionary

import "errors"

// Insert and construction errors. All are returned to the caller, never
// handled internally; match them with errors.Is.
var (
	ErrWordTooLong     = errors.New("dictionary: word exceeds maximum length")
	ErrAllocation      = errors.New("dictionary: storage could not be obtained")
	ErrLoadFailure     = errors.New("dictionary: required growth did not complete")
	ErrInvalidCapacity = errors.New("dictionary: capacity must be positive")
	ErrUnloaded        = errors.New("dictionary: table has been unloaded")
)

// Source errors
var (
	ErrTruncatedChunk = errors.New("dictionary: chunk data is truncated")
	ErrInvalidChunk   = errors.New("dictionary: chunk header is invalid")
	ErrUnknownFormat  = errors.New("dictionary: unknown dictionary format")
)
