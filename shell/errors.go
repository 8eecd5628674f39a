package shell

import "errors"

var (
	// ErrEncodingResultFailed is returned when a query result could not be encoded to JSON.
	ErrEncodingResultFailed = errors.New("encoding query result failed")

	// ErrDecodingResultFailed is returned when JSON could not be decoded into a query result.
	ErrDecodingResultFailed = errors.New("decoding query result failed")
)
