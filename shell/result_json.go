package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
)

var resultJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// EncodeResult serializes a query result to JSON.
func EncodeResult(result QueryResult) ([]byte, error) {
	data, err := resultJSON.Marshal(result)
	if err != nil {
		return nil, errors.Join(ErrEncodingResultFailed, err)
	}

	return data, nil
}

// DecodeResult deserializes JSON produced by EncodeResult into result, which must be a pointer.
func DecodeResult(data []byte, result QueryResult) error {
	if err := resultJSON.Unmarshal(data, result); err != nil {
		return errors.Join(ErrDecodingResultFailed, err)
	}

	return nil
}
