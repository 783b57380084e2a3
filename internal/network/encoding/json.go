package encoding

import (
	"encoding/json"
	"errors"
	"io"
)

// MaxBodySize caps how much of a request or response body will be decoded.
const MaxBodySize = 64 << 10

var (
	ErrDecodeJSON = errors.New("failed to decode JSON")
	ErrEncodeJSON = errors.New("failed to encode JSON")
)

// UnmarshalJSON decodes a single json document of type T, reading at most MaxBodySize bytes.
func UnmarshalJSON[T any](reader io.Reader) (T, error) {
	var value T
	if err := json.NewDecoder(io.LimitReader(reader, MaxBodySize)).Decode(&value); err != nil {
		return value, errors.Join(err, ErrDecodeJSON)
	}

	return value, nil
}

// UnmarshalStrictJSON is like UnmarshalJSON but rejects unknown fields.
func UnmarshalStrictJSON[T any](reader io.Reader) (T, error) {
	var value T

	decoder := json.NewDecoder(io.LimitReader(reader, MaxBodySize))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&value); err != nil {
		return value, errors.Join(err, ErrDecodeJSON)
	}

	return value, nil
}

func MarshalJSON(writer io.Writer, value any) error {
	if err := json.NewEncoder(writer).Encode(value); err != nil {
		return errors.Join(err, ErrEncodeJSON)
	}

	return nil
}
