package codec

import (
	"encoding/json"
	"fmt"
)

// Serializer converts a request body value into wire bytes.
type Serializer func(v any) ([]byte, error)

// Deserializer converts wire bytes into a value.
type Deserializer func(data []byte) (any, error)

// SerializationError wraps a failure to encode a request body.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("codec: serialize: %v", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// DeserializationError wraps a failure to decode a response body.
type DeserializationError struct {
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("codec: deserialize: %v", e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// JSONSerialize encodes a value as JSON. It is the default serializer.
func JSONSerialize(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, &SerializationError{Err: err}
	}
	return data, nil
}

// JSONDeserialize decodes JSON bytes into the generic JSON value types
// (map[string]any, []any, string, float64, bool, nil). It is
// the default deserializer.
func JSONDeserialize(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, &DeserializationError{Err: err}
	}
	return v, nil
}

// PassthroughSerialize sends a pre-encoded body unmodified. It accepts
// []byte and string; anything else is an encoding error since there is
// no serializer to turn it into bytes. Use it to disable serialization.
func PassthroughSerialize(v any) ([]byte, error) {
	switch b := v.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case string:
		return []byte(b), nil
	default:
		return nil, &SerializationError{Err: fmt.Errorf("passthrough body must be []byte or string, got %T", v)}
	}
}

// PassthroughDeserialize returns the raw response bytes unmodified.
// Use it to disable deserialization.
func PassthroughDeserialize(data []byte) (any, error) {
	return data, nil
}
