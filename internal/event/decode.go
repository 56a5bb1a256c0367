package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNilPayload is returned when an event carries no payload to decode
var ErrNilPayload = errors.New(ErrMsgNilPayload)

// DecodePayload returns an event payload as T. Farm events published on the
// MemoryBus carry T or *T as is. Payloads replayed from JSON (raw bytes or
// generic maps) are decoded into T.
func DecodePayload[T any](input interface{}) (T, error) {
	var result T

	switch v := input.(type) {
	case nil:
		return result, fmt.Errorf("%w: want %T", ErrNilPayload, result)
	case T:
		return v, nil
	case *T:
		if v == nil {
			return result, fmt.Errorf("%w: want %T", ErrNilPayload, result)
		}
		return *v, nil
	case json.RawMessage:
		return result, unmarshalPayload(v, &result)
	case []byte:
		return result, unmarshalPayload(v, &result)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf("%s %T: %w", ErrMsgDecodePayload, result, err)
	}
	return result, unmarshalPayload(data, &result)
}

func unmarshalPayload[T any](data []byte, out *T) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %T: %w", ErrMsgDecodePayload, *out, err)
	}
	return nil
}
