package types

import (
	"bytes"
	"encoding/json"
)

// FlexList accepts a JSON array or a bare JSON object, which is wrapped into a
// one-element slice. Course payloads send one schedule entry or many.
type FlexList[T any] []T

func (f *FlexList[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '[' {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*f = FlexList[T](items)
		return nil
	}

	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}
	*f = FlexList[T]{item}
	return nil
}

func (f FlexList[T]) Slice() []T {
	return []T(f)
}
