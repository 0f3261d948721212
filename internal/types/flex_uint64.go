package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexUint64 accepts a JSON number or a numeric JSON string. The public signup
// form posts course_id as a string, authenticated clients send a number.
type FlexUint64 uint64

func (f *FlexUint64) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("FlexUint64: %w", err)
		}
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("FlexUint64: invalid value %q: %w", s, err)
		}
		*f = FlexUint64(n)
		return nil
	}

	var n uint64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("FlexUint64: expected number or numeric string: %w", err)
	}
	*f = FlexUint64(n)
	return nil
}

func (f FlexUint64) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint64(f))
}

func (f FlexUint64) Uint64() uint64 {
	return uint64(f)
}
