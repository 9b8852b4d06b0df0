package request

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// LooseInt accepts a JSON number or a numeric string, as the public forms
// send either. Anything else decodes without error, leaves Value nil and
// sets Invalid; an absent or null field leaves both unset. Values outside the
// int32 range of the store columns are Invalid too.
type LooseInt struct {
	Value   *int
	Invalid bool
}

func (l *LooseInt) UnmarshalJSON(data []byte) error {
	l.Value = nil
	l.Invalid = false
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var num json.Number
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			l.Invalid = true
			return nil
		}
		num = json.Number(strings.TrimSpace(s))
	} else {
		num = json.Number(data)
	}

	if n, err := strconv.ParseInt(num.String(), 10, 32); err == nil {
		i := int(n)
		l.Value = &i
		return nil
	}
	if f, err := num.Float64(); err == nil && f >= math.MinInt32 && f <= math.MaxInt32 {
		i := int(f)
		l.Value = &i
		return nil
	}
	l.Invalid = true
	return nil
}

func (l LooseInt) Or(fallback int) int {
	if l.Value == nil {
		return fallback
	}
	return *l.Value
}

func (l LooseInt) MarshalJSON() ([]byte, error) {
	if l.Value == nil {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(*l.Value)), nil
}
