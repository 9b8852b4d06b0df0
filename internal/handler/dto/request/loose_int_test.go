//go:build unit

package request_test

import (
	"encoding/json"
	"testing"

	"sauna-booking/internal/handler/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooseInt_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		want    *int
		invalid bool
	}{
		{name: "number", body: `{"guests": 4}`, want: intPtr(4)},
		{name: "numeric string", body: `{"guests": "4"}`, want: intPtr(4)},
		{name: "padded string", body: `{"guests": " 7 "}`, want: intPtr(7)},
		{name: "fractional number truncates", body: `{"guests": 3.9}`, want: intPtr(3)},
		{name: "negative", body: `{"guests": -2}`, want: intPtr(-2)},
		{name: "absent", body: `{}`},
		{name: "null", body: `{"guests": null}`},
		{name: "word", body: `{"guests": "four"}`, invalid: true},
		{name: "empty string", body: `{"guests": ""}`, invalid: true},
		{name: "boolean", body: `{"guests": true}`, invalid: true},
		{name: "int32 max", body: `{"guests": 2147483647}`, want: intPtr(2147483647)},
		{name: "above int32", body: `{"guests": 4294967297}`, invalid: true},
		{name: "above int32 as string", body: `{"guests": "2147483648"}`, invalid: true},
		{name: "huge float", body: `{"guests": 1e300}`, invalid: true},
		{name: "huge negative float", body: `{"guests": -1e300}`, invalid: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got struct {
				Guests request.LooseInt `json:"guests"`
			}
			require.NoError(t, json.Unmarshal([]byte(tc.body), &got))
			assert.Equal(t, tc.want, got.Guests.Value)
			assert.Equal(t, tc.invalid, got.Guests.Invalid)
		})
	}
}

func TestReserveRequest_ToInput(t *testing.T) {
	decode := func(t *testing.T, body string) request.ReserveRequest {
		t.Helper()
		var req request.ReserveRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		return req
	}

	assert.Equal(t, 1, decode(t, `{}`).ToInput().Guests)
	assert.Equal(t, 5, decode(t, `{"guests":"5"}`).ToInput().Guests)
	assert.Equal(t, 0, decode(t, `{"guests":"lots"}`).ToInput().Guests)
}

func TestUpdateSlotRequest_ToInput(t *testing.T) {
	var req request.UpdateSlotRequest
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2025-03-10","start_time":"09:00","end_time":"11:00","capacity_social":"abc","is_blocked":true}`), &req))

	in := req.ToInput()
	assert.Nil(t, in.CapacitySocial)
	assert.True(t, in.IsBlocked)
	assert.Equal(t, "09:00", in.StartTime)
}

func TestLooseInt_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(request.LooseInt{Value: intPtr(3)})
	require.NoError(t, err)
	assert.JSONEq(t, `3`, string(b))

	b, err = json.Marshal(request.LooseInt{})
	require.NoError(t, err)
	assert.JSONEq(t, `null`, string(b))
}

func intPtr(i int) *int { return &i }
