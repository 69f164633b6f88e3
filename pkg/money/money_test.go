package money

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Amount
		wantErr bool
	}{
		{name: "whole naira", raw: "10000", want: Naira(10000)},
		{name: "two decimals", raw: "1500.50", want: Kobo(150050)},
		{name: "one decimal", raw: "1500.5", want: Kobo(150050)},
		{name: "rounds half up", raw: "0.125", want: Kobo(13)},
		{name: "rounds up into whole", raw: "1.999", want: Naira(2)},
		{name: "leading dot", raw: ".5", want: Kobo(50)},
		{name: "negative", raw: "-20", want: Naira(-20)},
		{name: "spaces trimmed", raw: "  42 ", want: Naira(42)},
		{name: "empty", raw: "", wantErr: true},
		{name: "garbage", raw: "abc", wantErr: true},
		{name: "bad fraction", raw: "1.2x", wantErr: true},
		{name: "lonely dot", raw: ".", wantErr: true},
		{name: "exponent", raw: "1e5", want: Naira(100000)},
		{name: "negative exponent", raw: "15e-1", want: Kobo(150)},
		{name: "tiny exponent rounds to zero", raw: "1e-9", want: 0},
		{name: "largest amount", raw: "92233720368547758.07", want: Kobo(math.MaxInt64)},
		{name: "just above int64", raw: "92233720368547758.08", wantErr: true},
		{name: "seventeen nines", raw: "99999999999999999", wantErr: true},
		{name: "huge exponent", raw: "1e999999", wantErr: true},
		{name: "huge negative", raw: "-99999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAmount_String(t *testing.T) {
	assert.Equal(t, "37000", Naira(37000).String())
	assert.Equal(t, "1500.5", Kobo(150050).String())
	assert.Equal(t, "0.05", Kobo(5).String())
	assert.Equal(t, "-12.3", Kobo(-1230).String())
	assert.Equal(t, "0", Amount(0).String())
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Number  Amount `json:"number"`
		Text    Amount `json:"text"`
		Null    Amount `json:"null"`
		Blank   Amount `json:"blank"`
		Missing Amount `json:"missing"`
	}

	err := json.Unmarshal([]byte(`{"number": 10000, "text": "2500.75", "null": null, "blank": ""}`), &payload)
	require.NoError(t, err)

	assert.Equal(t, Naira(10000), payload.Number)
	assert.Equal(t, Kobo(250075), payload.Text)
	assert.True(t, payload.Null.IsZero())
	assert.True(t, payload.Blank.IsZero())
	assert.True(t, payload.Missing.IsZero())
}

func TestAmount_UnmarshalJSON_Invalid(t *testing.T) {
	var a Amount
	err := json.Unmarshal([]byte(`"twelve"`), &a)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestAmount_UnmarshalJSON_ExponentNumber(t *testing.T) {
	var payload struct {
		Price Amount `json:"p"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"p": 1e5}`), &payload))
	assert.Equal(t, Naira(100000), payload.Price)
}

func TestAmount_UnmarshalJSON_Overflow(t *testing.T) {
	var a Amount
	err := json.Unmarshal([]byte(`99999999999999999`), &a)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestAmount_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Amount{"total": Kobo(3700050)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total": 37000.5}`, string(data))
}

func TestAmount_Scan(t *testing.T) {
	var a Amount

	require.NoError(t, a.Scan([]byte("12000.00")))
	assert.Equal(t, Naira(12000), a)

	require.NoError(t, a.Scan(int64(7)))
	assert.Equal(t, Naira(7), a)

	require.NoError(t, a.Scan(float64(2.5)))
	assert.Equal(t, Kobo(250), a)

	require.NoError(t, a.Scan(nil))
	assert.True(t, a.IsZero())

	assert.Error(t, a.Scan(true))
	assert.ErrorIs(t, a.Scan(int64(math.MaxInt64)), ErrOutOfRange)
	assert.ErrorIs(t, a.Scan(math.NaN()), ErrInvalidAmount)
}

func TestAmount_Arithmetic(t *testing.T) {
	assert.Equal(t, Naira(30000), Naira(10000).Multiply(3))
	assert.Equal(t, Naira(37000), Naira(30000).Add(Naira(7000)))
	assert.Equal(t, Amount(0), Naira(10000).Multiply(0))
	assert.True(t, Naira(-1).IsNegative())
	assert.False(t, Amount(0).IsNegative())
}
