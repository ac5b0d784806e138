package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid time", input: "19:00", want: "19:00"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "end of day", input: "23:59", want: "23:59"},
		{name: "with seconds", input: "19:00:00", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "out of range minute", input: "19:75", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "dinner", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeStringComparison(t *testing.T) {
	assert.True(t, TimeString("12:00").IsBefore("12:30"))
	assert.False(t, TimeString("12:30").IsBefore("12:00"))
	assert.False(t, TimeString("12:00").IsBefore("12:00"))

	assert.True(t, TimeString("20:00").IsAfter("19:30"))
	assert.False(t, TimeString("19:30").IsAfter("19:30"))
}

func TestTimeStringAddMinutes(t *testing.T) {
	got, err := TimeString("19:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("20:30"), got)

	// Переход через полночь
	got, err = TimeString("23:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:15"), got)
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	// Postgres TIME приходит как "HH:MM:SS"
	require.NoError(t, ts.Scan("19:30:00"))
	assert.Equal(t, TimeString("19:30"), ts)

	require.NoError(t, ts.Scan([]byte("12:00:00")))
	assert.Equal(t, TimeString("12:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 1, 1, 18, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("18:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeStringValue(t *testing.T) {
	v, err := TimeString("19:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "19:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}

func TestTimeStringJSON(t *testing.T) {
	data, err := json.Marshal(TimeString("19:00"))
	require.NoError(t, err)
	assert.Equal(t, `"19:00"`, string(data))

	var ts TimeString
	require.NoError(t, json.Unmarshal([]byte(`"20:30"`), &ts))
	assert.Equal(t, TimeString("20:30"), ts)

	assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &ts))
}
