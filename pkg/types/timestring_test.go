package types

import (
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
		{name: "valid time", input: "10:00", want: "10:00"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "last minute of day", input: "23:59", want: "23:59"},
		{name: "normalizes missing leading zero", input: "9:05", want: "09:05"},
		{name: "empty string", input: "", wantErr: true},
		{name: "no colon", input: "1000", wantErr: true},
		{name: "extra parts", input: "10:00:00", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "non-numeric hour", input: "aa:00", wantErr: true},
		{name: "non-numeric minute", input: "10:bb", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 8, 29, 14, 30, 45, 0, time.Local)
	assert.Equal(t, TimeString("14:30"), NewTimeString(moment))
}

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		input   TimeString
		want    int
		wantErr bool
	}{
		{input: "00:00", want: 0},
		{input: "09:00", want: 540},
		{input: "10:30", want: 630},
		{input: "20:30", want: 1230},
		{input: "23:59", want: 1439},
		{input: "garbage", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			got, err := tt.input.Minutes()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)

	// Выход за пределы суток
	_, err = TimeString("23:30").AddMinutes(60)
	require.Error(t, err)

	_, err = TimeString("00:10").AddMinutes(-20)
	require.Error(t, err)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))

	// Сравнение не зависит от ведущих нулей
	assert.True(t, TimeString("9:00").IsBefore("10:00"))

	// Невалидные значения сравниваются как false
	assert.False(t, TimeString("garbage").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("garbage"))
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("10:00").IsZero())
}
