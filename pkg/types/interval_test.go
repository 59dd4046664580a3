package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInterval(t *testing.T) {
	interval, err := NewInterval("10:00", 60)
	require.NoError(t, err)
	assert.Equal(t, Interval{Start: 600, End: 660}, interval)

	_, err = NewInterval("bad", 60)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "identical intervals",
			a:    Interval{Start: 600, End: 660},
			b:    Interval{Start: 600, End: 660},
			want: true,
		},
		{
			name: "contained interval",
			a:    Interval{Start: 600, End: 660},
			b:    Interval{Start: 615, End: 645},
			want: true,
		},
		{
			name: "partial overlap from left",
			a:    Interval{Start: 570, End: 630},
			b:    Interval{Start: 600, End: 660},
			want: true,
		},
		{
			name: "touching endpoints are not a conflict",
			a:    Interval{Start: 600, End: 660},
			b:    Interval{Start: 660, End: 690},
			want: false,
		},
		{
			name: "touching endpoints reversed",
			a:    Interval{Start: 660, End: 690},
			b:    Interval{Start: 600, End: 660},
			want: false,
		},
		{
			name: "disjoint intervals",
			a:    Interval{Start: 540, End: 570},
			b:    Interval{Start: 600, End: 660},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}
