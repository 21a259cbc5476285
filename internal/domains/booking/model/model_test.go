package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localmarket/internal/domains/booking/model"
)

func TestTimeOfDay_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want model.TimeOfDay
	}{
		{
			// pq decodes a TIME column as a time.Time anchored at year zero
			name: "driver time value",
			src:  time.Date(0, 1, 1, 14, 0, 0, 0, time.UTC),
			want: "14:00:00",
		},
		{name: "raw bytes", src: []byte("09:30:00"), want: "09:30:00"},
		{name: "string", src: "18:45:00", want: "18:45:00"},
		{name: "null", src: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tod model.TimeOfDay

			require.NoError(t, tod.Scan(tt.src))
			assert.Equal(t, tt.want, tod)
		})
	}

	t.Run("unsupported source type", func(t *testing.T) {
		var tod model.TimeOfDay

		assert.Error(t, tod.Scan(42))
	})
}

func TestTimeOfDay_Value(t *testing.T) {
	value, err := model.TimeOfDay("14:00").Value()

	require.NoError(t, err)
	assert.Equal(t, "14:00", value)
}
