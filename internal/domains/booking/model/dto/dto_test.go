package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localmarket/internal/domains/booking/model"
	"localmarket/internal/domains/booking/model/dto"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateBookingRequest
		wantErr bool
	}{
		{
			name: "date with minute precision time",
			req:  dto.CreateBookingRequest{ServiceID: 1, PreferredDate: "2026-09-01", PreferredTime: "14:00"},
		},
		{
			name: "time with seconds",
			req:  dto.CreateBookingRequest{ServiceID: 1, PreferredDate: "2026-09-01", PreferredTime: "14:00:30"},
		},
		{
			name:    "malformed date",
			req:     dto.CreateBookingRequest{ServiceID: 1, PreferredDate: "01-09-2026", PreferredTime: "14:00"},
			wantErr: true,
		},
		{
			name:    "malformed time",
			req:     dto.CreateBookingRequest{ServiceID: 1, PreferredDate: "2026-09-01", PreferredTime: "2pm"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking, err := tt.req.ToModel(2, 3)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(2), booking.BuyerID)
			assert.Equal(t, int64(3), booking.VendorID)
			assert.Equal(t, model.StatusPending, booking.Status)
			assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), booking.PreferredDate)
		})
	}
}
