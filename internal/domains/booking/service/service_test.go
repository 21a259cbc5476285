package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"localmarket/infras/otel/mocks"
	bookingMocks "localmarket/internal/domains/booking/mocks"
	"localmarket/internal/domains/booking/model"
	"localmarket/internal/domains/booking/model/dto"
	"localmarket/internal/domains/booking/service"
	serviceMocks "localmarket/internal/domains/service/mocks"
	serviceModel "localmarket/internal/domains/service/model"
	"localmarket/shared/failure"
)

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockServiceRepo := serviceMocks.NewMockService(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockServiceRepo, mockOtel)

	req := dto.CreateBookingRequest{
		ServiceID:     7,
		PreferredDate: "2026-09-01",
		PreferredTime: "14:00",
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful booking",
			req:  req,
			setupMock: func() {
				mockServiceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(serviceModel.Service{ID: 7, VendorID: 3}, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) (int64, error) {
						assert.Equal(t, int64(3), booking.VendorID)
						assert.Equal(t, model.StatusPending, booking.Status)

						return int64(10), nil
					})
			},
			wantErr: false,
		},
		{
			name: "service does not exist",
			req:  req,
			setupMock: func() {
				mockServiceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(serviceModel.Service{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "malformed date",
			req: dto.CreateBookingRequest{
				ServiceID:     7,
				PreferredDate: "not-a-date",
				PreferredTime: "14:00",
			},
			setupMock: func() {
				mockServiceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(serviceModel.Service{ID: 7, VendorID: 3}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			req:  req,
			setupMock: func() {
				mockServiceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(serviceModel.Service{ID: 7, VendorID: 3}, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), 2, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Booking request sent successfully", res.Message)
			assert.Equal(t, int64(10), res.Booking.ID)
			assert.Equal(t, "2026-09-01", res.Booking.PreferredDate)
			assert.Equal(t, model.StatusPending, res.Booking.Status)
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockServiceRepo := serviceMocks.NewMockService(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockServiceRepo, mockOtel)

	amount := 50.0
	req := dto.UpdateStatusRequest{Status: model.StatusConfirmed, TotalAmount: &amount}

	t.Run("successful transition", func(t *testing.T) {
		mockRepo.EXPECT().
			UpdateStatusForVendor(gomock.Any(), int64(10), int64(3), model.StatusConfirmed, nil, &amount).
			Return(model.Booking{ID: 10, VendorID: 3, Status: model.StatusConfirmed, TotalAmount: &amount}, true, nil)

		res, err := svc.UpdateStatus(context.Background(), 10, 3, req)

		assert.NoError(t, err)
		assert.Equal(t, "Booking status updated successfully", res.Message)
		assert.Equal(t, model.StatusConfirmed, res.Booking.Status)
		assert.Equal(t, &amount, res.Booking.TotalAmount)
	})

	t.Run("booking owned by another vendor", func(t *testing.T) {
		mockRepo.EXPECT().
			UpdateStatusForVendor(gomock.Any(), int64(10), int64(99), model.StatusConfirmed, nil, &amount).
			Return(model.Booking{}, false, nil)

		_, err := svc.UpdateStatus(context.Background(), 10, 99, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockServiceRepo := serviceMocks.NewMockService(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockServiceRepo, mockOtel)

	t.Run("buyer view", func(t *testing.T) {
		mockRepo.EXPECT().
			ListForBuyer(gomock.Any(), int64(2)).
			Return([]model.BuyerView{
				{Booking: model.Booking{ID: 10, BuyerID: 2, VendorID: 3}, ServiceTitle: "T", VendorName: "V"},
			}, nil)

		res, err := svc.ListForBuyer(context.Background(), 2)

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "T", res[0].ServiceTitle)
		assert.Equal(t, "V", res[0].VendorName)
	})

	t.Run("vendor view", func(t *testing.T) {
		mockRepo.EXPECT().
			ListForVendor(gomock.Any(), int64(3)).
			Return([]model.VendorView{
				{Booking: model.Booking{ID: 10, BuyerID: 2, VendorID: 3}, ServiceTitle: "T", BuyerName: "B"},
			}, nil)

		res, err := svc.ListForVendor(context.Background(), 3)

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "B", res[0].BuyerName)
	})
}
