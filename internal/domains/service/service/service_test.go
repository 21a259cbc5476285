package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"localmarket/infras/otel/mocks"
	serviceMocks "localmarket/internal/domains/service/mocks"
	"localmarket/internal/domains/service/model"
	"localmarket/internal/domains/service/model/dto"
	"localmarket/internal/domains/service/service"
	"localmarket/shared/failure"
)

func TestServiceService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := serviceMocks.NewMockService(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	t.Run("returns listings with aggregates", func(t *testing.T) {
		params := dto.SearchParams{Category: "cleaning"}

		mockRepo.EXPECT().
			Search(gomock.Any(), params).
			Return([]model.Listing{
				{
					Service: model.Service{
						ID:           1,
						CategoryID:   "cleaning",
						Title:        "Deep clean",
						PricePerHour: 25,
						Photos:       []string{"🧽"},
					},
					VendorName:    "Marie",
					CategoryName:  "Cleaning",
					AverageRating: 4.5,
					ReviewCount:   2,
				},
			}, nil)

		res, err := svc.Search(context.Background(), params)

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "Deep clean", res[0].Title)
		assert.Equal(t, 25.0, res[0].Price)
		assert.Equal(t, "Marie", res[0].VendorName)
		assert.Equal(t, 4.5, res[0].Rating)
		assert.Equal(t, 2, res[0].ReviewCount)
	})

	t.Run("defaults photos when the row has none", func(t *testing.T) {
		mockRepo.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			Return([]model.Listing{{Service: model.Service{ID: 2}}}, nil)

		res, err := svc.Search(context.Background(), dto.SearchParams{})

		assert.NoError(t, err)
		assert.Equal(t, []string{model.DefaultPhoto}, res[0].Photos)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.Search(context.Background(), dto.SearchParams{})

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestServiceService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := serviceMocks.NewMockService(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	req := dto.CreateServiceRequest{
		Title:        "Bike tune-up",
		Description:  "Full drivetrain service",
		PricePerHour: 20,
		CategoryID:   "bike-repair",
	}

	t.Run("successful creation", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, service model.Service) (int64, error) {
				assert.Equal(t, int64(3), service.VendorID)
				assert.True(t, service.IsActive)
				assert.Equal(t, model.DefaultLocation, service.Location)
				assert.Equal(t, []string{model.DefaultPhoto}, []string(service.Photos))

				return int64(5), nil
			})

		res, err := svc.Create(context.Background(), 3, req)

		assert.NoError(t, err)
		assert.Equal(t, "Service created successfully", res.Message)
		assert.Equal(t, int64(5), res.Service.ID)
		assert.Equal(t, "bike-repair", res.Service.Category)
		assert.Equal(t, int64(3), res.Service.VendorID)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(int64(0), errors.New("database error"))

		_, err := svc.Create(context.Background(), 3, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}
