package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"localmarket/infras/otel"
	"localmarket/infras/otel/mocks"
	categoryMocks "localmarket/internal/domains/category/mocks"
	"localmarket/internal/domains/category/model"
	"localmarket/internal/domains/category/service"
	gDto "localmarket/shared/dto"
	"localmarket/shared/failure"
)

// recordingScope captures the errors a span would receive.
type recordingScope struct {
	otel.Scope
	errs []error
}

func (s *recordingScope) End() {}

func (s *recordingScope) TraceIfError(err error) {
	if err != nil {
		s.errs = append(s.errs, err)
	}
}

type recordingOtel struct {
	scope *recordingScope
}

func (o *recordingOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, o.scope
}

func TestCategoryService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := categoryMocks.NewMockCategory(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	t.Run("returns categories sorted by name", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gDto.QueryParams{SortBy: model.FieldName, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{}).
			Return([]model.Category{
				{ID: "bike-repair", Name: "Bike Repair", Icon: "🚲"},
				{ID: "cleaning", Name: "Cleaning", Icon: "🧽"},
			}, nil)

		res, err := svc.GetAll(context.Background())

		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, "bike-repair", res[0].ID)
		assert.Equal(t, "🧽", res[1].Icon)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.GetAll(context.Background())

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestCategoryService_GetAll_TracesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := categoryMocks.NewMockCategory(ctrl)
	scope := &recordingScope{}
	svc := service.New(mockRepo, &recordingOtel{scope: scope})

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("database error"))

	_, err := svc.GetAll(context.Background())

	assert.Error(t, err)
	// the deferred trace must see the error assigned after the defer statement
	assert.Len(t, scope.errs, 1)
}
