package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"localmarket/config"
	"localmarket/infras/jwt"
	"localmarket/infras/otel/mocks"
	"localmarket/internal/domains/auth/model/dto"
	"localmarket/internal/domains/auth/service"
	userMocks "localmarket/internal/domains/user/mocks"
	userModel "localmarket/internal/domains/user/model"
	"localmarket/shared/failure"
	"localmarket/shared/password"
)

func newTestJWT() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "localmarket-test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireDays = 7

	return jwt.New(cfg)
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, newTestJWT(), mockOtel)

	req := dto.RegisterRequest{
		Email:    "a@b.com",
		Password: "pw123456",
		Name:     "A",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful registration",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(1), nil)
			},
			wantErr: false,
		},
		{
			name: "email already registered",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Register(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "User created successfully", res.Message)
			assert.Equal(t, int64(1), res.User.ID)
			assert.Equal(t, "a@b.com", res.User.Email)
			assert.False(t, res.User.IsVendor)
			assert.NotEmpty(t, res.Token)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, newTestJWT(), mockOtel)

	hash, err := password.Hash("pw123456")
	assert.NoError(t, err)

	storedUser := userModel.User{
		ID:           1,
		Email:        "a@b.com",
		PasswordHash: hash,
		Name:         "A",
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "a@b.com", Password: "pw123456"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedUser, nil)
			},
			wantErr: false,
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "nobody@b.com", Password: "pw123456"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "a@b.com", Password: "wrong-password"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedUser, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Equal(t, "Invalid credentials", err.Error())

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Login successful", res.Message)
			assert.Equal(t, int64(1), res.User.ID)
			assert.NotEmpty(t, res.Token)
		})
	}
}
