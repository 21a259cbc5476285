package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"localmarket/shared/failure"
	"localmarket/shared/validator"

	"github.com/stretchr/testify/assert"
)

type registerBody struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"     validate:"required"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid body",
			body: `{"email":"a@b.com","password":"pw123456","name":"A"}`,
		},
		{
			name:    "malformed json",
			body:    `{"email":`,
			wantErr: "failed to decode request body",
		},
		{
			name:    "missing name",
			body:    `{"email":"a@b.com","password":"pw123456"}`,
			wantErr: "Name is required",
		},
		{
			name:    "short password",
			body:    `{"email":"a@b.com","password":"pw","name":"A"}`,
			wantErr: "Password must be greater than or equal to 8",
		},
		{
			name:    "bad email",
			body:    `{"email":"nope","password":"pw123456","name":"A"}`,
			wantErr: "Email must be a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := registerBody{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("pending", "oneof=pending confirmed completed cancelled"))
	assert.Error(t, validator.ValidateVar("archived", "oneof=pending confirmed completed cancelled"))
}
