package jwt_test

import (
	"testing"

	"localmarket/config"
	"localmarket/infras/jwt"

	"github.com/stretchr/testify/assert"
)

func newConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "localmarket-test"
	cfg.JWT.Secret = secret
	cfg.JWT.ExpireDays = 7

	return cfg
}

func TestGenerateAndValidate(t *testing.T) {
	svc := jwt.New(newConfig("test-secret"))

	token, err := svc.Generate(42, "vendor@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "vendor@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
}

func TestValidate_WrongSecret(t *testing.T) {
	issuer := jwt.New(newConfig("secret-a"))
	verifier := jwt.New(newConfig("secret-b"))

	token, err := issuer.Generate(1, "a@b.com")
	assert.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidate_Garbage(t *testing.T) {
	svc := jwt.New(newConfig("test-secret"))

	_, err := svc.Validate("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := jwt.ExtractTokenFromHeader(tt.header)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
