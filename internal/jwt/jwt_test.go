package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndGetClaims(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Hour))
	ctx := context.Background()
	userID := uuid.New()

	token, err := j.Generate(ctx, userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestValidate(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Hour))
	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.New())
	assert.NoError(t, err)

	assert.NoError(t, j.Validate(ctx, token))
	assert.Error(t, j.Validate(ctx, "not-a-token"))
}

func TestValidateWrongSecret(t *testing.T) {
	ctx := context.Background()

	token, err := New(WithSecretKey("secret-a")).Generate(ctx, uuid.New())
	assert.NoError(t, err)

	assert.Error(t, New(WithSecretKey("secret-b")).Validate(ctx, token))
}

func TestValidateExpired(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.New())
	assert.NoError(t, err)

	assert.Error(t, j.Validate(ctx, token))
}

func TestGetTokenFromRequest(t *testing.T) {
	j := New(WithSecretKey("test-secret"))
	ctx := context.Background()

	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "missing header", header: "", wantErr: ErrMissingAuthHeader},
		{name: "wrong scheme", header: "Basic abc", wantErr: ErrMalformedAuthHeader},
		{name: "no token", header: "Bearer", wantErr: ErrMalformedAuthHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
