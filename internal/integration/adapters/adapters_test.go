package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func TestHTTPUserDirectorySuggest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"users":[
			{"id":1,"firstName":"Terry","lastName":"Medhurst"},
			{"id":2,"firstName":"Sheldon","lastName":"Quigley"}
		]}`))
	}))
	defer server.Close()

	users, err := NewHTTPUserDirectory(server.URL).Suggest(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, 1, users[0].ID)
	assert.Equal(t, "Terry Medhurst", users[0].DisplayName)
}

func TestHTTPUserDirectoryErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewHTTPUserDirectory(server.URL).Suggest(context.Background())
	require.Error(t, err)
}

func TestJWTTokenServiceRoundTrip(t *testing.T) {
	svc := NewJWTTokenService("test-secret", time.Minute)

	token, err := svc.GenerateAccessToken(context.Background(), "me@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Minute), claims.ExpiresAt, 5*time.Second)
}

func TestJWTTokenServiceRejectsForeignSignature(t *testing.T) {
	token, err := NewJWTTokenService("secret-a", time.Minute).
		GenerateAccessToken(context.Background(), "me@example.com")
	require.NoError(t, err)

	_, err = NewJWTTokenService("secret-b", time.Minute).
		ValidateAccessToken(context.Background(), token)
	require.ErrorIs(t, err, domainerror.ErrInvalidToken)
}

func TestJWTTokenServiceRejectsExpired(t *testing.T) {
	token, err := NewJWTTokenService("test-secret", -time.Minute).
		GenerateAccessToken(context.Background(), "me@example.com")
	require.NoError(t, err)

	_, err = NewJWTTokenService("test-secret", -time.Minute).
		ValidateAccessToken(context.Background(), token)
	require.ErrorIs(t, err, domainerror.ErrInvalidToken)
}

func TestPasswordServiceStrength(t *testing.T) {
	svc := NewBcryptPasswordService()
	require.NoError(t, svc.ValidatePasswordStrength("longenough"))
	require.ErrorIs(t, svc.ValidatePasswordStrength("short"), domainerror.ErrPasswordTooShort)
}
