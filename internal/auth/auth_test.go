package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticVerifier(t *testing.T) {
	v := NewStaticVerifier(map[string]string{
		"tok-1": "u1:pat@example.com",
		"tok-2": "u2",
	})

	identity, err := v.Verify(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "u1", identity.UserID)
	assert.Equal(t, "pat@example.com", identity.Email)

	identity, err = v.Verify(context.Background(), "tok-2")
	require.NoError(t, err)
	assert.Equal(t, "u2", identity.UserID)
	assert.Empty(t, identity.Email)

	_, err = v.Verify(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestMiddleware(t *testing.T) {
	v := NewStaticVerifier(map[string]string{"tok-1": "u1:pat@example.com"})

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		require.True(t, ok)
		gotUserID = identity.UserID
	})

	handler := Middleware(v)(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "missing header")

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "unknown token")

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", gotUserID)
}
