package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtruong/skillswap/internal/types"
)

func TestRegisterAndLogin(t *testing.T) {
	srv, _, _ := newTestServer(t)
	routes := srv.routes()

	token, _ := registerMember(t, srv, "alice@example.com")
	require.NotEmpty(t, token, "register returned empty token")

	rec := doJSON(t, routes, "POST", "/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice@example.com", resp.User.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	srv, _, _ := newTestServer(t)
	registerMember(t, srv, "bob@example.com")

	rec := doJSON(t, srv.routes(), "POST", "/auth/register", "", map[string]string{
		"name": "Bob Again", "email": "bob@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	srv, _, _ := newTestServer(t)
	routes := srv.routes()

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing email", map[string]string{"name": "X", "password": "password123"}},
		{"bad email", map[string]string{"name": "X", "email": "not-an-email", "password": "password123"}},
		{"short password", map[string]string{"name": "X", "email": "x@example.com", "password": "short"}},
		{"missing name", map[string]string{"email": "x@example.com", "password": "password123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, routes, "POST", "/auth/register", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	srv, _, _ := newTestServer(t)
	registerMember(t, srv, "carol@example.com")
	routes := srv.routes()

	// Wrong password and unknown email produce the same status
	for _, body := range []map[string]string{
		{"email": "carol@example.com", "password": "wrong-password"},
		{"email": "nobody@example.com", "password": "password123"},
	} {
		rec := doJSON(t, routes, "POST", "/auth/login", "", body)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "login %v", body["email"])
	}
}

func TestJWTRoundTrip(t *testing.T) {
	srv, _, _ := newTestServer(t)

	token, userID := registerMember(t, srv, "dave@example.com")

	claims, err := srv.jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestJWTRejectsTampered(t *testing.T) {
	srv, _, _ := newTestServer(t)
	token, _ := registerMember(t, srv, "eve@example.com")

	_, err := srv.jwtService.ValidateToken(token + "x")
	assert.Error(t, err, "tampered token")

	_, err = srv.jwtService.ValidateToken("")
	assert.Error(t, err, "empty token")

	_, err = srv.jwtService.ValidateToken("not.a.token")
	assert.Error(t, err, "malformed token")
}
