package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t, "auth_register")
	r := setupRouter(db)

	registerPayload := map[string]string{
		"email":    "test@example.com",
		"password": "password123",
		"name":     "Test User",
		"phone":    "5550001111",
	}
	w := performRequest(r, "POST", "/auth/register", registerPayload, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeResponse(t, w)
	assert.Equal(t, true, resp["status"])
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "user", user["role"])
	// Password hash tidak boleh bocor ke response
	_, leaked := user["password"]
	assert.False(t, leaked)

	loginPayload := map[string]string{
		"email":    "test@example.com",
		"password": "password123",
	}
	w = performRequest(r, "POST", "/auth/login", loginPayload, "")
	assert.Equal(t, http.StatusOK, w.Code)

	resp = decodeResponse(t, w)
	data = resp["data"].(map[string]interface{})
	token, ok := data["access_token"].(string)
	assert.True(t, ok)
	assert.NotEmpty(t, token)

	w = performRequest(r, "GET", "/auth/me", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	resp = decodeResponse(t, w)
	me := resp["data"].(map[string]interface{})
	assert.Equal(t, "test@example.com", me["email"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t, "auth_duplicate")
	r := setupRouter(db)

	payload := map[string]string{
		"email":    "dup@example.com",
		"password": "password123",
	}
	w := performRequest(r, "POST", "/auth/register", payload, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(r, "POST", "/auth/register", payload, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := newTestDB(t, "auth_badcreds")
	r := setupRouter(db)

	createUser(t, db, "known@example.com", "user")

	w := performRequest(r, "POST", "/auth/login", map[string]string{
		"email":    "known@example.com",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(r, "POST", "/auth/login", map[string]string{
		"email":    "unknown@example.com",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeRequiresToken(t *testing.T) {
	db := newTestDB(t, "auth_me_unauth")
	r := setupRouter(db)

	w := performRequest(r, "GET", "/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
