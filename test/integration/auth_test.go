package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/test/helpers"
)

func TestSignupAndLogin(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	email := helpers.UniqueEmail("signup")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/users/signup", "", map[string]interface{}{
		"email":     email,
		"password":  helpers.TestPassword,
		"firstName": "Alice",
		"lastName":  "Smith",
		"dob":       "1990-01-02",
		"role":      "user",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var created struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, email, created.Email)
	// Хеш пароля не должен утекать в ответ
	assert.NotContains(t, bodyStr, "password")

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/users/login", "", map[string]interface{}{
		"email":    email,
		"password": helpers.TestPassword,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var login struct {
		Token    string `json:"token"`
		Fullname string `json:"fullname"`
		Role     string `json:"role"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &login))
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, "Alice Smith", login.Fullname)
	assert.Equal(t, "user", login.Role)
}

func TestSignupDuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	email := helpers.UniqueEmail("dup")
	helpers.SignupAndLogin(t, ts, email, "user")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/users/signup", "", map[string]interface{}{
		"email":     email,
		"password":  helpers.TestPassword,
		"firstName": "Test",
		"lastName":  "User",
		"dob":       "1995-04-15",
		"role":      "user",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, bodyStr)
}

func TestSignupRejectsWeakPassword(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/users/signup", "", map[string]interface{}{
		"email":     helpers.UniqueEmail("weak"),
		"password":  "short",
		"firstName": "Test",
		"lastName":  "User",
		"dob":       "1995-04-15",
		"role":      "user",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)
}

func TestSignupRejectsAdminRole(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/users/signup", "", map[string]interface{}{
		"email":     helpers.UniqueEmail("admin"),
		"password":  helpers.TestPassword,
		"firstName": "Test",
		"lastName":  "User",
		"dob":       "1995-04-15",
		"role":      "admin",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)
}

func TestLoginUniformErrorMessage(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	email := helpers.UniqueEmail("uniform")
	helpers.SignupAndLogin(t, ts, email, "user")

	// Неизвестный email
	res1, body1 := ts.SendRequest(t, http.MethodPost, "/users/login", "", map[string]interface{}{
		"email":    "nobody@test.com",
		"password": helpers.TestPassword,
	})
	// Неверный пароль
	res2, body2 := ts.SendRequest(t, http.MethodPost, "/users/login", "", map[string]interface{}{
		"email":    email,
		"password": "Wrong-Password-1",
	})

	assert.Equal(t, http.StatusUnauthorized, res1.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, res2.StatusCode)
	assert.Contains(t, body1, "Invalid email or password")
	assert.Contains(t, body2, "Invalid email or password")
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/users/me", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestStatusEndpointIsPublic(t *testing.T) {
	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/status", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "ok")
}
