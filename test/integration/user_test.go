package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/test/helpers"
)

func TestUsersMe(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	email := helpers.UniqueEmail("me")
	token, userID := helpers.SignupAndLogin(t, ts, email, "user")

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/users/me", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var me struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &me))
	assert.Equal(t, userID, me.ID)
	assert.Equal(t, email, me.Email)
}

func TestUsersListRequiresAdmin(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, _ := helpers.SignupAndLogin(t, ts, helpers.UniqueEmail("notadmin"), "user")

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/users", token, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "Access denied. Insufficient permissions.")
}

func TestUserGetByEmailSelfOnly(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	selfEmail := helpers.UniqueEmail("self")
	selfToken, _ := helpers.SignupAndLogin(t, ts, selfEmail, "user")

	otherEmail := helpers.UniqueEmail("stranger")
	helpers.SignupAndLogin(t, ts, otherEmail, "user")

	// Свой email - можно
	res, _ := ts.SendRequest(t, http.MethodGet, "/users/"+selfEmail, selfToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Чужой - нельзя
	res, _ = ts.SendRequest(t, http.MethodGet, "/users/"+otherEmail, selfToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// Удаление пользователя уносит его профиль и отклики
func TestUserDeleteCascades(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	companyToken, _ := helpers.SignupAndLogin(t, ts, helpers.UniqueEmail("usercascadeco"), "company")
	helpers.CreateCompanyViaAPI(t, ts, companyToken, "User Cascade Co")
	jobID := helpers.CreateJobViaAPI(t, ts, companyToken, []string{"Go"})

	email := helpers.UniqueEmail("doomed")
	userToken, userID := helpers.SignupAndLogin(t, ts, email, "user")
	helpers.CreateProfileViaAPI(t, ts, userToken, []string{"Go"})
	helpers.ApplyViaAPI(t, ts, userToken, jobID)

	res, bodyStr := ts.SendRequest(t, http.MethodDelete, "/users/"+email, userToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var profileCount, appCount int64
	ts.DB.Table("profiles").Where("user_id = ?", userID).Count(&profileCount)
	ts.DB.Table("applications").Where("user_id = ?", userID).Count(&appCount)
	assert.Zero(t, profileCount, "Профиль удаленного пользователя должен удаляться каскадно")
	assert.Zero(t, appCount, "Отклики удаленного пользователя должны удаляться каскадно")
}
