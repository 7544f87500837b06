package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/test/helpers"
)

func TestApplicationFlow(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	companyToken, _ := helpers.SignupAndLogin(t, ts, helpers.UniqueEmail("appco"), "company")
	helpers.CreateCompanyViaAPI(t, ts, companyToken, "App Co")
	jobID := helpers.CreateJobViaAPI(t, ts, companyToken, []string{"Go"})

	userToken, userID := helpers.SignupAndLogin(t, ts, helpers.UniqueEmail("appuser"), "user")
	applicationID := helpers.ApplyViaAPI(t, ts, userToken, jobID)

	// Отклик появляется в списке пользователя со статусом pending
	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/applications/me", userToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var mine []struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
		UserID uint   `json:"userId"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, applicationID, mine[0].ID)
	assert.Equal(t, "pending", mine[0].Status)
	assert.Equal(t, userID, mine[0].UserID)

	// Компания видит отклики на свою вакансию
	res, bodyStr = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/applications/job/%d", jobID), companyToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, "pending")

	// Компания принимает отклик
	res, bodyStr = ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/applications/%d/status", applicationID), companyToken, map[string]interface{}{
		"status": "accepted",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, "accepted")
}

func TestApplicationDuplicateRejected(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	companyToken, _ := helpers.SignupAndLogin(t, ts, helpers.UniqueEmail("dupco"), "company")
	helpers.CreateCompanyViaAPI(t, ts, companyToken, "Dup Co")
	jobID := helpers.CreateJobViaAPI(t, ts, companyToken, []string{"Go"})

	userToken, _ := helpers.SignupAndLogin(t, ts, helpers.UniqueEmail("dupuser"), "user")
	helpers.ApplyViaAPI(t, ts, userToken, jobID)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/applications", userToken, map[string]interface{}{
		"jobId": jobID,
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, bodyStr)
}

func TestApplicationToMissingJob(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	userToken, _ := helpers.SignupAndLogin(t, ts, helpers.UniqueEmail("ghostjob"), "user")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/applications", userToken, map[string]interface{}{
		"jobId": 999999,
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode, bodyStr)
}

func TestApplicationStatusGates(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	ownerToken, _ := helpers.SignupAndLogin(t, ts, helpers.UniqueEmail("gateowner"), "company")
	helpers.CreateCompanyViaAPI(t, ts, ownerToken, "Gate Co")
	jobID := helpers.CreateJobViaAPI(t, ts, ownerToken, []string{"Go"})

	userToken, _ := helpers.SignupAndLogin(t, ts, helpers.UniqueEmail("gateuser"), "user")
	applicationID := helpers.ApplyViaAPI(t, ts, userToken, jobID)

	// Соискатель не может менять статус (роль user)
	res, bodyStr := ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/applications/%d/status", applicationID), userToken, map[string]interface{}{
		"status": "accepted",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "Access denied. Insufficient permissions.")

	// Чужая компания не может менять статус
	otherToken, _ := helpers.SignupAndLogin(t, ts, helpers.UniqueEmail("gateother"), "company")
	helpers.CreateCompanyViaAPI(t, ts, otherToken, "Other Gate Co")
	res, _ = ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/applications/%d/status", applicationID), otherToken, map[string]interface{}{
		"status": "rejected",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Невалидный статус отклоняется
	res, _ = ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/applications/%d/status", applicationID), ownerToken, map[string]interface{}{
		"status": "hired",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestApplicationDeleteByApplicant(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	companyToken, _ := helpers.SignupAndLogin(t, ts, helpers.UniqueEmail("delco"), "company")
	helpers.CreateCompanyViaAPI(t, ts, companyToken, "Del Co")
	jobID := helpers.CreateJobViaAPI(t, ts, companyToken, []string{"Go"})

	userToken, _ := helpers.SignupAndLogin(t, ts, helpers.UniqueEmail("deluser"), "user")
	applicationID := helpers.ApplyViaAPI(t, ts, userToken, jobID)

	res, _ := ts.SendRequest(t, http.MethodDelete, fmt.Sprintf("/applications/%d", applicationID), userToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Повторное удаление - 404
	res, _ = ts.SendRequest(t, http.MethodDelete, fmt.Sprintf("/applications/%d", applicationID), userToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestApplicationCompanyView(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	companyToken, _ := helpers.SignupAndLogin(t, ts, helpers.UniqueEmail("viewco"), "company")
	helpers.CreateCompanyViaAPI(t, ts, companyToken, "View Co")
	jobID1 := helpers.CreateJobViaAPI(t, ts, companyToken, []string{"Go"})
	jobID2 := helpers.CreateJobViaAPI(t, ts, companyToken, []string{"Python"})

	user1Token, _ := helpers.SignupAndLogin(t, ts, helpers.UniqueEmail("view1"), "user")
	user2Token, _ := helpers.SignupAndLogin(t, ts, helpers.UniqueEmail("view2"), "user")
	helpers.ApplyViaAPI(t, ts, user1Token, jobID1)
	helpers.ApplyViaAPI(t, ts, user2Token, jobID2)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/applications/company", companyToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var apps []struct {
		JobID uint `json:"jobId"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &apps))
	assert.Len(t, apps, 2, "Компания должна видеть отклики на все свои вакансии")
}
