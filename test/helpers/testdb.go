package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/models"
)

// Пароль, проходящий политику сложности
const TestPassword = "Password-123"

// SignupAndLogin регистрирует пользователя через API и логинит его.
// Возвращает токен и ID созданного пользователя.
func SignupAndLogin(t *testing.T, ts *TestServer, email, role string) (string, uint) {
	signupBody := map[string]interface{}{
		"email":     email,
		"password":  TestPassword,
		"firstName": "Test",
		"lastName":  "User",
		"dob":       "1995-04-15",
		"role":      role,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/users/signup", "", signupBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, "Регистрация должна быть успешной. Ответ: "+bodyStr)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": TestPassword,
	}
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/users/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
		ID    uint   `json:"id"`
	}
	err := json.Unmarshal([]byte(bodyStr), &loginResponse)
	require.NoError(t, err, "Не удалось распарсить JSON логина")
	require.NotEmpty(t, loginResponse.Token, "Токен не должен быть пустым")

	return loginResponse.Token, loginResponse.ID
}

// UniqueEmail генерирует уникальный email для изоляции тестов
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// CreateCompanyViaAPI создает компанию от имени токена и возвращает ее ID
func CreateCompanyViaAPI(t *testing.T, ts *TestServer, token, name string) uint {
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/companies", token, map[string]interface{}{
		"name": name,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Создание компании должно быть успешным. Ответ: "+bodyStr)

	var company models.Company
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &company))
	assert.NotZero(t, company.ID)
	return company.ID
}

// CreateJobViaAPI публикует вакансию и возвращает ее ID
func CreateJobViaAPI(t *testing.T, ts *TestServer, token string, requirements []string) uint {
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/jobs", token, map[string]interface{}{
		"title":        "Backend Engineer",
		"description":  "Build and maintain backend services",
		"requirements": requirements,
		"location":     "Remote",
		"salaryRange":  "100k-150k",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Создание вакансии должно быть успешным. Ответ: "+bodyStr)

	var job struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &job))
	return job.ID
}

// CreateProfileViaAPI создает профиль с навыками и возвращает его ID
func CreateProfileViaAPI(t *testing.T, ts *TestServer, token string, skills []string) uint {
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/profiles", token, map[string]interface{}{
		"bio":    "Test bio",
		"skills": skills,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Создание профиля должно быть успешным. Ответ: "+bodyStr)

	var profile struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &profile))
	return profile.ID
}

// ApplyViaAPI создает отклик и возвращает его ID
func ApplyViaAPI(t *testing.T, ts *TestServer, token string, jobID uint) uint {
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/applications", token, map[string]interface{}{
		"jobId": jobID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Отклик должен быть успешным. Ответ: "+bodyStr)

	var application struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &application))
	return application.ID
}
