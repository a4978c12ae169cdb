package test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"storroz/internal/config"
	handlers "storroz/internal/handler"
)

func createTestHandler() *handlers.Handlers {
	cfg := &config.Config{
		JWTSecretKey: "test-secret-key",
		ServerPort:   8080,
	}

	return &handlers.Handlers{
		Cfg:      cfg,
		Validate: validator.New(),
	}
}

// assertJSONError checks the JSON response with an error
func assertJSONError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedError string) {
	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["error"], expectedError)
}

// assertJSONSuccess checks the successful JSON response
func assertJSONSuccess(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int) map[string]interface{} {
	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)

	return response
}
