package login

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventAdmin/internal/config"
	"eventAdmin/internal/http-server/handlers/auth/login/mocks"
	"eventAdmin/internal/lib/logger/handlers/slogdiscard"
	"eventAdmin/internal/models"
)

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	admin := config.Admin{
		User:       "admin",
		Password:   "s3cret",
		JWTSecret:  "test-secret",
		SessionTTL: 12 * time.Hour,
	}

	expiry := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.SessionCreator)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"user": "admin", "password": "s3cret"}`,
			mockSetup: func(m *mocks.SessionCreator) {
				m.On("CreateSession", "admin", "test-secret", 12*time.Hour).
					Return(models.Session{User: "admin", Token: "jwt-token", ExpiresAt: expiry}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"token":"jwt-token"`)
			},
		},
		{
			name:           "Wrong password",
			requestBody:    `{"user": "admin", "password": "wrong"}`,
			mockSetup:      func(m *mocks.SessionCreator) {},
			expectedStatus: http.StatusUnauthorized,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid credentials")
			},
		},
		{
			name:           "Wrong user",
			requestBody:    `{"user": "root", "password": "s3cret"}`,
			mockSetup:      func(m *mocks.SessionCreator) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing fields",
			requestBody:    `{"user": "admin"}`,
			mockSetup:      func(m *mocks.SessionCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Password")
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{{`,
			mockSetup:      func(m *mocks.SessionCreator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Session creation failure",
			requestBody: `{"user": "admin", "password": "s3cret"}`,
			mockSetup: func(m *mocks.SessionCreator) {
				m.On("CreateSession", "admin", "test-secret", 12*time.Hour).
					Return(models.Session{}, errors.New("storage error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sessions := mocks.NewSessionCreator(t)
			tc.mockSetup(sessions)

			handler := New(slogdiscard.NewDiscardLogger(), admin, sessions)

			req, err := http.NewRequest("POST", "/admin/login", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
