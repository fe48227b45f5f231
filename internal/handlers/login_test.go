package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/health-risk-predictor/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name            string
		username        string
		password        string
		mockSetup       func(m *MockLoginer)
		expectedCode    int
		expectedSuccess bool
		expectedMessage string
		expectedToken   string
		rawBody         bool
	}{
		{
			name:     "success",
			username: "alice",
			password: "pw1",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice", "pw1").
					Return("token123", nil)
			},
			expectedCode:    200,
			expectedSuccess: true,
			expectedMessage: "Login successful",
			expectedToken:   "token123",
		},
		{
			name:     "user not found",
			username: "ghost",
			password: "pw",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "ghost", "pw").
					Return("", services.ErrUserDoesNotExist)
			},
			expectedCode:    401,
			expectedSuccess: false,
			expectedMessage: "Invalid username or password",
		},
		{
			name:     "invalid credentials",
			username: "alice",
			password: "wrong",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice", "wrong").
					Return("", services.ErrInvalidCredentials)
			},
			expectedCode:    401,
			expectedSuccess: false,
			expectedMessage: "Invalid username or password",
		},
		{
			name:     "internal server error",
			username: "alice",
			password: "pw1",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice", "pw1").
					Return("", errors.New("database failure"))
			},
			expectedCode:    500,
			expectedSuccess: false,
			expectedMessage: "Internal server error",
		},
		{
			name:            "invalid json",
			rawBody:         true,
			expectedCode:    400,
			expectedSuccess: false,
			expectedMessage: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLoginHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(LoginRequest{
					Username: tt.username,
					Password: tt.password,
				})
				req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedSuccess, resp["success"])
			assert.Equal(t, tt.expectedMessage, resp["message"])

			if tt.expectedToken != "" {
				data, ok := resp["data"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, tt.expectedToken, data["token"])
			} else {
				assert.Nil(t, resp["data"])
			}
		})
	}
}
