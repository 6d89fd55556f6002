package usersystem

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/pkg/auth"
	"github.com/GlebRadaev/marketplace/pkg/utils"
)

func NewMock(t *testing.T) (*UserSystemHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func request(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, "user-1"))
}

func TestGetProfile(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetOrCreateProfile(gomock.Any(), "user-1").
		Return(&domain.UserProfile{UserID: "user-1", Username: "User_user-1", Level: 1}, nil)
	w := httptest.NewRecorder()
	handler.GetProfile(w, request(http.MethodGet, "/profile", ""))
	assert.Equal(t, http.StatusOK, w.Code)
	var profile domain.UserProfile
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&profile))
	assert.Equal(t, "User_user-1", profile.Username)

	service.EXPECT().GetOrCreateProfile(gomock.Any(), "user-1").Return(nil, errors.New("db error"))
	w = httptest.NewRecorder()
	handler.GetProfile(w, request(http.MethodGet, "/profile", ""))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAddExperience(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "Level up",
			body: `{"action_type":"solve_help","points":10}`,
			prepareMock: func() {
				service.EXPECT().AddExperience(gomock.Any(), "user-1", "solve_help", nil, 10).
					Return(&domain.ExperienceResult{LevelUp: true, OldLevel: 1, NewLevel: 2}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Points reach the service",
			body: `{"action_type":"solve_help","points":100}`,
			prepareMock: func() {
				service.EXPECT().AddExperience(gomock.Any(), "user-1", "solve_help", nil, 100).
					Return(&domain.ExperienceResult{Points: 100, PointsGained: 100}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Custom experience is passed through",
			body: `{"action_type":"bonus","custom_exp":50}`,
			prepareMock: func() {
				service.EXPECT().AddExperience(gomock.Any(), "user-1", "bonus", gomock.Any(), 0).DoAndReturn(
					func(_ context.Context, _, _ string, customExp *int, _ int) (*domain.ExperienceResult, error) {
						assert.Equal(t, 50, *customExp)
						return &domain.ExperienceResult{}, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Malformed body",
			body:         `{"action_type":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "invalid request body",
		},
		{
			name: "Negative points",
			body: `{"action_type":"like","points":-1}`,
			prepareMock: func() {
				service.EXPECT().AddExperience(gomock.Any(), "user-1", "like", nil, -1).
					Return(nil, domain.NewError(domain.ErrValidation, "experience and points must not be negative"))
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "experience and points must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.AddExperience(w, request(http.MethodPost, "/experience", tt.body))
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedMsg != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedMsg, resp.Message)
			}
		})
	}
}

func TestUpdateUsernameAndAvatar(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().UpdateUsername(gomock.Any(), "user-1", "neo").Return(&domain.UserProfile{Username: "neo"}, nil)
	w := httptest.NewRecorder()
	handler.UpdateUsername(w, request(http.MethodPut, "/username", `{"username":"neo"}`))
	assert.Equal(t, http.StatusOK, w.Code)

	service.EXPECT().UpdateAvatar(gomock.Any(), "user-1", "").
		Return(nil, domain.NewError(domain.ErrValidation, "avatar_url must be 1 to 255 characters"))
	w = httptest.NewRecorder()
	handler.UpdateAvatar(w, request(http.MethodPut, "/avatar", `{"avatar_url":""}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListExperienceLogs(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListLogs(gomock.Any(), "user-1", 0).Return([]domain.ExperienceLog{{ID: 1}}, nil)
	w := httptest.NewRecorder()
	handler.ListExperienceLogs(w, request(http.MethodGet, "/experience/logs", ""))
	assert.Equal(t, http.StatusOK, w.Code)

	service.EXPECT().ListLogs(gomock.Any(), "user-1", 5).Return([]domain.ExperienceLog{}, nil)
	w = httptest.NewRecorder()
	handler.ListExperienceLogs(w, request(http.MethodGet, "/experience/logs?limit=5", ""))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.ListExperienceLogs(w, request(http.MethodGet, "/experience/logs?limit=abc", ""))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckEligibility(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().CheckEligibility(gomock.Any(), "user-1").
		Return(&domain.Eligibility{Eligible: false, Level: 3, Points: 40, RequiredLevel: 5, RequiredPoints: 100}, nil)
	w := httptest.NewRecorder()
	handler.CheckEligibility(w, request(http.MethodGet, "/inspector/eligibility", ""))
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, false, body["eligible"])
	assert.Equal(t, float64(5), body["required_level"])
	assert.Equal(t, float64(100), body["required_points"])
}
