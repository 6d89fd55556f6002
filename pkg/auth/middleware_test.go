package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	valid, _ := jwtService.GenerateJWT("user-42", time.Now().Add(time.Hour))

	tests := []struct {
		name           string
		header         string
		expectedCode   int
		expectedUserID string
	}{
		{name: "No header", header: "", expectedCode: http.StatusUnauthorized},
		{name: "Not a bearer token", header: "Basic abc", expectedCode: http.StatusUnauthorized},
		{name: "Broken token", header: "Bearer broken", expectedCode: http.StatusUnauthorized},
		{name: "Valid token", header: "Bearer " + valid, expectedCode: http.StatusOK, expectedUserID: "user-42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var userID string
			h := Middleware(jwtService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				userID = UserIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/user_system/profile", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedUserID, userID)
		})
	}
}
