package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name          string
		lvl           string
		format        string
		expectedError bool
	}{
		{name: "Valid log level info", lvl: "info", format: "console"},
		{name: "Valid log level error", lvl: "error", format: "console"},
		{name: "Valid log level debug", lvl: "debug", format: "console"},
		{name: "Warn level as json", lvl: "warn", format: "json"},
		{name: "Invalid log level", lvl: "invalid", format: "console", expectedError: true},
		{name: "Invalid format", lvl: "info", format: "xml", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(tt.lvl, tt.format)

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAccessLog(t *testing.T) {
	tests := []struct {
		name          string
		handler       http.HandlerFunc
		expectedCode  int
		expectedLevel string
	}{
		{
			name:          "Implicit OK",
			handler:       func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) },
			expectedCode:  http.StatusOK,
			expectedLevel: "info",
		},
		{
			name:          "Server error logged at error level",
			handler:       func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
			expectedCode:  http.StatusInternalServerError,
			expectedLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := AccessLog(&buf)(tt.handler)

			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/ratings/shop/1", nil))

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, tt.expectedLevel, line["level"])
			assert.Equal(t, "/api/v1/ratings/shop/1", line["path"])
			assert.EqualValues(t, tt.expectedCode, line["status"])
		})
	}
}
