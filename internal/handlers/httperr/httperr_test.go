package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/pkg/utils"
)

func TestRespond(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedCode    int
		expectedMessage string
	}{
		{"Not found", domain.NewError(domain.ErrNotFound, "shop not found"), http.StatusNotFound, "shop not found"},
		{"Permission denied", domain.NewError(domain.ErrPermissionDenied, "only inspectors can review"), http.StatusForbidden, "only inspectors can review"},
		{"Conflict", domain.NewError(domain.ErrConflict, "already rated"), http.StatusConflict, "already rated"},
		{"Validation", domain.Validationf("rating must be between %d and %d", 1, 5), http.StatusBadRequest, "rating must be between 1 and 5"},
		{"Wrapped kind", fmt.Errorf("load: %w", domain.NewError(domain.ErrNotFound, "order not found")), http.StatusNotFound, "load: order not found"},
		{"Unknown error is hidden", errors.New("pq: connection refused"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Respond(w, tt.err)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			var resp utils.Response
			assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}
