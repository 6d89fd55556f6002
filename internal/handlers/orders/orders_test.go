package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/service/orderservice"
	"github.com/GlebRadaev/marketplace/pkg/auth"
)

func NewMock(t *testing.T) (*OrderHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func request(id string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/orders/"+id+"/pay", nil)
	ctx := context.WithValue(r.Context(), auth.UserIDKey, "buyer-1")
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

func TestPay(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		id             string
		prepareMock    func()
		expectedCode   int
		expectedStatus string
	}{
		{
			name: "Paid",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().Pay(gomock.Any(), "buyer-1", 1).
					Return(&domain.Order{ID: 1, UserID: "buyer-1", Status: domain.OrderStatusPaid}, nil)
			},
			expectedCode:   http.StatusOK,
			expectedStatus: domain.OrderStatusPaid,
		},
		{
			name:         "Invalid id",
			id:           "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Not found",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().Pay(gomock.Any(), "buyer-1", 1).Return(nil, orderservice.ErrOrderNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Not pending",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().Pay(gomock.Any(), "buyer-1", 1).Return(nil, orderservice.ErrOrderNotPending)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal error",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().Pay(gomock.Any(), "buyer-1", 1).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Pay(w, request(tt.id))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedStatus != "" {
				var order domain.Order
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&order))
				assert.Equal(t, tt.expectedStatus, order.Status)
			}
		})
	}
}

func TestCancel(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Cancel(gomock.Any(), "buyer-1", 1).
		Return(&domain.Order{ID: 1, UserID: "buyer-1", Status: domain.OrderStatusCancelled}, nil)

	w := httptest.NewRecorder()
	handler.Cancel(w, request("1"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `"cancelled"`, mustField(t, w, "status"))
}

func mustField(t *testing.T, w *httptest.ResponseRecorder, name string) string {
	t.Helper()
	var body map[string]json.RawMessage
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return string(body[name])
}
