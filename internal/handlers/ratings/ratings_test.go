package ratings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/pkg/auth"
)

func NewMock(t *testing.T) (*RatingsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func request(method, body, id string) *http.Request {
	r := httptest.NewRequest(method, "/ratings", strings.NewReader(body))
	ctx := context.WithValue(r.Context(), auth.UserIDKey, "buyer-1")
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

func TestRateProduct(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Rated",
			body: `{"product_id":10,"rating":5,"comment":"Great"}`,
			prepareMock: func() {
				service.EXPECT().RateProduct(gomock.Any(), "buyer-1", 10, 5, "Great").
					Return(&domain.Rating{ID: 1, TargetID: 10, UserID: "buyer-1", Rating: 5, Comment: "Great"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Missing product",
			body:         `{"rating":5}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Malformed body",
			body:         `{"product_id":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Out of range",
			body: `{"product_id":10,"rating":6}`,
			prepareMock: func() {
				service.EXPECT().RateProduct(gomock.Any(), "buyer-1", 10, 6, "").
					Return(nil, domain.NewError(domain.ErrValidation, "rating must be between 1 and 5"))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Not purchased",
			body: `{"product_id":10,"rating":4}`,
			prepareMock: func() {
				service.EXPECT().RateProduct(gomock.Any(), "buyer-1", 10, 4, "").
					Return(nil, domain.NewError(domain.ErrPermissionDenied, "you can only rate products you have purchased"))
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Duplicate",
			body: `{"product_id":10,"rating":4}`,
			prepareMock: func() {
				service.EXPECT().RateProduct(gomock.Any(), "buyer-1", 10, 4, "").
					Return(nil, domain.NewError(domain.ErrConflict, "you have already rated this"))
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.RateProduct(w, request(http.MethodPost, tt.body, ""))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestRateShop(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().RateShop(gomock.Any(), "buyer-1", 3, 4, "Fast").
		Return(&domain.Rating{ID: 2, TargetID: 3, Rating: 4}, nil)
	w := httptest.NewRecorder()
	handler.RateShop(w, request(http.MethodPost, `{"shop_id":3,"rating":4,"comment":"Fast"}`, ""))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	handler.RateShop(w, request(http.MethodPost, `{"rating":4}`, ""))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSummaries(t *testing.T) {
	handler, service := NewMock(t)

	summary := &domain.RatingSummary{
		AverageRating: 4.5,
		TotalCount:    2,
		Ratings:       []domain.Rating{{ID: 1, Rating: 5}, {ID: 2, Rating: 4}},
	}
	service.EXPECT().ProductSummary(gomock.Any(), 10).Return(summary, nil)
	w := httptest.NewRecorder()
	handler.ProductSummary(w, request(http.MethodGet, "", "10"))
	assert.Equal(t, http.StatusOK, w.Code)
	var got domain.RatingSummary
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, 4.5, got.AverageRating)
	assert.Len(t, got.Ratings, 2)

	service.EXPECT().ShopSummary(gomock.Any(), 3).Return(&domain.RatingSummary{Ratings: []domain.Rating{}}, nil)
	w = httptest.NewRecorder()
	handler.ShopSummary(w, request(http.MethodGet, "", "3"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"average_rating":0,"total_count":0,"ratings":[]}`, w.Body.String())

	w = httptest.NewRecorder()
	handler.ShopSummary(w, request(http.MethodGet, "", "abc"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
