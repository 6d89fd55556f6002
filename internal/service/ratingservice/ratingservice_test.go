package ratingservice

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/marketplace/internal/cache"
	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/pg"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

const ttl = 5 * time.Minute

type mocks struct {
	ratings   *MockRatingRepo
	purchases *MockPurchaseChecker
	shops     *MockShopRepo
	cache     *MockCache
	txManager *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		ratings:   NewMockRatingRepo(ctrl),
		purchases: NewMockPurchaseChecker(ctrl),
		shops:     NewMockShopRepo(ctrl),
		cache:     NewMockCache(ctrl),
		txManager: pg.NewMockTXManager(ctrl),
	}
	service := New(m.ratings, m.purchases, m.shops, m.cache, ttl, m.txManager)
	service.now = func() time.Time { return fixedNow }
	return service, m
}

func (m *mocks) runInTx() {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
}

func TestRateProduct(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name        string
		rating      int
		comment     string
		prepareMock func()
		expectedErr error
	}{
		{
			name:    "Rated",
			rating:  5,
			comment: " great ",
			prepareMock: func() {
				m.purchases.EXPECT().HasPurchasedProduct(gomock.Any(), "buyer-1", 10).Return(true, nil)
				m.ratings.EXPECT().Exists(gomock.Any(), domain.RatingProduct, "buyer-1", 10).Return(false, nil)
				m.runInTx()
				m.ratings.EXPECT().Create(gomock.Any(), domain.RatingProduct, &domain.Rating{
					TargetID: 10, UserID: "buyer-1", Rating: 5, Comment: "great", CreatedAt: fixedNow,
				}).Return(&domain.Rating{ID: 1, TargetID: 10, UserID: "buyer-1", Rating: 5}, nil)
				m.cache.EXPECT().Delete(gomock.Any(), "ratings:product:10").Return(nil)
			},
		},
		{
			name:        "Rating too high",
			rating:      6,
			prepareMock: func() {},
			expectedErr: ErrInvalidRating,
		},
		{
			name:        "Rating zero",
			rating:      0,
			prepareMock: func() {},
			expectedErr: ErrInvalidRating,
		},
		{
			name:        "Comment too long",
			rating:      3,
			comment:     strings.Repeat("x", maxCommentLen+1),
			prepareMock: func() {},
			expectedErr: ErrCommentTooLong,
		},
		{
			name:   "Not purchased",
			rating: 4,
			prepareMock: func() {
				m.purchases.EXPECT().HasPurchasedProduct(gomock.Any(), "buyer-1", 10).Return(false, nil)
			},
			expectedErr: ErrProductNotOwned,
		},
		{
			name:   "Already rated",
			rating: 4,
			prepareMock: func() {
				m.purchases.EXPECT().HasPurchasedProduct(gomock.Any(), "buyer-1", 10).Return(true, nil)
				m.ratings.EXPECT().Exists(gomock.Any(), domain.RatingProduct, "buyer-1", 10).Return(true, nil)
			},
			expectedErr: ErrAlreadyRated,
		},
		{
			name:   "Concurrent duplicate",
			rating: 4,
			prepareMock: func() {
				m.purchases.EXPECT().HasPurchasedProduct(gomock.Any(), "buyer-1", 10).Return(true, nil)
				m.ratings.EXPECT().Exists(gomock.Any(), domain.RatingProduct, "buyer-1", 10).Return(false, nil)
				m.runInTx()
				m.ratings.EXPECT().Create(gomock.Any(), domain.RatingProduct, gomock.Any()).Return(nil, nil)
			},
			expectedErr: ErrAlreadyRated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rating, err := service.RateProduct(context.Background(), "buyer-1", 10, tt.rating, tt.comment)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, rating)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 1, rating.ID)
		})
	}
}

func TestRateShop(t *testing.T) {
	service, m := NewMock(t)

	t.Run("Rated and average refreshed", func(t *testing.T) {
		m.purchases.EXPECT().HasPurchasedFromShop(gomock.Any(), "buyer-1", 3).Return(true, nil)
		m.ratings.EXPECT().Exists(gomock.Any(), domain.RatingShop, "buyer-1", 3).Return(false, nil)
		m.runInTx()
		m.ratings.EXPECT().Create(gomock.Any(), domain.RatingShop, gomock.Any()).
			Return(&domain.Rating{ID: 2, TargetID: 3, Rating: 4}, nil)
		m.shops.EXPECT().RefreshAverageRating(gomock.Any(), 3).Return(4.0, nil)
		m.cache.EXPECT().Delete(gomock.Any(), "ratings:shop:3").Return(nil)

		rating, err := service.RateShop(context.Background(), "buyer-1", 3, 4, "")
		assert.NoError(t, err)
		assert.Equal(t, 2, rating.ID)
	})

	t.Run("Refresh failure fails the rating", func(t *testing.T) {
		m.purchases.EXPECT().HasPurchasedFromShop(gomock.Any(), "buyer-1", 3).Return(true, nil)
		m.ratings.EXPECT().Exists(gomock.Any(), domain.RatingShop, "buyer-1", 3).Return(false, nil)
		m.runInTx()
		m.ratings.EXPECT().Create(gomock.Any(), domain.RatingShop, gomock.Any()).Return(&domain.Rating{ID: 2}, nil)
		m.shops.EXPECT().RefreshAverageRating(gomock.Any(), 3).Return(0.0, errors.New("db error"))

		rating, err := service.RateShop(context.Background(), "buyer-1", 3, 4, "")
		assert.EqualError(t, err, "db error")
		assert.Nil(t, rating)
	})

	t.Run("Never bought from the shop", func(t *testing.T) {
		m.purchases.EXPECT().HasPurchasedFromShop(gomock.Any(), "buyer-1", 3).Return(false, nil)

		_, err := service.RateShop(context.Background(), "buyer-1", 3, 4, "")
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	})

	t.Run("Cache failure does not fail the rating", func(t *testing.T) {
		m.purchases.EXPECT().HasPurchasedFromShop(gomock.Any(), "buyer-2", 3).Return(true, nil)
		m.ratings.EXPECT().Exists(gomock.Any(), domain.RatingShop, "buyer-2", 3).Return(false, nil)
		m.runInTx()
		m.ratings.EXPECT().Create(gomock.Any(), domain.RatingShop, gomock.Any()).Return(&domain.Rating{ID: 3}, nil)
		m.shops.EXPECT().RefreshAverageRating(gomock.Any(), 3).Return(4.5, nil)
		m.cache.EXPECT().Delete(gomock.Any(), "ratings:shop:3").Return(errors.New("redis down"))

		rating, err := service.RateShop(context.Background(), "buyer-2", 3, 5, "")
		assert.NoError(t, err)
		assert.Equal(t, 3, rating.ID)
	})
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		ratings []domain.Rating
		average float64
	}{
		{"No ratings", nil, 0},
		{"Single", []domain.Rating{{Rating: 4}}, 4},
		{"Rounded to one decimal", []domain.Rating{{Rating: 5}, {Rating: 4}, {Rating: 4}}, 4.3},
		{"Rounded half up", []domain.Rating{{Rating: 5}, {Rating: 4}, {Rating: 5}, {Rating: 4}}, 4.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summarize(tt.ratings)
			assert.Equal(t, tt.average, summary.AverageRating)
			assert.Equal(t, len(tt.ratings), summary.TotalCount)
			assert.NotNil(t, summary.Ratings)
		})
	}
}

func TestProductSummary(t *testing.T) {
	service, m := NewMock(t)
	ratings := []domain.Rating{{ID: 2, Rating: 5}, {ID: 1, Rating: 2}}

	t.Run("Cache miss loads and stores", func(t *testing.T) {
		m.cache.EXPECT().Get(gomock.Any(), "ratings:product:10").Return(nil, cache.ErrCacheMiss)
		m.ratings.EXPECT().ListByTarget(gomock.Any(), domain.RatingProduct, 10).Return(ratings, nil)
		m.cache.EXPECT().Set(gomock.Any(), "ratings:product:10", gomock.Any(), ttl).DoAndReturn(
			func(_ context.Context, _ string, value []byte, _ time.Duration) error {
				var stored domain.RatingSummary
				require.NoError(t, json.Unmarshal(value, &stored))
				assert.Equal(t, 3.5, stored.AverageRating)
				return nil
			})

		summary, err := service.ProductSummary(context.Background(), 10)
		assert.NoError(t, err)
		assert.Equal(t, 3.5, summary.AverageRating)
		assert.Equal(t, 2, summary.TotalCount)
		assert.Equal(t, 2, summary.Ratings[0].ID)
	})

	t.Run("Cache hit skips the database", func(t *testing.T) {
		cached, err := json.Marshal(domain.RatingSummary{AverageRating: 4.8, TotalCount: 12, Ratings: []domain.Rating{}})
		require.NoError(t, err)
		m.cache.EXPECT().Get(gomock.Any(), "ratings:product:10").Return(cached, nil)

		summary, err := service.ProductSummary(context.Background(), 10)
		assert.NoError(t, err)
		assert.Equal(t, 4.8, summary.AverageRating)
		assert.Equal(t, 12, summary.TotalCount)
	})

	t.Run("Cache outage falls back to the database", func(t *testing.T) {
		m.cache.EXPECT().Get(gomock.Any(), "ratings:product:10").Return(nil, errors.New("redis down"))
		m.ratings.EXPECT().ListByTarget(gomock.Any(), domain.RatingProduct, 10).Return(ratings, nil)
		m.cache.EXPECT().Set(gomock.Any(), "ratings:product:10", gomock.Any(), ttl).Return(errors.New("redis down"))

		summary, err := service.ProductSummary(context.Background(), 10)
		assert.NoError(t, err)
		assert.Equal(t, 2, summary.TotalCount)
	})

	t.Run("Database error", func(t *testing.T) {
		m.cache.EXPECT().Get(gomock.Any(), "ratings:shop:3").Return(nil, cache.ErrCacheMiss)
		m.ratings.EXPECT().ListByTarget(gomock.Any(), domain.RatingShop, 3).Return(nil, errors.New("db error"))

		summary, err := service.ShopSummary(context.Background(), 3)
		assert.EqualError(t, err, "db error")
		assert.Nil(t, summary)
	})
}
