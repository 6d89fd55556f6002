package ratingservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/marketplace/internal/cache"
	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/pg"
)

const maxCommentLen = 1000

var (
	ErrInvalidRating   = domain.NewError(domain.ErrValidation, "rating must be between 1 and 5")
	ErrCommentTooLong  = domain.NewError(domain.ErrValidation, fmt.Sprintf("comment must be at most %d characters", maxCommentLen))
	ErrProductNotOwned = domain.NewError(domain.ErrPermissionDenied, "only buyers of the product can rate it")
	ErrShopNotOwned    = domain.NewError(domain.ErrPermissionDenied, "only customers of the shop can rate it")
	ErrAlreadyRated    = domain.NewError(domain.ErrConflict, "you have already rated this item")
)

type RatingRepo interface {
	Exists(ctx context.Context, kind domain.RatingKind, userID string, targetID int) (bool, error)
	Create(ctx context.Context, kind domain.RatingKind, rating *domain.Rating) (*domain.Rating, error)
	ListByTarget(ctx context.Context, kind domain.RatingKind, targetID int) ([]domain.Rating, error)
}

type PurchaseChecker interface {
	HasPurchasedProduct(ctx context.Context, userID string, productID int) (bool, error)
	HasPurchasedFromShop(ctx context.Context, userID string, shopID int) (bool, error)
}

type ShopRepo interface {
	RefreshAverageRating(ctx context.Context, id int) (float64, error)
}

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type Service struct {
	ratings   RatingRepo
	purchases PurchaseChecker
	shops     ShopRepo
	cache     Cache
	ttl       time.Duration
	txManager pg.TXManager
	now       func() time.Time
}

func New(ratings RatingRepo, purchases PurchaseChecker, shops ShopRepo, cache Cache, ttl time.Duration, txManager pg.TXManager) *Service {
	return &Service{
		ratings:   ratings,
		purchases: purchases,
		shops:     shops,
		cache:     cache,
		ttl:       ttl,
		txManager: txManager,
		now:       time.Now,
	}
}

func (s *Service) RateProduct(ctx context.Context, userID string, productID, rating int, comment string) (*domain.Rating, error) {
	comment, err := validate(rating, comment)
	if err != nil {
		return nil, err
	}
	bought, err := s.purchases.HasPurchasedProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if !bought {
		return nil, ErrProductNotOwned
	}

	created, err := s.create(ctx, domain.RatingProduct, userID, productID, rating, comment, nil)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, domain.RatingProduct, productID)
	return created, nil
}

// RateShop stores the rating and refreshes the shop average in one transaction.
func (s *Service) RateShop(ctx context.Context, userID string, shopID, rating int, comment string) (*domain.Rating, error) {
	comment, err := validate(rating, comment)
	if err != nil {
		return nil, err
	}
	bought, err := s.purchases.HasPurchasedFromShop(ctx, userID, shopID)
	if err != nil {
		return nil, err
	}
	if !bought {
		return nil, ErrShopNotOwned
	}

	created, err := s.create(ctx, domain.RatingShop, userID, shopID, rating, comment, func(ctx context.Context) error {
		_, err := s.shops.RefreshAverageRating(ctx, shopID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, domain.RatingShop, shopID)
	return created, nil
}

func (s *Service) ProductSummary(ctx context.Context, productID int) (*domain.RatingSummary, error) {
	return s.summary(ctx, domain.RatingProduct, productID)
}

func (s *Service) ShopSummary(ctx context.Context, shopID int) (*domain.RatingSummary, error) {
	return s.summary(ctx, domain.RatingShop, shopID)
}

func (s *Service) create(
	ctx context.Context,
	kind domain.RatingKind,
	userID string,
	targetID, rating int,
	comment string,
	after pg.TransactionalFn,
) (*domain.Rating, error) {
	exists, err := s.ratings.Exists(ctx, kind, userID, targetID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyRated
	}

	var created *domain.Rating
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		created, err = s.ratings.Create(ctx, kind, &domain.Rating{
			TargetID:  targetID,
			UserID:    userID,
			Rating:    rating,
			Comment:   comment,
			CreatedAt: s.now(),
		})
		if err != nil {
			return err
		}
		if created == nil {
			return ErrAlreadyRated
		}
		if after != nil {
			return after(ctx)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("rating created", zap.String("kind", string(kind)), zap.Int("target_id", targetID), zap.String("user_id", userID))
	return created, nil
}

func (s *Service) summary(ctx context.Context, kind domain.RatingKind, targetID int) (*domain.RatingSummary, error) {
	key := cacheKey(kind, targetID)

	data, err := s.cache.Get(ctx, key)
	if err == nil {
		var cached domain.RatingSummary
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
		zap.L().Warn("corrupted rating summary in cache", zap.String("key", key))
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		zap.L().Warn("rating cache unavailable", zap.String("key", key), zap.Error(err))
	}

	ratings, err := s.ratings.ListByTarget(ctx, kind, targetID)
	if err != nil {
		return nil, err
	}
	summary := Summarize(ratings)

	if data, err := json.Marshal(summary); err == nil {
		if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
			zap.L().Warn("failed to cache rating summary", zap.String("key", key), zap.Error(err))
		}
	}
	return summary, nil
}

func (s *Service) invalidate(ctx context.Context, kind domain.RatingKind, targetID int) {
	if err := s.cache.Delete(ctx, cacheKey(kind, targetID)); err != nil {
		zap.L().Warn("failed to invalidate rating summary", zap.String("kind", string(kind)), zap.Int("target_id", targetID), zap.Error(err))
	}
}

// Summarize averages ratings rounded to one decimal. Ratings keep their order.
func Summarize(ratings []domain.Rating) *domain.RatingSummary {
	if ratings == nil {
		ratings = []domain.Rating{}
	}
	summary := &domain.RatingSummary{TotalCount: len(ratings), Ratings: ratings}
	if len(ratings) == 0 {
		return summary
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	summary.AverageRating = math.Round(float64(sum)/float64(len(ratings))*10) / 10
	return summary
}

func cacheKey(kind domain.RatingKind, targetID int) string {
	return fmt.Sprintf("ratings:%s:%d", kind, targetID)
}

func validate(rating int, comment string) (string, error) {
	if rating < 1 || rating > 5 {
		return "", ErrInvalidRating
	}
	comment = strings.TrimSpace(comment)
	if len([]rune(comment)) > maxCommentLen {
		return "", ErrCommentTooLong
	}
	return comment, nil
}
