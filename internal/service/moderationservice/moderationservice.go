package moderationservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/pg"
)

const AppointedBySystem = "system"

var (
	ErrAlreadyInspector = domain.NewError(domain.ErrConflict, "user is already an inspector")
	ErrNotInspector     = domain.NewError(domain.ErrPermissionDenied, "only inspectors can review items")
	ErrShopNotFound     = domain.NewError(domain.ErrNotFound, "shop not found")
	ErrPostNotFound     = domain.NewError(domain.ErrNotFound, "post not found")
	ErrAlreadyReviewed  = domain.NewError(domain.ErrConflict, "item has already been reviewed")
	ErrInvalidDecision  = domain.NewError(domain.ErrValidation, "decision must be approved or rejected")
)

type InspectorRepo interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Inspector, error)
	Create(ctx context.Context, inspector *domain.Inspector) (*domain.Inspector, error)
}

type ShopRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Shop, error)
	ListByStatus(ctx context.Context, status string) ([]domain.Shop, error)
	CompareAndSetStatus(ctx context.Context, id int, from, to string) (bool, error)
}

type PostRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Post, error)
	ListByReviewStatus(ctx context.Context, postType, status string) ([]domain.Post, error)
	CompareAndSetReviewStatus(ctx context.Context, id int, from, to string) (bool, error)
}

type ReviewRepo interface {
	CreateShopReview(ctx context.Context, review *domain.Review) (*domain.Review, error)
	CreatePostReview(ctx context.Context, review *domain.Review) (*domain.Review, error)
	CloseTasks(ctx context.Context, taskType string, targetID int, status, reviewerID string) (int64, error)
}

type EligibilityChecker interface {
	CheckEligibility(ctx context.Context, userID string) (*domain.Eligibility, error)
}

type Service struct {
	inspectors  InspectorRepo
	shops       ShopRepo
	posts       PostRepo
	reviews     ReviewRepo
	progression EligibilityChecker
	txManager   pg.TXManager
	now         func() time.Time
}

func New(
	inspectors InspectorRepo,
	shops ShopRepo,
	posts PostRepo,
	reviews ReviewRepo,
	progression EligibilityChecker,
	txManager pg.TXManager,
) *Service {
	return &Service{
		inspectors:  inspectors,
		shops:       shops,
		posts:       posts,
		reviews:     reviews,
		progression: progression,
		txManager:   txManager,
		now:         time.Now,
	}
}

func (s *Service) InspectorStatus(ctx context.Context, userID string) (*domain.InspectorStatus, error) {
	inspector, err := s.inspectors.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if inspector == nil {
		return &domain.InspectorStatus{}, nil
	}
	appointedAt := inspector.AppointedAt
	return &domain.InspectorStatus{IsInspector: true, AppointedAt: &appointedAt}, nil
}

// ApplyForInspector appoints the user as an inspector when the progression
// thresholds are met. The unique user_id constraint settles concurrent
// applications: the losing insert reports a conflict.
func (s *Service) ApplyForInspector(ctx context.Context, userID string) (*domain.Inspector, error) {
	eligibility, err := s.progression.CheckEligibility(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !eligibility.Eligible {
		zap.L().Info("inspector application refused", zap.String("user_id", userID),
			zap.Int("level", eligibility.Level), zap.Int("points", eligibility.Points))
		return nil, domain.NewError(domain.ErrPermissionDenied, fmt.Sprintf(
			"inspector requires level %d and %d points, current level %d and %d points",
			eligibility.RequiredLevel, eligibility.RequiredPoints, eligibility.Level, eligibility.Points,
		))
	}

	existing, err := s.inspectors.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyInspector
	}

	inspector, err := s.inspectors.Create(ctx, &domain.Inspector{
		UserID:      userID,
		AppointedAt: s.now(),
		AppointedBy: AppointedBySystem,
	})
	if err != nil {
		return nil, err
	}
	if inspector == nil {
		return nil, ErrAlreadyInspector
	}
	zap.L().Info("inspector appointed", zap.String("user_id", userID))
	return inspector, nil
}

func (s *Service) ListPendingReviewItems(ctx context.Context, inspectorID string) (*domain.PendingReviewItems, error) {
	if err := s.requireInspector(ctx, inspectorID); err != nil {
		return nil, err
	}

	var items domain.PendingReviewItems
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		shops, err := s.shops.ListByStatus(gctx, domain.StatusPending)
		items.Shops = shops
		return err
	})
	g.Go(func() error {
		posts, err := s.posts.ListByReviewStatus(gctx, domain.PostTypeHelp, domain.StatusPending)
		items.Posts = posts
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &items, nil
}

func (s *Service) ListPendingShops(ctx context.Context, inspectorID string) ([]domain.Shop, error) {
	if err := s.requireInspector(ctx, inspectorID); err != nil {
		return nil, err
	}
	return s.shops.ListByStatus(ctx, domain.StatusPending)
}

func (s *Service) ListPendingPosts(ctx context.Context, inspectorID string) ([]domain.Post, error) {
	if err := s.requireInspector(ctx, inspectorID); err != nil {
		return nil, err
	}
	return s.posts.ListByReviewStatus(ctx, domain.PostTypeHelp, domain.StatusPending)
}

// DecideShop records a one-shot decision on a pending shop.
func (s *Service) DecideShop(ctx context.Context, shopID int, decision, reviewerID, comment string) (*domain.Review, error) {
	if err := validateDecision(decision); err != nil {
		return nil, err
	}
	if err := s.requireInspector(ctx, reviewerID); err != nil {
		return nil, err
	}

	shop, err := s.shops.GetByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, ErrShopNotFound
	}
	if shop.Status != domain.StatusPending {
		return nil, ErrAlreadyReviewed
	}

	var review *domain.Review
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.shops.CompareAndSetStatus(ctx, shopID, domain.StatusPending, decision)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAlreadyReviewed
		}
		review, err = s.reviews.CreateShopReview(ctx, s.auditRow(shopID, shop.UserID, reviewerID, decision, comment))
		if err != nil {
			return err
		}
		_, err = s.reviews.CloseTasks(ctx, domain.TaskTypeShop, shopID, decision, reviewerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("shop reviewed", zap.Int("shop_id", shopID), zap.String("status", decision), zap.String("reviewer_id", reviewerID))
	return review, nil
}

// DecidePost records a one-shot decision on a pending help post.
func (s *Service) DecidePost(ctx context.Context, postID int, decision, reviewerID, comment string) (*domain.Review, error) {
	if err := validateDecision(decision); err != nil {
		return nil, err
	}
	if err := s.requireInspector(ctx, reviewerID); err != nil {
		return nil, err
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.ReviewStatus != domain.StatusPending {
		return nil, ErrAlreadyReviewed
	}

	var review *domain.Review
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.posts.CompareAndSetReviewStatus(ctx, postID, domain.StatusPending, decision)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAlreadyReviewed
		}
		review, err = s.reviews.CreatePostReview(ctx, s.auditRow(postID, post.UserID, reviewerID, decision, comment))
		if err != nil {
			return err
		}
		_, err = s.reviews.CloseTasks(ctx, domain.TaskTypePost, postID, decision, reviewerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("post reviewed", zap.Int("post_id", postID), zap.String("status", decision), zap.String("reviewer_id", reviewerID))
	return review, nil
}

func (s *Service) requireInspector(ctx context.Context, userID string) error {
	inspector, err := s.inspectors.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if inspector == nil {
		return ErrNotInspector
	}
	return nil
}

func (s *Service) auditRow(targetID int, applicantID, reviewerID, decision, comment string) *domain.Review {
	if comment == "" {
		comment = defaultComment(decision)
	}
	return &domain.Review{
		TargetID:      targetID,
		ApplicantID:   applicantID,
		ReviewerID:    reviewerID,
		Status:        decision,
		ReviewComment: comment,
		CreatedAt:     s.now(),
	}
}

func validateDecision(decision string) error {
	if decision != domain.StatusApproved && decision != domain.StatusRejected {
		return ErrInvalidDecision
	}
	return nil
}

func defaultComment(decision string) string {
	if decision == domain.StatusApproved {
		return "Approved"
	}
	return "Rejected"
}
