package reviewrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateShopReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	query := `
        INSERT INTO shop_reviews (shop_id, applicant_id, reviewer_id, status, review_comment, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, shop_id, applicant_id, reviewer_id, status, review_comment, created_at
    `
	return r.create(ctx, query, review)
}

func (r *Repository) CreatePostReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	query := `
        INSERT INTO post_reviews (post_id, applicant_id, reviewer_id, status, review_comment, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, post_id, applicant_id, reviewer_id, status, review_comment, created_at
    `
	return r.create(ctx, query, review)
}

// CloseTasks mirrors a decision onto the pending review tasks of a target.
func (r *Repository) CloseTasks(ctx context.Context, taskType string, targetID int, status, reviewerID string) (int64, error) {
	query := `
        UPDATE review_tasks
        SET status = $1, assigned_to = COALESCE(assigned_to, $2)
        WHERE task_type = $3 AND target_id = $4 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, status, reviewerID, taskType, targetID)
	if err != nil {
		zap.L().Error("failed to close review tasks", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) create(ctx context.Context, query string, review *domain.Review) (*domain.Review, error) {
	var created domain.Review
	err := r.db.QueryRow(ctx, query,
		review.TargetID, review.ApplicantID, review.ReviewerID, review.Status, review.ReviewComment, review.CreatedAt,
	).Scan(
		&created.ID, &created.TargetID, &created.ApplicantID, &created.ReviewerID,
		&created.Status, &created.ReviewComment, &created.CreatedAt,
	)
	if err != nil {
		zap.L().Error("failed to create review", zap.Error(err))
		return nil, err
	}
	return &created, nil
}
