package postrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/pg"
)

const postColumns = `id, user_id, content, post_type, is_anonymous, review_status, reward_points,
        is_solved, COALESCE(solver_id, ''), likes_count, comments_count, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	var p domain.Post
	if err := scanPost(r.db.QueryRow(ctx, query, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get post", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) ListByReviewStatus(ctx context.Context, postType, status string) ([]domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE post_type = $1 AND review_status = $2 ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, query, postType, status)
	if err != nil {
		zap.L().Error("failed to list posts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	posts := make([]domain.Post, 0)
	for rows.Next() {
		var p domain.Post
		if err := scanPost(rows, &p); err != nil {
			zap.L().Error("failed to scan post", zap.Error(err))
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate posts", zap.Error(err))
		return nil, err
	}
	return posts, nil
}

func (r *Repository) CompareAndSetReviewStatus(ctx context.Context, id int, from, to string) (bool, error) {
	query := `UPDATE posts SET review_status = $1 WHERE id = $2 AND review_status = $3`

	tag, err := r.db.Exec(ctx, query, to, id, from)
	if err != nil {
		zap.L().Error("failed to update post review status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func scanPost(row pgx.Row, p *domain.Post) error {
	return row.Scan(
		&p.ID, &p.UserID, &p.Content, &p.PostType, &p.IsAnonymous, &p.ReviewStatus, &p.RewardPoints,
		&p.IsSolved, &p.SolverID, &p.LikesCount, &p.CommentsCount, &p.CreatedAt,
	)
}
