package reviewrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/marketplace/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_CreateShopReview(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	review := &domain.Review{
		TargetID: 5, ApplicantID: "owner-1", ReviewerID: "insp-1", Status: "approved", ReviewComment: "Approved", CreatedAt: now,
	}
	query := regexp.QuoteMeta(`INSERT INTO shop_reviews (shop_id, applicant_id, reviewer_id, status, review_comment, created_at)`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Created",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(5, "owner-1", "insp-1", "approved", "Approved", now).
					WillReturnRows(pgxmock.NewRows([]string{"id", "shop_id", "applicant_id", "reviewer_id", "status", "review_comment", "created_at"}).
						AddRow(1, 5, "owner-1", "insp-1", "approved", "Approved", now))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(5, "owner-1", "insp-1", "approved", "Approved", now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.CreateShopReview(context.Background(), review)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, created)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 1, created.ID)
			assert.Equal(t, 5, created.TargetID)
		})
	}
}

func TestRepository_CreatePostReview(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	review := &domain.Review{
		TargetID: 8, ApplicantID: "user-2", ReviewerID: "insp-1", Status: "rejected", ReviewComment: "spam", CreatedAt: now,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO post_reviews (post_id, applicant_id, reviewer_id, status, review_comment, created_at)`)).
		WithArgs(8, "user-2", "insp-1", "rejected", "spam", now).
		WillReturnRows(pgxmock.NewRows([]string{"id", "post_id", "applicant_id", "reviewer_id", "status", "review_comment", "created_at"}).
			AddRow(2, 8, "user-2", "insp-1", "rejected", "spam", now))

	created, err := repo.CreatePostReview(context.Background(), review)
	assert.NoError(t, err)
	assert.Equal(t, "spam", created.ReviewComment)
}

func TestRepository_CloseTasks(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`UPDATE review_tasks SET status = $1, assigned_to = COALESCE(assigned_to, $2) WHERE task_type = $3 AND target_id = $4 AND status = 'pending'`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		closed    int64
	}{
		{
			name: "Mirror updated",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs("approved", "insp-1", "shop", 5).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			closed: 1,
		},
		{
			name: "No task rows",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs("approved", "insp-1", "shop", 5).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs("approved", "insp-1", "shop", 5).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			closed, err := repo.CloseTasks(context.Background(), "shop", 5, "approved", "insp-1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.closed, closed)
		})
	}
}
