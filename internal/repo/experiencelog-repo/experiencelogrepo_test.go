package experiencelogrepo

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

var logColumns = []string{"id", "user_id", "action_type", "experience_change", "points_change", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta(`INSERT INTO experience_logs (user_id, action_type, experience_change, points_change, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING`)
	log := &domain.ExperienceLog{UserID: "user-1", ActionType: "comment", ExperienceChange: 2, CreatedAt: now}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.ExperienceLog
	}{
		{
			name: "Created",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("user-1", "comment", 2, 0, now).
					WillReturnRows(pgxmock.NewRows(logColumns).AddRow(9, "user-1", "comment", 2, 0, now))
			},
			result: &domain.ExperienceLog{ID: 9, UserID: "user-1", ActionType: "comment", ExperienceChange: 2, CreatedAt: now},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("user-1", "comment", 2, 0, now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), log)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_ListByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta(`FROM experience_logs WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectLen int
	}{
		{
			name: "Two logs",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("user-1", 50).
					WillReturnRows(pgxmock.NewRows(logColumns).
						AddRow(2, "user-1", "like", 1, 0, now).
						AddRow(1, "user-1", "comment", 2, 0, now.Add(-time.Minute)))
			},
			expectLen: 2,
		},
		{
			name: "No logs",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("user-1", 50).WillReturnRows(pgxmock.NewRows(logColumns))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("user-1", 50).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			logs, err := repo.ListByUserID(context.Background(), "user-1", 50)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, logs, tt.expectLen)
		})
	}
}
