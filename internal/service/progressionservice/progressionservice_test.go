package progressionservice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/pg"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockProfileRepo, *MockLogRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	profiles := NewMockProfileRepo(ctrl)
	logs := NewMockLogRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(profiles, logs, txManager)
	service.now = func() time.Time { return fixedNow }
	return service, profiles, logs, txManager
}

func runInTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
}

func intPtr(v int) *int {
	return &v
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		experience int
		level      int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{250, 3},
		{550, 6},
		{-10, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.level, LevelFor(tt.experience), "experience %d", tt.experience)
	}
}

func TestGetOrCreateProfile(t *testing.T) {
	service, profiles, _, _ := NewMock(t)
	existing := &domain.UserProfile{UserID: "user-1", Username: "alice", Level: 2}

	tests := []struct {
		name          string
		userID        string
		prepareMock   func()
		expected      *domain.UserProfile
		expectedError error
	}{
		{
			name:   "Existing profile",
			userID: "user-1",
			prepareMock: func() {
				profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(existing, nil)
			},
			expected: existing,
		},
		{
			name:   "Profile created on first access",
			userID: "abcdef0123456789",
			prepareMock: func() {
				created := &domain.UserProfile{UserID: "abcdef0123456789", Username: "User_abcdef01", AvatarURL: DefaultAvatar, Level: 1}
				gomock.InOrder(
					profiles.EXPECT().GetByUserID(gomock.Any(), "abcdef0123456789").Return(nil, nil),
					profiles.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).DoAndReturn(
						func(_ context.Context, p *domain.UserProfile) error {
							assert.Equal(t, "User_abcdef01", p.Username)
							assert.Equal(t, DefaultAvatar, p.AvatarURL)
							assert.Equal(t, 1, p.Level)
							assert.Zero(t, p.Experience)
							assert.Zero(t, p.Points)
							return nil
						}),
					profiles.EXPECT().GetByUserID(gomock.Any(), "abcdef0123456789").Return(created, nil),
				)
			},
			expected: &domain.UserProfile{UserID: "abcdef0123456789", Username: "User_abcdef01", AvatarURL: DefaultAvatar, Level: 1},
		},
		{
			name:   "Lookup fails",
			userID: "user-1",
			prepareMock: func() {
				profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name:   "Create fails",
			userID: "user-2",
			prepareMock: func() {
				profiles.EXPECT().GetByUserID(gomock.Any(), "user-2").Return(nil, nil)
				profiles.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Return(errors.New("insert error"))
			},
			expectedError: errors.New("insert error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			profile, err := service.GetOrCreateProfile(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, profile)
		})
	}
}

func TestAddExperience(t *testing.T) {
	service, profiles, logs, txManager := NewMock(t)

	tests := []struct {
		name          string
		actionType    string
		customExp     *int
		points        int
		prepareMock   func()
		expected      *domain.ExperienceResult
		expectedError error
	}{
		{
			name:       "Level up from the reward table",
			actionType: "solve_help",
			points:     10,
			prepareMock: func() {
				runInTx(txManager)
				profiles.EXPECT().GetForUpdate(gomock.Any(), "user-1").
					Return(&domain.UserProfile{UserID: "user-1", Experience: 90, Level: 1, Points: 5}, nil)
				profiles.EXPECT().UpdateProgress(gomock.Any(), "user-1", 110, 2, 15).Return(nil)
				logs.EXPECT().Create(gomock.Any(), &domain.ExperienceLog{
					UserID: "user-1", ActionType: "solve_help", ExperienceChange: 20, PointsChange: 10, CreatedAt: fixedNow,
				}).Return(&domain.ExperienceLog{ID: 1}, nil)
			},
			expected: &domain.ExperienceResult{
				LevelUp: true, OldLevel: 1, NewLevel: 2, Experience: 110, Points: 15, ExpGained: 20, PointsGained: 10,
			},
		},
		{
			name:       "Custom experience overrides the table",
			actionType: "comment",
			customExp:  intPtr(7),
			prepareMock: func() {
				runInTx(txManager)
				profiles.EXPECT().GetForUpdate(gomock.Any(), "user-1").
					Return(&domain.UserProfile{UserID: "user-1", Experience: 10, Level: 1}, nil)
				profiles.EXPECT().UpdateProgress(gomock.Any(), "user-1", 17, 1, 0).Return(nil)
				logs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.ExperienceLog{ID: 2}, nil)
			},
			expected: &domain.ExperienceResult{
				OldLevel: 1, NewLevel: 1, Experience: 17, ExpGained: 7,
			},
		},
		{
			name:       "Unknown action grants nothing but is still logged",
			actionType: "share",
			prepareMock: func() {
				runInTx(txManager)
				profiles.EXPECT().GetForUpdate(gomock.Any(), "user-1").
					Return(&domain.UserProfile{UserID: "user-1", Experience: 40, Level: 1, Points: 3}, nil)
				profiles.EXPECT().UpdateProgress(gomock.Any(), "user-1", 40, 1, 3).Return(nil)
				logs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.ExperienceLog{ID: 3}, nil)
			},
			expected: &domain.ExperienceResult{
				OldLevel: 1, NewLevel: 1, Experience: 40, Points: 3,
			},
		},
		{
			name:       "Missing profile is created inside the transaction",
			actionType: "like",
			prepareMock: func() {
				runInTx(txManager)
				gomock.InOrder(
					profiles.EXPECT().GetForUpdate(gomock.Any(), "user-1").Return(nil, nil),
					profiles.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Return(nil),
					profiles.EXPECT().GetForUpdate(gomock.Any(), "user-1").
						Return(&domain.UserProfile{UserID: "user-1", Level: 1}, nil),
				)
				profiles.EXPECT().UpdateProgress(gomock.Any(), "user-1", 1, 1, 0).Return(nil)
				logs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.ExperienceLog{ID: 4}, nil)
			},
			expected: &domain.ExperienceResult{
				OldLevel: 1, NewLevel: 1, Experience: 1, ExpGained: 1,
			},
		},
		{
			name:          "Empty action",
			actionType:    "  ",
			prepareMock:   func() {},
			expectedError: ErrEmptyAction,
		},
		{
			name:          "Negative custom experience",
			actionType:    "comment",
			customExp:     intPtr(-1),
			prepareMock:   func() {},
			expectedError: ErrNegativeAmount,
		},
		{
			name:          "Negative points",
			actionType:    "comment",
			points:        -5,
			prepareMock:   func() {},
			expectedError: ErrNegativeAmount,
		},
		{
			name:          "Custom experience above the column range",
			actionType:    "comment",
			customExp:     intPtr(MaxTotal + 1),
			prepareMock:   func() {},
			expectedError: ErrAmountTooLarge,
		},
		{
			name:       "Points would overflow the stored total",
			actionType: "like",
			points:     10,
			prepareMock: func() {
				runInTx(txManager)
				profiles.EXPECT().GetForUpdate(gomock.Any(), "user-1").
					Return(&domain.UserProfile{UserID: "user-1", Level: 1, Points: MaxTotal - 5}, nil)
			},
			expectedError: ErrAmountTooLarge,
		},
		{
			name:       "Log insert fails",
			actionType: "comment",
			prepareMock: func() {
				runInTx(txManager)
				profiles.EXPECT().GetForUpdate(gomock.Any(), "user-1").
					Return(&domain.UserProfile{UserID: "user-1", Level: 1}, nil)
				profiles.EXPECT().UpdateProgress(gomock.Any(), "user-1", 2, 1, 0).Return(nil)
				logs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("insert error"))
			},
			expectedError: errors.New("insert error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := service.AddExperience(context.Background(), "user-1", tt.actionType, tt.customExp, tt.points)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// Five solve_help actions take a fresh user from 0 to 100 experience (level 2)
// with one log row per call.
func TestAddExperience_RepeatedActions(t *testing.T) {
	service, profiles, logs, txManager := NewMock(t)
	state := domain.UserProfile{UserID: "user-1", Level: 1}
	var logged []domain.ExperienceLog

	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Times(5).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
	profiles.EXPECT().GetForUpdate(gomock.Any(), "user-1").Times(5).DoAndReturn(
		func(context.Context, string) (*domain.UserProfile, error) {
			p := state
			return &p, nil
		})
	profiles.EXPECT().UpdateProgress(gomock.Any(), "user-1", gomock.Any(), gomock.Any(), gomock.Any()).Times(5).DoAndReturn(
		func(_ context.Context, _ string, experience, level, points int) error {
			state.Experience, state.Level, state.Points = experience, level, points
			return nil
		})
	logs.EXPECT().Create(gomock.Any(), gomock.Any()).Times(5).DoAndReturn(
		func(_ context.Context, l *domain.ExperienceLog) (*domain.ExperienceLog, error) {
			logged = append(logged, *l)
			return l, nil
		})

	var last *domain.ExperienceResult
	for i := 0; i < 5; i++ {
		result, err := service.AddExperience(context.Background(), "user-1", "solve_help", nil, 0)
		assert.NoError(t, err)
		last = result
	}

	assert.Equal(t, 100, state.Experience)
	assert.Equal(t, 2, state.Level)
	assert.Len(t, logged, 5)
	assert.True(t, last.LevelUp)
	assert.Equal(t, 1, last.OldLevel)
	assert.Equal(t, 2, last.NewLevel)
}

func TestAddExperience_ValidationKind(t *testing.T) {
	service, _, _, _ := NewMock(t)
	_, err := service.AddExperience(context.Background(), "user-1", "", nil, 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCheckEligibility(t *testing.T) {
	service, profiles, _, _ := NewMock(t)

	tests := []struct {
		name     string
		profile  *domain.UserProfile
		eligible bool
	}{
		{"Both thresholds met", &domain.UserProfile{UserID: "user-1", Level: 5, Points: 100}, true},
		{"Level too low", &domain.UserProfile{UserID: "user-1", Level: 4, Points: 500}, false},
		{"Points too low", &domain.UserProfile{UserID: "user-1", Level: 9, Points: 99}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(tt.profile, nil)
			result, err := service.CheckEligibility(context.Background(), "user-1")
			assert.NoError(t, err)
			assert.Equal(t, tt.eligible, result.Eligible)
			assert.Equal(t, RequiredLevel, result.RequiredLevel)
			assert.Equal(t, RequiredPoints, result.RequiredPoints)
			assert.Equal(t, tt.profile.Level, result.Level)
			assert.Equal(t, tt.profile.Points, result.Points)
		})
	}
}

func TestUpdateUsername(t *testing.T) {
	service, profiles, _, _ := NewMock(t)

	tests := []struct {
		name          string
		username      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Trimmed and saved",
			username: "  neo  ",
			prepareMock: func() {
				profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(&domain.UserProfile{UserID: "user-1"}, nil)
				profiles.EXPECT().UpdateUsername(gomock.Any(), "user-1", "neo").
					Return(&domain.UserProfile{UserID: "user-1", Username: "neo"}, nil)
			},
		},
		{
			name:          "Blank",
			username:      "   ",
			prepareMock:   func() {},
			expectedError: ErrInvalidUsername,
		},
		{
			name:          "Too long",
			username:      strings.Repeat("я", 51),
			prepareMock:   func() {},
			expectedError: ErrInvalidUsername,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			profile, err := service.UpdateUsername(context.Background(), "user-1", tt.username)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "neo", profile.Username)
		})
	}
}

func TestUpdateAvatar(t *testing.T) {
	service, profiles, _, _ := NewMock(t)

	_, err := service.UpdateAvatar(context.Background(), "user-1", "")
	assert.ErrorIs(t, err, ErrInvalidAvatar)

	_, err = service.UpdateAvatar(context.Background(), "user-1", "/"+strings.Repeat("a", 255))
	assert.ErrorIs(t, err, ErrInvalidAvatar)

	profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(&domain.UserProfile{UserID: "user-1"}, nil)
	profiles.EXPECT().UpdateAvatar(gomock.Any(), "user-1", "/img/a.png").
		Return(&domain.UserProfile{UserID: "user-1", AvatarURL: "/img/a.png"}, nil)
	profile, err := service.UpdateAvatar(context.Background(), "user-1", "/img/a.png")
	assert.NoError(t, err)
	assert.Equal(t, "/img/a.png", profile.AvatarURL)
}

func TestListLogs(t *testing.T) {
	service, _, logs, _ := NewMock(t)

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"Default limit", 0, DefaultLogLimit},
		{"Explicit limit", 10, 10},
		{"Capped", 10000, MaxLogLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs.EXPECT().ListByUserID(gomock.Any(), "user-1", tt.want).Return([]domain.ExperienceLog{{ID: 1}}, nil)
			result, err := service.ListLogs(context.Background(), "user-1", tt.limit)
			assert.NoError(t, err)
			assert.Len(t, result, 1)
		})
	}
}
