package progressionservice

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/pg"
)

const (
	ExpPerLevel    = 100
	RequiredLevel  = 5
	RequiredPoints = 100

	DefaultAvatar   = "/images/UserAvatar.jpg"
	DefaultLogLimit = 50
	MaxLogLimit     = 500

	// MaxTotal bounds stored experience and points to the INTEGER columns.
	MaxTotal = math.MaxInt32

	maxUsernameLen = 50
	maxAvatarLen   = 255
)

// Rewards is the experience granted per action when no custom amount is given.
var Rewards = map[string]int{
	"post_daily": 5,
	"post_help":  5,
	"comment":    2,
	"like":       1,
	"solve_help": 20,
}

var (
	ErrEmptyAction     = domain.NewError(domain.ErrValidation, "action_type is required")
	ErrNegativeAmount  = domain.NewError(domain.ErrValidation, "experience and points must not be negative")
	ErrAmountTooLarge  = domain.NewError(domain.ErrValidation, fmt.Sprintf("experience and points must not exceed %d in total", MaxTotal))
	ErrInvalidUsername = domain.NewError(domain.ErrValidation, fmt.Sprintf("username must be 1 to %d characters", maxUsernameLen))
	ErrInvalidAvatar   = domain.NewError(domain.ErrValidation, fmt.Sprintf("avatar_url must be 1 to %d characters", maxAvatarLen))
)

type ProfileRepo interface {
	GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error)
	GetForUpdate(ctx context.Context, userID string) (*domain.UserProfile, error)
	CreateIfAbsent(ctx context.Context, profile *domain.UserProfile) error
	UpdateProgress(ctx context.Context, userID string, experience, level, points int) error
	UpdateUsername(ctx context.Context, userID, username string) (*domain.UserProfile, error)
	UpdateAvatar(ctx context.Context, userID, avatarURL string) (*domain.UserProfile, error)
}

type LogRepo interface {
	Create(ctx context.Context, log *domain.ExperienceLog) (*domain.ExperienceLog, error)
	ListByUserID(ctx context.Context, userID string, limit int) ([]domain.ExperienceLog, error)
}

type Service struct {
	profiles  ProfileRepo
	logs      LogRepo
	txManager pg.TXManager
	now       func() time.Time
}

func New(profiles ProfileRepo, logs LogRepo, txManager pg.TXManager) *Service {
	return &Service{
		profiles:  profiles,
		logs:      logs,
		txManager: txManager,
		now:       time.Now,
	}
}

// LevelFor derives the level from accumulated experience.
func LevelFor(experience int) int {
	return max(1, experience/ExpPerLevel+1)
}

// GetOrCreateProfile returns the caller's profile, creating it with defaults
// on first access. Concurrent first calls converge on the same row.
func (s *Service) GetOrCreateProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	if err := s.profiles.CreateIfAbsent(ctx, s.defaultProfile(userID)); err != nil {
		return nil, err
	}
	profile, err = s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("profile of %s missing after create", userID)
	}
	zap.L().Info("user profile created", zap.String("user_id", userID))
	return profile, nil
}

// AddExperience applies an action to the user's progress. The profile update
// and the log row are written in one transaction under a row lock.
func (s *Service) AddExperience(ctx context.Context, userID, actionType string, customExp *int, points int) (*domain.ExperienceResult, error) {
	if strings.TrimSpace(actionType) == "" {
		return nil, ErrEmptyAction
	}
	exp := Rewards[actionType]
	if customExp != nil {
		exp = *customExp
	}
	if exp < 0 || points < 0 {
		return nil, ErrNegativeAmount
	}
	if exp > MaxTotal || points > MaxTotal {
		return nil, ErrAmountTooLarge
	}

	var result *domain.ExperienceResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		profile, err := s.lockProfile(ctx, userID)
		if err != nil {
			return err
		}

		if exp > MaxTotal-profile.Experience || points > MaxTotal-profile.Points {
			return ErrAmountTooLarge
		}

		oldLevel := profile.Level
		experience := profile.Experience + exp
		level := LevelFor(experience)
		total := profile.Points + points

		if err := s.profiles.UpdateProgress(ctx, userID, experience, level, total); err != nil {
			return err
		}
		_, err = s.logs.Create(ctx, &domain.ExperienceLog{
			UserID:           userID,
			ActionType:       actionType,
			ExperienceChange: exp,
			PointsChange:     points,
			CreatedAt:        s.now(),
		})
		if err != nil {
			return err
		}

		result = &domain.ExperienceResult{
			LevelUp:      level > oldLevel,
			OldLevel:     oldLevel,
			NewLevel:     level,
			Experience:   experience,
			Points:       total,
			ExpGained:    exp,
			PointsGained: points,
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to add experience", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	if result.LevelUp {
		zap.L().Info("user levelled up", zap.String("user_id", userID), zap.Int("level", result.NewLevel))
	}
	return result, nil
}

func (s *Service) CheckEligibility(ctx context.Context, userID string) (*domain.Eligibility, error) {
	profile, err := s.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.Eligibility{
		Eligible:       profile.Level >= RequiredLevel && profile.Points >= RequiredPoints,
		Level:          profile.Level,
		Points:         profile.Points,
		RequiredLevel:  RequiredLevel,
		RequiredPoints: RequiredPoints,
	}, nil
}

func (s *Service) UpdateUsername(ctx context.Context, userID, username string) (*domain.UserProfile, error) {
	username = strings.TrimSpace(username)
	if n := utf8.RuneCountInString(username); n == 0 || n > maxUsernameLen {
		return nil, ErrInvalidUsername
	}
	if _, err := s.GetOrCreateProfile(ctx, userID); err != nil {
		return nil, err
	}
	return s.profiles.UpdateUsername(ctx, userID, username)
}

func (s *Service) UpdateAvatar(ctx context.Context, userID, avatarURL string) (*domain.UserProfile, error) {
	avatarURL = strings.TrimSpace(avatarURL)
	if avatarURL == "" || len(avatarURL) > maxAvatarLen {
		return nil, ErrInvalidAvatar
	}
	if _, err := s.GetOrCreateProfile(ctx, userID); err != nil {
		return nil, err
	}
	return s.profiles.UpdateAvatar(ctx, userID, avatarURL)
}

func (s *Service) ListLogs(ctx context.Context, userID string, limit int) ([]domain.ExperienceLog, error) {
	if limit <= 0 {
		limit = DefaultLogLimit
	}
	limit = min(limit, MaxLogLimit)
	return s.logs.ListByUserID(ctx, userID, limit)
}

func (s *Service) lockProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := s.profiles.GetForUpdate(ctx, userID)
	if err != nil || profile != nil {
		return profile, err
	}
	if err := s.profiles.CreateIfAbsent(ctx, s.defaultProfile(userID)); err != nil {
		return nil, err
	}
	profile, err = s.profiles.GetForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("profile of %s missing after create", userID)
	}
	return profile, nil
}

func (s *Service) defaultProfile(userID string) *domain.UserProfile {
	short := userID
	if len(short) > 8 {
		short = short[:8]
	}
	return &domain.UserProfile{
		UserID:    userID,
		Username:  "User_" + short,
		AvatarURL: DefaultAvatar,
		Level:     1,
		CreatedAt: s.now(),
	}
}
