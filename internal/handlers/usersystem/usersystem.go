package usersystem

import (
	"context"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/dto"
	"github.com/GlebRadaev/marketplace/internal/handlers/httperr"
	"github.com/GlebRadaev/marketplace/pkg/auth"
	"github.com/GlebRadaev/marketplace/pkg/utils"
)

type Service interface {
	GetOrCreateProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
	UpdateUsername(ctx context.Context, userID, username string) (*domain.UserProfile, error)
	UpdateAvatar(ctx context.Context, userID, avatarURL string) (*domain.UserProfile, error)
	AddExperience(ctx context.Context, userID, actionType string, customExp *int, points int) (*domain.ExperienceResult, error)
	ListLogs(ctx context.Context, userID string, limit int) ([]domain.ExperienceLog, error)
	CheckEligibility(ctx context.Context, userID string) (*domain.Eligibility, error)
}

type UserSystemHandler struct {
	service Service
}

func New(service Service) *UserSystemHandler {
	return &UserSystemHandler{
		service: service,
	}
}

// GetProfile godoc
//
//	@Summary		Get current user profile
//	@Description	Returns the progression profile of the caller, creating it on first access.
//	@Tags			UserSystem
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	domain.UserProfile
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/user_system/profile [get]
func (h *UserSystemHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.GetOrCreateProfile(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, profile)
}

// UpdateUsername godoc
//
//	@Summary	Change username
//	@Tags		UserSystem
//	@Accept		json
//	@Produce	json
//	@Param		body	body	dto.UpdateUsernameRequestDTO	true	"New username"
//	@Security	BearerAuth
//	@Success	200	{object}	domain.UserProfile
//	@Failure	400	{object}	utils.Response	"Invalid username"
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/api/v1/user_system/username [put]
func (h *UserSystemHandler) UpdateUsername(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateUsernameRequestDTO
	if !utils.DecodeJSON(w, r, &req) {
		return
	}
	profile, err := h.service.UpdateUsername(r.Context(), auth.UserIDFromContext(r.Context()), req.Username)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, profile)
}

// UpdateAvatar godoc
//
//	@Summary	Change avatar
//	@Tags		UserSystem
//	@Accept		json
//	@Produce	json
//	@Param		body	body	dto.UpdateAvatarRequestDTO	true	"Avatar URL"
//	@Security	BearerAuth
//	@Success	200	{object}	domain.UserProfile
//	@Failure	400	{object}	utils.Response	"Invalid avatar URL"
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/api/v1/user_system/avatar [put]
func (h *UserSystemHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateAvatarRequestDTO
	if !utils.DecodeJSON(w, r, &req) {
		return
	}
	profile, err := h.service.UpdateAvatar(r.Context(), auth.UserIDFromContext(r.Context()), req.AvatarURL)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, profile)
}

// AddExperience godoc
//
//	@Summary		Record an action
//	@Description	Applies the experience reward of the action (or custom_exp) and points to the caller.
//	@Tags			UserSystem
//	@Accept			json
//	@Produce		json
//	@Param			body	body	dto.AddExperienceRequestDTO	true	"Action"
//	@Security		BearerAuth
//	@Success		200	{object}	domain.ExperienceResult
//	@Failure		400	{object}	utils.Response	"Invalid action"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/user_system/experience [post]
func (h *UserSystemHandler) AddExperience(w http.ResponseWriter, r *http.Request) {
	var req dto.AddExperienceRequestDTO
	if !utils.DecodeJSON(w, r, &req) {
		return
	}
	result, err := h.service.AddExperience(r.Context(), auth.UserIDFromContext(r.Context()), req.ActionType, req.CustomExp, req.Points)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// ListExperienceLogs godoc
//
//	@Summary	Experience history
//	@Tags		UserSystem
//	@Produce	json
//	@Param		limit	query	int	false	"Maximum number of entries"
//	@Security	BearerAuth
//	@Success	200	{array}		domain.ExperienceLog
//	@Failure	400	{object}	utils.Response	"Invalid limit"
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/api/v1/user_system/experience/logs [get]
func (h *UserSystemHandler) ListExperienceLogs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			utils.RespondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = v
	}
	logs, err := h.service.ListLogs(r.Context(), auth.UserIDFromContext(r.Context()), limit)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, logs)
}

// CheckEligibility godoc
//
//	@Summary	Inspector eligibility
//	@Tags		UserSystem
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	domain.Eligibility
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/api/v1/user_system/inspector/eligibility [get]
func (h *UserSystemHandler) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.CheckEligibility(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}
