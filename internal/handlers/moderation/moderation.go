package moderation

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/dto"
	"github.com/GlebRadaev/marketplace/internal/handlers/httperr"
	"github.com/GlebRadaev/marketplace/pkg/auth"
	"github.com/GlebRadaev/marketplace/pkg/utils"
)

type Service interface {
	InspectorStatus(ctx context.Context, userID string) (*domain.InspectorStatus, error)
	ApplyForInspector(ctx context.Context, userID string) (*domain.Inspector, error)
	ListPendingReviewItems(ctx context.Context, inspectorID string) (*domain.PendingReviewItems, error)
	ListPendingShops(ctx context.Context, inspectorID string) ([]domain.Shop, error)
	ListPendingPosts(ctx context.Context, inspectorID string) ([]domain.Post, error)
	DecideShop(ctx context.Context, shopID int, decision, reviewerID, comment string) (*domain.Review, error)
	DecidePost(ctx context.Context, postID int, decision, reviewerID, comment string) (*domain.Review, error)
}

type ModerationHandler struct {
	service Service
}

func New(service Service) *ModerationHandler {
	return &ModerationHandler{
		service: service,
	}
}

// InspectorStatus godoc
//
//	@Summary	Inspector status of the caller
//	@Tags		Inspectors
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	domain.InspectorStatus
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/api/v1/inspectors/me [get]
func (h *ModerationHandler) InspectorStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.InspectorStatus(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, status)
}

// Apply godoc
//
//	@Summary		Apply for the inspector role
//	@Description	Appoints the caller once level and points thresholds are met.
//	@Tags			Inspectors
//	@Produce		json
//	@Security		BearerAuth
//	@Success		201	{object}	domain.Inspector
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Thresholds not met"
//	@Failure		409	{object}	utils.Response	"Already an inspector"
//	@Router			/api/v1/inspectors/apply [post]
func (h *ModerationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	inspector, err := h.service.ApplyForInspector(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, inspector)
}

// Tasks godoc
//
//	@Summary	Pending review items
//	@Tags		Inspectors
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	domain.PendingReviewItems
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	403	{object}	utils.Response	"Not an inspector"
//	@Router		/api/v1/inspectors/tasks [get]
func (h *ModerationHandler) Tasks(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListPendingReviewItems(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

// PendingShops godoc
//
//	@Summary	Shops waiting for review
//	@Tags		ShopReviews
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		domain.Shop
//	@Failure	403	{object}	utils.Response	"Not an inspector"
//	@Router		/api/v1/shop-reviews/pending [get]
func (h *ModerationHandler) PendingShops(w http.ResponseWriter, r *http.Request) {
	shops, err := h.service.ListPendingShops(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, shops)
}

// ApproveShop godoc
//
//	@Summary	Approve a pending shop
//	@Tags		ShopReviews
//	@Accept		json
//	@Produce	json
//	@Param		id		path	int								true	"Shop ID"
//	@Param		body	body	dto.ReviewDecisionRequestDTO	false	"Review comment"
//	@Security	BearerAuth
//	@Success	200	{object}	domain.Review
//	@Failure	403	{object}	utils.Response	"Not an inspector"
//	@Failure	404	{object}	utils.Response	"Shop not found"
//	@Failure	409	{object}	utils.Response	"Already reviewed"
//	@Router		/api/v1/shop-reviews/{id}/approve [post]
func (h *ModerationHandler) ApproveShop(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, domain.StatusApproved, h.service.DecideShop)
}

// RejectShop godoc
//
//	@Summary	Reject a pending shop
//	@Tags		ShopReviews
//	@Accept		json
//	@Produce	json
//	@Param		id		path	int								true	"Shop ID"
//	@Param		body	body	dto.ReviewDecisionRequestDTO	false	"Review comment"
//	@Security	BearerAuth
//	@Success	200	{object}	domain.Review
//	@Failure	403	{object}	utils.Response	"Not an inspector"
//	@Failure	404	{object}	utils.Response	"Shop not found"
//	@Failure	409	{object}	utils.Response	"Already reviewed"
//	@Router		/api/v1/shop-reviews/{id}/reject [post]
func (h *ModerationHandler) RejectShop(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, domain.StatusRejected, h.service.DecideShop)
}

// PendingPosts godoc
//
//	@Summary	Help posts waiting for review
//	@Tags		PostReviews
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		domain.Post
//	@Failure	403	{object}	utils.Response	"Not an inspector"
//	@Router		/api/v1/post-reviews/pending [get]
func (h *ModerationHandler) PendingPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.ListPendingPosts(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, posts)
}

// ApprovePost godoc
//
//	@Summary	Approve a pending help post
//	@Tags		PostReviews
//	@Accept		json
//	@Produce	json
//	@Param		id		path	int								true	"Post ID"
//	@Param		body	body	dto.ReviewDecisionRequestDTO	false	"Review comment"
//	@Security	BearerAuth
//	@Success	200	{object}	domain.Review
//	@Failure	403	{object}	utils.Response	"Not an inspector"
//	@Failure	404	{object}	utils.Response	"Post not found"
//	@Failure	409	{object}	utils.Response	"Already reviewed"
//	@Router		/api/v1/post-reviews/{id}/approve [post]
func (h *ModerationHandler) ApprovePost(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, domain.StatusApproved, h.service.DecidePost)
}

// RejectPost godoc
//
//	@Summary	Reject a pending help post
//	@Tags		PostReviews
//	@Accept		json
//	@Produce	json
//	@Param		id		path	int								true	"Post ID"
//	@Param		body	body	dto.ReviewDecisionRequestDTO	false	"Review comment"
//	@Security	BearerAuth
//	@Success	200	{object}	domain.Review
//	@Failure	403	{object}	utils.Response	"Not an inspector"
//	@Failure	404	{object}	utils.Response	"Post not found"
//	@Failure	409	{object}	utils.Response	"Already reviewed"
//	@Router		/api/v1/post-reviews/{id}/reject [post]
func (h *ModerationHandler) RejectPost(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, domain.StatusRejected, h.service.DecidePost)
}

type decideFunc func(ctx context.Context, id int, decision, reviewerID, comment string) (*domain.Review, error)

func (h *ModerationHandler) decide(w http.ResponseWriter, r *http.Request, decision string, fn decideFunc) {
	id, ok := utils.PathInt(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid id")
		return
	}
	// the body is optional
	var req dto.ReviewDecisionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	review, err := fn(r.Context(), id, decision, auth.UserIDFromContext(r.Context()), req.ReviewComment)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, review)
}
