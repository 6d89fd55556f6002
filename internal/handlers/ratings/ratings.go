package ratings

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/dto"
	"github.com/GlebRadaev/marketplace/internal/handlers/httperr"
	"github.com/GlebRadaev/marketplace/pkg/auth"
	"github.com/GlebRadaev/marketplace/pkg/utils"
)

type Service interface {
	RateProduct(ctx context.Context, userID string, productID, rating int, comment string) (*domain.Rating, error)
	RateShop(ctx context.Context, userID string, shopID, rating int, comment string) (*domain.Rating, error)
	ProductSummary(ctx context.Context, productID int) (*domain.RatingSummary, error)
	ShopSummary(ctx context.Context, shopID int) (*domain.RatingSummary, error)
}

type RatingsHandler struct {
	service Service
}

func New(service Service) *RatingsHandler {
	return &RatingsHandler{
		service: service,
	}
}

// RateProduct godoc
//
//	@Summary		Rate a product
//	@Description	Rates a product the caller has bought. A product can be rated once per user.
//	@Tags			Ratings
//	@Accept			json
//	@Produce		json
//	@Param			body	body	dto.RateProductRequestDTO	true	"Rating"
//	@Security		BearerAuth
//	@Success		201	{object}	domain.Rating
//	@Failure		400	{object}	utils.Response	"Invalid rating"
//	@Failure		403	{object}	utils.Response	"Product not purchased"
//	@Failure		409	{object}	utils.Response	"Already rated"
//	@Router			/api/v1/ratings/product [post]
func (h *RatingsHandler) RateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.RateProductRequestDTO
	if !utils.DecodeJSON(w, r, &req) {
		return
	}
	if req.ProductID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "product_id is required")
		return
	}
	rating, err := h.service.RateProduct(r.Context(), auth.UserIDFromContext(r.Context()), req.ProductID, req.Rating, req.Comment)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, rating)
}

// RateShop godoc
//
//	@Summary		Rate a shop
//	@Description	Rates a shop the caller has ordered from. A shop can be rated once per user.
//	@Tags			Ratings
//	@Accept			json
//	@Produce		json
//	@Param			body	body	dto.RateShopRequestDTO	true	"Rating"
//	@Security		BearerAuth
//	@Success		201	{object}	domain.Rating
//	@Failure		400	{object}	utils.Response	"Invalid rating"
//	@Failure		403	{object}	utils.Response	"No order from this shop"
//	@Failure		409	{object}	utils.Response	"Already rated"
//	@Router			/api/v1/ratings/shop [post]
func (h *RatingsHandler) RateShop(w http.ResponseWriter, r *http.Request) {
	var req dto.RateShopRequestDTO
	if !utils.DecodeJSON(w, r, &req) {
		return
	}
	if req.ShopID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "shop_id is required")
		return
	}
	rating, err := h.service.RateShop(r.Context(), auth.UserIDFromContext(r.Context()), req.ShopID, req.Rating, req.Comment)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, rating)
}

// ProductSummary godoc
//
//	@Summary	Product ratings
//	@Tags		Ratings
//	@Produce	json
//	@Param		id	path		int	true	"Product ID"
//	@Success	200	{object}	domain.RatingSummary
//	@Router		/api/v1/ratings/product/{id} [get]
func (h *RatingsHandler) ProductSummary(w http.ResponseWriter, r *http.Request) {
	h.summary(w, r, h.service.ProductSummary)
}

// ShopSummary godoc
//
//	@Summary	Shop ratings
//	@Tags		Ratings
//	@Produce	json
//	@Param		id	path		int	true	"Shop ID"
//	@Success	200	{object}	domain.RatingSummary
//	@Router		/api/v1/ratings/shop/{id} [get]
func (h *RatingsHandler) ShopSummary(w http.ResponseWriter, r *http.Request) {
	h.summary(w, r, h.service.ShopSummary)
}

func (h *RatingsHandler) summary(w http.ResponseWriter, r *http.Request, fn func(context.Context, int) (*domain.RatingSummary, error)) {
	id, ok := utils.PathInt(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid id")
		return
	}
	summary, err := fn(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, summary)
}
