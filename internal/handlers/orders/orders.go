package orders

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/handlers/httperr"
	"github.com/GlebRadaev/marketplace/pkg/auth"
	"github.com/GlebRadaev/marketplace/pkg/utils"
)

type Service interface {
	Pay(ctx context.Context, userID string, orderID int) (*domain.Order, error)
	Cancel(ctx context.Context, userID string, orderID int) (*domain.Order, error)
}

type OrderHandler struct {
	service Service
}

func New(service Service) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// Pay godoc
//
//	@Summary		Pay an order
//	@Description	Moves a pending order of the caller to paid.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	int	true	"Order ID"
//	@Security		BearerAuth
//	@Success		200	{object}	domain.Order
//	@Failure		400	{object}	utils.Response	"Invalid order id"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		409	{object}	utils.Response	"Order is not pending"
//	@Router			/api/v1/orders/{id}/pay [post]
func (h *OrderHandler) Pay(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Pay)
}

// Cancel godoc
//
//	@Summary		Cancel an order
//	@Description	Moves a pending order of the caller to cancelled.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	int	true	"Order ID"
//	@Security		BearerAuth
//	@Success		200	{object}	domain.Order
//	@Failure		400	{object}	utils.Response	"Invalid order id"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		409	{object}	utils.Response	"Order is not pending"
//	@Router			/api/v1/orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Cancel)
}

func (h *OrderHandler) transition(w http.ResponseWriter, r *http.Request, fn func(context.Context, string, int) (*domain.Order, error)) {
	orderID, ok := utils.PathInt(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	order, err := fn(r.Context(), auth.UserIDFromContext(r.Context()), orderID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}
