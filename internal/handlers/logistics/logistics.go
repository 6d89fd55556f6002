package logistics

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/dto"
	"github.com/GlebRadaev/marketplace/internal/handlers/httperr"
	"github.com/GlebRadaev/marketplace/pkg/auth"
	"github.com/GlebRadaev/marketplace/pkg/utils"
	"github.com/GlebRadaev/marketplace/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, userID string, orderID int, trackingNumber, carrier string) (*domain.OrderLogistics, error)
	GetByOrder(ctx context.Context, userID string, orderID int) (*domain.OrderLogistics, error)
	GetByOrderNumber(ctx context.Context, userID, orderNumber string) (*domain.OrderLogistics, error)
	Update(ctx context.Context, userID string, logisticsID int, status, currentLocation string) (*domain.OrderLogistics, error)
}

type LogisticsHandler struct {
	service Service
}

func New(service Service) *LogisticsHandler {
	return &LogisticsHandler{
		service: service,
	}
}

// Create godoc
//
//	@Summary		Ship an order
//	@Description	Creates the shipment of an order. Only the owner of the order's shop may ship it.
//	@Tags			Logistics
//	@Accept			json
//	@Produce		json
//	@Param			body	body	dto.CreateLogisticsRequestDTO	true	"Shipment"
//	@Security		BearerAuth
//	@Success		201	{object}	domain.OrderLogistics
//	@Failure		400	{object}	utils.Response	"Invalid request"
//	@Failure		403	{object}	utils.Response	"Not the shop owner"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		409	{object}	utils.Response	"Already shipped or not paid"
//	@Router			/api/v1/logistics [post]
func (h *LogisticsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLogisticsRequestDTO
	if !utils.DecodeJSON(w, r, &req) {
		return
	}
	if req.OrderID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "order_id is required")
		return
	}
	l, err := h.service.Create(r.Context(), auth.UserIDFromContext(r.Context()), req.OrderID, req.TrackingNumber, req.Carrier)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, l)
}

// GetByOrder godoc
//
//	@Summary	Shipment of an order
//	@Tags		Logistics
//	@Produce	json
//	@Param		order_id	path	int	true	"Order ID"
//	@Security	BearerAuth
//	@Success	200	{object}	domain.OrderLogistics
//	@Failure	403	{object}	utils.Response	"Neither buyer nor seller"
//	@Failure	404	{object}	utils.Response	"Order or shipment not found"
//	@Router		/api/v1/logistics/order/{order_id} [get]
func (h *LogisticsHandler) GetByOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := utils.PathInt(r, "order_id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	l, err := h.service.GetByOrder(r.Context(), auth.UserIDFromContext(r.Context()), orderID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, l)
}

// GetByOrderNumber godoc
//
//	@Summary	Shipment by order number
//	@Tags		Logistics
//	@Produce	json
//	@Param		number	path	string	true	"Order number"
//	@Security	BearerAuth
//	@Success	200	{object}	domain.OrderLogistics
//	@Failure	403	{object}	utils.Response	"Neither buyer nor seller"
//	@Failure	404	{object}	utils.Response	"Order or shipment not found"
//	@Failure	422	{object}	utils.Response	"Invalid order number"
//	@Router		/api/v1/logistics/order-number/{number} [get]
func (h *LogisticsHandler) GetByOrderNumber(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	if !validate.IsLuna(number) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid order number")
		return
	}
	l, err := h.service.GetByOrderNumber(r.Context(), auth.UserIDFromContext(r.Context()), number)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, l)
}

// Update godoc
//
//	@Summary		Update a shipment
//	@Description	Moves the shipment to a new status. Delivered completes the order.
//	@Tags			Logistics
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int								true	"Logistics ID"
//	@Param			body	body	dto.UpdateLogisticsRequestDTO	true	"New status"
//	@Security		BearerAuth
//	@Success		200	{object}	domain.OrderLogistics
//	@Failure		400	{object}	utils.Response	"Invalid status"
//	@Failure		403	{object}	utils.Response	"Not the shop owner"
//	@Failure		404	{object}	utils.Response	"Shipment not found"
//	@Failure		409	{object}	utils.Response	"Already delivered"
//	@Router			/api/v1/logistics/{id} [put]
func (h *LogisticsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.PathInt(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req dto.UpdateLogisticsRequestDTO
	if !utils.DecodeJSON(w, r, &req) {
		return
	}
	l, err := h.service.Update(r.Context(), auth.UserIDFromContext(r.Context()), id, req.Status, req.CurrentLocation)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, l)
}
