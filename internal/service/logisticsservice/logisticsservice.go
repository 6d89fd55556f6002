package logisticsservice

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/pg"
)

var (
	ErrOrderNotFound     = domain.NewError(domain.ErrNotFound, "order not found")
	ErrLogisticsNotFound = domain.NewError(domain.ErrNotFound, "logistics not found")
	ErrNotShopOwner      = domain.NewError(domain.ErrPermissionDenied, "only the shop owner can manage logistics of this order")
	ErrNoAccess          = domain.NewError(domain.ErrPermissionDenied, "no access to logistics of this order")
	ErrLogisticsExists   = domain.NewError(domain.ErrConflict, "logistics already exist for this order")
	ErrOrderNotPaid      = domain.NewError(domain.ErrConflict, "only paid orders can be shipped")
	ErrAlreadyDelivered  = domain.NewError(domain.ErrConflict, "order has already been delivered")
	ErrTrackingRequired  = domain.NewError(domain.ErrValidation, "tracking_number and carrier are required")
	ErrInvalidStatus     = domain.NewError(domain.ErrValidation, "status must be one of: shipped, in_transit, delivered")
)

type OrderRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}

type ShopRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Shop, error)
}

type LogisticsRepo interface {
	GetByID(ctx context.Context, id int) (*domain.OrderLogistics, error)
	GetByOrderID(ctx context.Context, orderID int) (*domain.OrderLogistics, error)
	Create(ctx context.Context, l *domain.OrderLogistics) (*domain.OrderLogistics, error)
	Update(ctx context.Context, l *domain.OrderLogistics) (*domain.OrderLogistics, error)
}

type Service struct {
	orders    OrderRepo
	shops     ShopRepo
	logistics LogisticsRepo
	txManager pg.TXManager
	now       func() time.Time
}

func New(orders OrderRepo, shops ShopRepo, logistics LogisticsRepo, txManager pg.TXManager) *Service {
	return &Service{
		orders:    orders,
		shops:     shops,
		logistics: logistics,
		txManager: txManager,
		now:       time.Now,
	}
}

// Create ships an order: the logistics row starts as shipped and the order
// follows in the same transaction.
func (s *Service) Create(ctx context.Context, userID string, orderID int, trackingNumber, carrier string) (*domain.OrderLogistics, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	carrier = strings.TrimSpace(carrier)
	if trackingNumber == "" || carrier == "" {
		return nil, ErrTrackingRequired
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	owner, err := s.isShopOwner(ctx, order, userID)
	if err != nil {
		return nil, err
	}
	if !owner {
		return nil, ErrNotShopOwner
	}
	if order.Status != domain.OrderStatusPaid {
		return nil, ErrOrderNotPaid
	}

	existing, err := s.logistics.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrLogisticsExists
	}

	var created *domain.OrderLogistics
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		created, err = s.logistics.Create(ctx, &domain.OrderLogistics{
			OrderID:        orderID,
			TrackingNumber: trackingNumber,
			Carrier:        carrier,
			Status:         domain.LogisticsStatusShipped,
			UpdatedAt:      s.now(),
		})
		if err != nil {
			return err
		}
		if created == nil {
			return ErrLogisticsExists
		}
		return s.orders.UpdateStatus(ctx, orderID, domain.OrderStatusShipped)
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("order shipped", zap.Int("order_id", orderID), zap.String("carrier", carrier))
	return created, nil
}

func (s *Service) GetByOrder(ctx context.Context, userID string, orderID int) (*domain.OrderLogistics, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return s.readable(ctx, order, userID)
}

// GetByOrderNumber expects a Luhn-valid number; callers reject malformed input earlier.
func (s *Service) GetByOrderNumber(ctx context.Context, userID, orderNumber string) (*domain.OrderLogistics, error) {
	order, err := s.orders.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return s.readable(ctx, order, userID)
}

// Update moves the shipment along. Reaching delivered completes the order.
func (s *Service) Update(ctx context.Context, userID string, logisticsID int, status, currentLocation string) (*domain.OrderLogistics, error) {
	switch status {
	case domain.LogisticsStatusShipped, domain.LogisticsStatusInTransit, domain.LogisticsStatusDelivered:
	default:
		return nil, ErrInvalidStatus
	}

	current, err := s.logistics.GetByID(ctx, logisticsID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrLogisticsNotFound
	}
	order, err := s.orders.FindByID(ctx, current.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	owner, err := s.isShopOwner(ctx, order, userID)
	if err != nil {
		return nil, err
	}
	if !owner {
		return nil, ErrNotShopOwner
	}
	if current.Status == domain.LogisticsStatusDelivered {
		return nil, ErrAlreadyDelivered
	}

	next := *current
	next.Status = status
	if loc := strings.TrimSpace(currentLocation); loc != "" {
		next.CurrentLocation = loc
	}
	next.UpdatedAt = s.now()

	var updated *domain.OrderLogistics
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		updated, err = s.logistics.Update(ctx, &next)
		if err != nil {
			return err
		}
		if updated == nil {
			// The row was delivered after it was read above.
			return ErrAlreadyDelivered
		}
		if status == domain.LogisticsStatusDelivered {
			return s.orders.UpdateStatus(ctx, order.ID, domain.OrderStatusCompleted)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("logistics updated", zap.Int("order_id", order.ID), zap.String("status", status))
	return updated, nil
}

func (s *Service) readable(ctx context.Context, order *domain.Order, userID string) (*domain.OrderLogistics, error) {
	if order.UserID != userID {
		owner, err := s.isShopOwner(ctx, order, userID)
		if err != nil {
			return nil, err
		}
		if !owner {
			return nil, ErrNoAccess
		}
	}
	l, err := s.logistics.GetByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrLogisticsNotFound
	}
	return l, nil
}

func (s *Service) isShopOwner(ctx context.Context, order *domain.Order, userID string) (bool, error) {
	shop, err := s.shops.GetByID(ctx, order.ShopID)
	if err != nil {
		return false, err
	}
	return shop != nil && shop.UserID == userID, nil
}
