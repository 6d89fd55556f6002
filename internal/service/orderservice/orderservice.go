package orderservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/marketplace/internal/domain"
)

var (
	ErrOrderNotFound   = domain.NewError(domain.ErrNotFound, "order not found")
	ErrOrderNotPending = domain.NewError(domain.ErrConflict, "only pending orders can be paid or cancelled")
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	CompareAndSetStatus(ctx context.Context, id int, from, to string) (bool, error)
}

// Service owns the buyer side of the order lifecycle. Orders are created as
// pending through the entity API; shipping and completion belong to logistics.
type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Pay(ctx context.Context, userID string, orderID int) (*domain.Order, error) {
	return s.transition(ctx, userID, orderID, domain.OrderStatusPaid)
}

func (s *Service) Cancel(ctx context.Context, userID string, orderID int) (*domain.Order, error) {
	return s.transition(ctx, userID, orderID, domain.OrderStatusCancelled)
}

// transition moves a pending order of the buyer to status. Orders of other
// users are reported as missing.
func (s *Service) transition(ctx context.Context, userID string, orderID int, status string) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	if order.Status != domain.OrderStatusPending {
		zap.L().Info("order is not pending", zap.Int("order_id", orderID), zap.String("status", order.Status))
		return nil, ErrOrderNotPending
	}

	swapped, err := s.repo.CompareAndSetStatus(ctx, orderID, domain.OrderStatusPending, status)
	if err != nil {
		return nil, err
	}
	if !swapped {
		return nil, ErrOrderNotPending
	}

	order.Status = status
	zap.L().Info("order status changed", zap.Int("order_id", orderID), zap.String("status", status))
	return order, nil
}
