package orderservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/marketplace/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func pendingOrder() *domain.Order {
	return &domain.Order{ID: 1, UserID: "buyer-1", ShopID: 3, OrderNumber: "2404815702", Status: domain.OrderStatusPending}
}

func TestPay(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		userID        string
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Pending order is paid",
			userID: "buyer-1",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(pendingOrder(), nil)
				repo.EXPECT().CompareAndSetStatus(gomock.Any(), 1, domain.OrderStatusPending, domain.OrderStatusPaid).Return(true, nil)
			},
		},
		{
			name:   "Missing order",
			userID: "buyer-1",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name:   "Order of another buyer is hidden",
			userID: "buyer-2",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(pendingOrder(), nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name:   "Shipped order cannot be paid again",
			userID: "buyer-1",
			prepareMock: func() {
				o := pendingOrder()
				o.Status = domain.OrderStatusShipped
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(o, nil)
			},
			expectedError: ErrOrderNotPending,
		},
		{
			name:   "Concurrent cancel wins",
			userID: "buyer-1",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(pendingOrder(), nil)
				repo.EXPECT().CompareAndSetStatus(gomock.Any(), 1, domain.OrderStatusPending, domain.OrderStatusPaid).Return(false, nil)
			},
			expectedError: ErrOrderNotPending,
		},
		{
			name:   "Repository error",
			userID: "buyer-1",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			order, err := service.Pay(context.Background(), tt.userID, 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, order)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.OrderStatusPaid, order.Status)
		})
	}
}

func TestCancel(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().FindByID(gomock.Any(), 1).Return(pendingOrder(), nil)
	repo.EXPECT().CompareAndSetStatus(gomock.Any(), 1, domain.OrderStatusPending, domain.OrderStatusCancelled).Return(true, nil)

	order, err := service.Cancel(context.Background(), "buyer-1", 1)
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, order.Status)

	paid := pendingOrder()
	paid.Status = domain.OrderStatusPaid
	repo.EXPECT().FindByID(gomock.Any(), 1).Return(paid, nil)

	_, err = service.Cancel(context.Background(), "buyer-1", 1)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
