package orderrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/pg"
)

const orderColumns = `id, user_id, shop_id, order_number, total_amount, status, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = $1
    `
	return r.findOne(ctx, query, id)
}

func (r *Repository) FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE order_number = $1
    `
	return r.findOne(ctx, query, orderNumber)
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) error {
	query := `
        UPDATE orders
        SET status = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("failed to update order status", zap.Error(err))
		return err
	}
	return nil
}

// CompareAndSetStatus moves the order from one status to another and reports
// whether this call performed the transition.
func (r *Repository) CompareAndSetStatus(ctx context.Context, id int, from, to string) (bool, error) {
	query := `UPDATE orders SET status = $1 WHERE id = $2 AND status = $3`

	tag, err := r.db.Exec(ctx, query, to, id, from)
	if err != nil {
		zap.L().Error("failed to update order status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// HasPurchasedProduct reports whether the user has a paid or completed order
// containing the product.
func (r *Repository) HasPurchasedProduct(ctx context.Context, userID string, productID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1
            FROM orders o
            JOIN order_items oi ON oi.order_id = o.id
            WHERE o.user_id = $1 AND oi.product_id = $2 AND o.status IN ('paid', 'completed')
        )
    `
	return r.exists(ctx, query, userID, productID)
}

// HasPurchasedFromShop reports whether the user has a paid or completed order
// placed with the shop.
func (r *Repository) HasPurchasedFromShop(ctx context.Context, userID string, shopID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1
            FROM orders
            WHERE user_id = $1 AND shop_id = $2 AND status IN ('paid', 'completed')
        )
    `
	return r.exists(ctx, query, userID, shopID)
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*domain.Order, error) {
	var order domain.Order
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&order.ID, &order.UserID, &order.ShopID, &order.OrderNumber, &order.TotalAmount, &order.Status, &order.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

func (r *Repository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var ok bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&ok); err != nil {
		zap.L().Error("can't check purchase", zap.Error(err))
		return false, err
	}
	return ok, nil
}
