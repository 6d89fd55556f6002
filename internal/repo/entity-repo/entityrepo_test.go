package entityrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/entity"
	"github.com/GlebRadaev/marketplace/internal/pg"
)

var cartColumns = []string{"id", "user_id", "product_id", "quantity", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, mockTxManager), mockDB, mockTxManager
}

func cartSchema(t *testing.T) *entity.Schema {
	s, ok := entity.Lookup("cart_items")
	require.True(t, ok)
	return s
}

func TestRepository_List(t *testing.T) {
	repo, mock, _ := NewMock(t)
	s := cartSchema(t)
	now := time.Now()

	tests := []struct {
		name      string
		query     entity.Query
		mockSetup func()
		expectErr bool
		total     int
		items     int
	}{
		{
			name:  "Scoped with filter and sort",
			query: entity.Query{Filter: entity.Record{"product_id": int64(4)}, SortField: "quantity", Desc: false, Skip: 0, Limit: 20, Scope: s.OwnerScope("u1")},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM cart_items WHERE user_id = $1 AND product_id = $2`)).
					WithArgs("u1", int64(4)).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, product_id, quantity, created_at FROM cart_items WHERE user_id = $1 AND product_id = $2 ORDER BY quantity ASC, id ASC OFFSET $3 LIMIT $4`)).
					WithArgs("u1", int64(4), 0, 20).
					WillReturnRows(pgxmock.NewRows(cartColumns).AddRow(int32(9), "u1", int32(4), int32(2), now))
			},
			total: 1,
			items: 1,
		},
		{
			name:  "Unscoped default order",
			query: entity.Query{SortField: "id", Desc: true, Skip: 20, Limit: 20},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM cart_items`)).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(21))
				mock.ExpectQuery(regexp.QuoteMeta(`FROM cart_items ORDER BY id DESC OFFSET $1 LIMIT $2`)).
					WithArgs(20, 20).
					WillReturnRows(pgxmock.NewRows(cartColumns).AddRow(int32(1), "u2", int32(4), int32(1), now))
			},
			total: 21,
			items: 1,
		},
		{
			name:  "Count fails",
			query: entity.Query{SortField: "id", Desc: true, Limit: 20},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM cart_items`)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			items, total, err := repo.List(context.Background(), s, tt.query)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.total, total)
			assert.Len(t, items, tt.items)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Get(t *testing.T) {
	repo, mock, _ := NewMock(t)
	s := cartSchema(t)
	now := time.Now()
	query := regexp.QuoteMeta(`SELECT id, user_id, product_id, quantity, created_at FROM cart_items WHERE id = $1 AND user_id = $2`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    entity.Record
	}{
		{
			name: "Owned row",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(9), "u1").
					WillReturnRows(pgxmock.NewRows(cartColumns).AddRow(int32(9), "u1", int32(4), int32(2), now))
			},
			result: entity.Record{"id": int32(9), "user_id": "u1", "product_id": int32(4), "quantity": int32(2), "created_at": now},
		},
		{
			name: "Foreign or missing row",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(9), "u1").WillReturnRows(pgxmock.NewRows(cartColumns))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(9), "u1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			rec, err := repo.Get(context.Background(), s, 9, s.OwnerScope("u1"))
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, rec)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := NewMock(t)
	s := cartSchema(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO cart_items (created_at, product_id, quantity, user_id) VALUES ($1, $2, $3, $4) RETURNING id, user_id, product_id, quantity, created_at`)).
		WithArgs(now, int64(4), int64(2), "u1").
		WillReturnRows(pgxmock.NewRows(cartColumns).AddRow(int32(10), "u1", int32(4), int32(2), now))

	rec, err := repo.Create(context.Background(), s, entity.Record{"user_id": "u1", "product_id": int64(4), "quantity": int64(2), "created_at": now})
	require.NoError(t, err)
	assert.Equal(t, int32(10), rec["id"])
}

func TestRepository_CreateBatch(t *testing.T) {
	repo, mock, tx := NewMock(t)
	s := cartSchema(t)
	now := time.Now()
	insert := regexp.QuoteMeta(`INSERT INTO cart_items (product_id, user_id) VALUES ($1, $2)`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "All rows inserted in one transaction",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(insert).WithArgs(int64(1), "u1").
						WillReturnRows(pgxmock.NewRows(cartColumns).AddRow(int32(1), "u1", int32(1), int32(1), now))
					mock.ExpectQuery(insert).WithArgs(int64(2), "u1").
						WillReturnRows(pgxmock.NewRows(cartColumns).AddRow(int32(2), "u1", int32(2), int32(1), now))
					return fn(ctx)
				})
			},
		},
		{
			name: "Second insert fails",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(insert).WithArgs(int64(1), "u1").
						WillReturnRows(pgxmock.NewRows(cartColumns).AddRow(int32(1), "u1", int32(1), int32(1), now))
					mock.ExpectQuery(insert).WithArgs(int64(2), "u1").
						WillReturnError(errors.New("foreign key violation"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			recs, err := repo.CreateBatch(context.Background(), s, []entity.Record{
				{"user_id": "u1", "product_id": int64(1)},
				{"user_id": "u1", "product_id": int64(2)},
			})
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, recs)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, recs, 2)
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock, _ := NewMock(t)
	s := cartSchema(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE cart_items SET quantity = $1 WHERE id = $2 AND user_id = $3 RETURNING id, user_id, product_id, quantity, created_at`)).
		WithArgs(int64(5), int64(9), "u1").
		WillReturnRows(pgxmock.NewRows(cartColumns).AddRow(int32(9), "u1", int32(4), int32(5), now))

	rec, err := repo.Update(context.Background(), s, 9, s.OwnerScope("u1"), entity.Record{"quantity": int64(5)})
	require.NoError(t, err)
	assert.Equal(t, int32(5), rec["quantity"])
}

func TestRepository_UpdateBatch(t *testing.T) {
	repo, mock, tx := NewMock(t)
	s := cartSchema(t)
	now := time.Now()
	update := regexp.QuoteMeta(`UPDATE cart_items SET quantity = $1 WHERE id = $2 AND user_id = $3`)

	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		mock.ExpectQuery(update).WithArgs(int64(3), int64(1), "u1").
			WillReturnRows(pgxmock.NewRows(cartColumns).AddRow(int32(1), "u1", int32(4), int32(3), now))
		mock.ExpectQuery(update).WithArgs(int64(3), int64(2), "u1").
			WillReturnRows(pgxmock.NewRows(cartColumns))
		return fn(ctx)
	})

	recs, err := repo.UpdateBatch(context.Background(), s, []entity.Patch{
		{ID: 1, Record: entity.Record{"quantity": int64(3)}},
		{ID: 2, Record: entity.Record{"quantity": int64(3)}},
	}, s.OwnerScope("u1"))
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, _ := NewMock(t)
	s := cartSchema(t)
	query := regexp.QuoteMeta(`DELETE FROM cart_items WHERE id = $1 AND user_id = $2`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		deleted   bool
	}{
		{
			name: "Deleted",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(int64(9), "u1").WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			deleted: true,
		},
		{
			name: "Nothing matched",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(int64(9), "u1").WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(int64(9), "u1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			deleted, err := repo.Delete(context.Background(), s, 9, s.OwnerScope("u1"))
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.deleted, deleted)
		})
	}
}

func TestRepository_DeleteBatch(t *testing.T) {
	repo, mock, tx := NewMock(t)
	s := cartSchema(t)

	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM cart_items WHERE id = ANY($1) AND user_id = $2`)).
			WithArgs([]int64{1, 2, 3}, "u1").
			WillReturnResult(pgxmock.NewResult("DELETE", 2))
		return fn(ctx)
	})

	deleted, err := repo.DeleteBatch(context.Background(), s, []int64{1, 2, 3}, s.OwnerScope("u1"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}

func TestConstraintError(t *testing.T) {
	dbErr := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		kind error
	}{
		{
			name: "Unique violation",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "orders_order_number_key"},
			kind: domain.ErrConflict,
		},
		{
			name: "Missing referenced row",
			err:  &pgconn.PgError{Code: "23503", Message: `insert or update on table "cart_items" violates foreign key constraint`},
			kind: domain.ErrValidation,
		},
		{
			name: "Row still referenced",
			err:  &pgconn.PgError{Code: "23503", Message: `update or delete on table "shops" violates foreign key constraint`},
			kind: domain.ErrConflict,
		},
		{
			name: "Check violation",
			err:  &pgconn.PgError{Code: "23514", Message: "new row violates check constraint"},
			kind: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, constraintError(tt.err), tt.kind)
		})
	}

	assert.Equal(t, dbErr, constraintError(dbErr))
}
