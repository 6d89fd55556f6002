package entityrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/entity"
	"github.com/GlebRadaev/marketplace/internal/pg"
)

// Repository runs CRUD statements for any registered schema. Identifiers
// come from the schema allow-list only; values are always bound parameters.
type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) List(ctx context.Context, s *entity.Schema, q entity.Query) ([]entity.Record, int, error) {
	var w where
	w.scope(q.Scope)
	for _, k := range q.Filter.SortedKeys() {
		w.eq(k, q.Filter[k])
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s%s`, s.Table, w.sql())
	var total int
	if err := r.db.QueryRow(ctx, countQuery, w.args...).Scan(&total); err != nil {
		zap.L().Error("failed to count entities", zap.String("table", s.Table), zap.Error(err))
		return nil, 0, err
	}

	dir := "ASC"
	if q.Desc {
		dir = "DESC"
	}
	order := q.SortField + " " + dir
	if q.SortField != "id" {
		order += ", id " + dir
	}
	args := append(w.args, q.Skip, q.Limit)
	query := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY %s OFFSET $%d LIMIT $%d`,
		strings.Join(s.Columns(), ", "), s.Table, w.sql(), order, len(args)-1, len(args))

	items, err := r.queryRecords(ctx, s, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Get returns nil when the row does not exist or lies outside scope.
func (r *Repository) Get(ctx context.Context, s *entity.Schema, id int64, scope entity.Scope) (entity.Record, error) {
	var w where
	w.eq("id", id)
	w.scope(scope)
	query := fmt.Sprintf(`SELECT %s FROM %s%s`, strings.Join(s.Columns(), ", "), s.Table, w.sql())
	return r.queryOne(ctx, s, query, w.args...)
}

func (r *Repository) Create(ctx context.Context, s *entity.Schema, rec entity.Record) (entity.Record, error) {
	keys := rec.SortedKeys()
	placeholders := make([]string, len(keys))
	args := make([]any, len(keys))
	for i, k := range keys {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = rec[k]
	}
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
		s.Table, strings.Join(keys, ", "), strings.Join(placeholders, ", "), strings.Join(s.Columns(), ", "))

	created, err := r.queryOne(ctx, s, query, args...)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *Repository) CreateBatch(ctx context.Context, s *entity.Schema, recs []entity.Record) ([]entity.Record, error) {
	created := make([]entity.Record, 0, len(recs))
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, rec := range recs {
			c, err := r.Create(ctx, s, rec)
			if err != nil {
				return err
			}
			created = append(created, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update returns nil when the row does not exist or lies outside scope.
func (r *Repository) Update(ctx context.Context, s *entity.Schema, id int64, scope entity.Scope, rec entity.Record) (entity.Record, error) {
	keys := rec.SortedKeys()
	sets := make([]string, len(keys))
	var w where
	for i, k := range keys {
		w.args = append(w.args, rec[k])
		sets[i] = fmt.Sprintf("%s = $%d", k, len(w.args))
	}
	w.eq("id", id)
	w.scope(scope)
	query := fmt.Sprintf(`UPDATE %s SET %s%s RETURNING %s`,
		s.Table, strings.Join(sets, ", "), w.sql(), strings.Join(s.Columns(), ", "))
	return r.queryOne(ctx, s, query, w.args...)
}

// UpdateBatch applies all updates in one transaction and skips rows that do
// not exist or lie outside scope.
func (r *Repository) UpdateBatch(ctx context.Context, s *entity.Schema, updates []entity.Patch, scope entity.Scope) ([]entity.Record, error) {
	updated := make([]entity.Record, 0, len(updates))
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, u := range updates {
			rec, err := r.Update(ctx, s, u.ID, scope, u.Record)
			if err != nil {
				return err
			}
			if rec != nil {
				updated = append(updated, rec)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, s *entity.Schema, id int64, scope entity.Scope) (bool, error) {
	var w where
	w.eq("id", id)
	w.scope(scope)
	query := fmt.Sprintf(`DELETE FROM %s%s`, s.Table, w.sql())

	tag, err := r.db.Exec(ctx, query, w.args...)
	if err != nil {
		zap.L().Error("failed to delete entity", zap.String("table", s.Table), zap.Error(err))
		return false, constraintError(err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) DeleteBatch(ctx context.Context, s *entity.Schema, ids []int64, scope entity.Scope) (int64, error) {
	var w where
	w.args = append(w.args, ids)
	w.conds = append(w.conds, "id = ANY($1)")
	w.scope(scope)
	query := fmt.Sprintf(`DELETE FROM %s%s`, s.Table, w.sql())

	var deleted int64
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, w.args...)
		if err != nil {
			zap.L().Error("failed to delete entities", zap.String("table", s.Table), zap.Error(err))
			return constraintError(err)
		}
		deleted = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func (r *Repository) queryOne(ctx context.Context, s *entity.Schema, query string, args ...any) (entity.Record, error) {
	recs, err := r.queryRecords(ctx, s, query, args...)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return recs[0], nil
}

func (r *Repository) queryRecords(ctx context.Context, s *entity.Schema, query string, args ...any) ([]entity.Record, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to query entities", zap.String("table", s.Table), zap.Error(err))
		return nil, constraintError(err)
	}
	defer rows.Close()

	cols := s.Columns()
	recs := make([]entity.Record, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			zap.L().Error("failed to read entity row", zap.String("table", s.Table), zap.Error(err))
			return nil, err
		}
		recs = append(recs, toRecord(cols, values))
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate entities", zap.String("table", s.Table), zap.Error(err))
		return nil, constraintError(err)
	}
	return recs, nil
}

// constraintError turns integrity violations caused by client data into
// domain errors. Anything else is returned unchanged.
func constraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case "23505":
		return domain.NewError(domain.ErrConflict, "a row with the same unique value already exists")
	case "23503":
		if strings.HasPrefix(pgErr.Message, "update or delete") {
			return domain.NewError(domain.ErrConflict, "row is still referenced by other rows")
		}
		return domain.Validationf("referenced row does not exist: %s", pgErr.ConstraintName)
	case "23502", "23514", "22001", "22003":
		return domain.Validationf("value rejected by the database: %s", pgErr.Message)
	}
	return err
}

func toRecord(cols []string, values []any) entity.Record {
	rec := make(entity.Record, len(cols))
	for i, col := range cols {
		if i < len(values) {
			rec[col] = values[i]
		}
	}
	return rec
}

type where struct {
	conds []string
	args  []any
}

func (w *where) eq(column string, value any) {
	w.args = append(w.args, value)
	w.conds = append(w.conds, fmt.Sprintf("%s = $%d", column, len(w.args)))
}

func (w *where) scope(s entity.Scope) {
	if !s.Unscoped() {
		w.eq(s.Column, s.OwnerID)
	}
}

func (w *where) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}
