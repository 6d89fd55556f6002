// Package entityservice applies access rules around the generic CRUD store.
package entityservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/entity"
)

var (
	ErrEntityNotFound = domain.NewError(domain.ErrNotFound, "entity not found")
	ErrEmptyBatch     = domain.NewError(domain.ErrValidation, "batch must not be empty")
	ErrBatchTooLarge  = domain.NewError(domain.ErrValidation, fmt.Sprintf("batch must not exceed %d items", entity.MaxLimit))
	ErrInspectorOnly  = domain.NewError(domain.ErrPermissionDenied, "only inspectors can modify this entity")
)

type Repo interface {
	List(ctx context.Context, s *entity.Schema, q entity.Query) ([]entity.Record, int, error)
	Get(ctx context.Context, s *entity.Schema, id int64, scope entity.Scope) (entity.Record, error)
	Create(ctx context.Context, s *entity.Schema, rec entity.Record) (entity.Record, error)
	CreateBatch(ctx context.Context, s *entity.Schema, recs []entity.Record) ([]entity.Record, error)
	Update(ctx context.Context, s *entity.Schema, id int64, scope entity.Scope, rec entity.Record) (entity.Record, error)
	UpdateBatch(ctx context.Context, s *entity.Schema, updates []entity.Patch, scope entity.Scope) ([]entity.Record, error)
	Delete(ctx context.Context, s *entity.Schema, id int64, scope entity.Scope) (bool, error)
	DeleteBatch(ctx context.Context, s *entity.Schema, ids []int64, scope entity.Scope) (int64, error)
}

type InspectorRepo interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Inspector, error)
}

// Patch is a raw batch update item as received from the client.
type Patch struct {
	ID      int64
	Updates map[string]json.RawMessage
}

type Service struct {
	repo       Repo
	inspectors InspectorRepo
	now        func() time.Time
}

func New(repo Repo, inspectors InspectorRepo) *Service {
	return &Service{
		repo:       repo,
		inspectors: inspectors,
		now:        time.Now,
	}
}

// List returns a page of the caller's rows. With all set the owner scope is
// dropped and every row of the table is visible.
func (s *Service) List(ctx context.Context, userID, name string, req entity.ListRequest, all bool) (*entity.Page, error) {
	schema, err := lookup(name)
	if err != nil {
		return nil, err
	}
	q, err := schema.ParseQuery(req)
	if err != nil {
		return nil, err
	}
	if !all {
		q.Scope = readScope(schema, userID)
	}
	items, total, err := s.repo.List(ctx, schema, q)
	if err != nil {
		return nil, err
	}
	return &entity.Page{Items: items, Total: total, Skip: q.Skip, Limit: q.Limit}, nil
}

func (s *Service) Get(ctx context.Context, userID, name string, id int64) (entity.Record, error) {
	schema, err := lookup(name)
	if err != nil {
		return nil, err
	}
	rec, err := s.repo.Get(ctx, schema, id, readScope(schema, userID))
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, notFound(schema, id)
	}
	return rec, nil
}

func (s *Service) Create(ctx context.Context, userID, name string, raw map[string]json.RawMessage) (entity.Record, error) {
	schema, err := s.writable(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	rec, err := s.decodeCreate(schema, userID, raw)
	if err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, schema, rec)
	if err != nil {
		return nil, err
	}
	zap.L().Info("entity created", zap.String("entity", name), zap.Any("id", created["id"]), zap.String("user_id", userID))
	return created, nil
}

// CreateBatch validates every item before inserting any of them.
func (s *Service) CreateBatch(ctx context.Context, userID, name string, raws []map[string]json.RawMessage) ([]entity.Record, error) {
	if err := checkBatch(len(raws)); err != nil {
		return nil, err
	}
	schema, err := s.writable(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	recs := make([]entity.Record, 0, len(raws))
	for i, raw := range raws {
		rec, err := s.decodeCreate(schema, userID, raw)
		if err != nil {
			return nil, itemError(i, err)
		}
		recs = append(recs, rec)
	}
	created, err := s.repo.CreateBatch(ctx, schema, recs)
	if err != nil {
		return nil, err
	}
	zap.L().Info("entities created", zap.String("entity", name), zap.Int("count", len(created)), zap.String("user_id", userID))
	return created, nil
}

func (s *Service) Update(ctx context.Context, userID, name string, id int64, raw map[string]json.RawMessage) (entity.Record, error) {
	schema, err := s.writable(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	rec, err := schema.DecodeUpdate(raw)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, schema, id, writeScope(schema, userID), rec)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, notFound(schema, id)
	}
	return updated, nil
}

// UpdateBatch skips rows that do not exist or belong to someone else.
func (s *Service) UpdateBatch(ctx context.Context, userID, name string, patches []Patch) ([]entity.Record, error) {
	if err := checkBatch(len(patches)); err != nil {
		return nil, err
	}
	schema, err := s.writable(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	updates := make([]entity.Patch, 0, len(patches))
	for i, p := range patches {
		rec, err := schema.DecodeUpdate(p.Updates)
		if err != nil {
			return nil, itemError(i, err)
		}
		updates = append(updates, entity.Patch{ID: p.ID, Record: rec})
	}
	return s.repo.UpdateBatch(ctx, schema, updates, writeScope(schema, userID))
}

func (s *Service) Delete(ctx context.Context, userID, name string, id int64) error {
	schema, err := s.writable(ctx, userID, name)
	if err != nil {
		return err
	}
	ok, err := s.repo.Delete(ctx, schema, id, writeScope(schema, userID))
	if err != nil {
		return err
	}
	if !ok {
		return notFound(schema, id)
	}
	zap.L().Info("entity deleted", zap.String("entity", name), zap.Int64("id", id), zap.String("user_id", userID))
	return nil
}

func (s *Service) DeleteBatch(ctx context.Context, userID, name string, ids []int64) (int64, error) {
	if err := checkBatch(len(ids)); err != nil {
		return 0, err
	}
	schema, err := s.writable(ctx, userID, name)
	if err != nil {
		return 0, err
	}
	return s.repo.DeleteBatch(ctx, schema, ids, writeScope(schema, userID))
}

// writable resolves the schema and checks the caller may mutate it.
func (s *Service) writable(ctx context.Context, userID, name string) (*entity.Schema, error) {
	schema, err := lookup(name)
	if err != nil {
		return nil, err
	}
	switch schema.Access {
	case entity.AccessReadOnly:
		return nil, domain.NewError(domain.ErrPermissionDenied, fmt.Sprintf("%s are read-only", name))
	case entity.AccessModerator:
		inspector, err := s.inspectors.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if inspector == nil {
			return nil, ErrInspectorOnly
		}
	}
	return schema, nil
}

func (s *Service) decodeCreate(schema *entity.Schema, userID string, raw map[string]json.RawMessage) (entity.Record, error) {
	rec, err := schema.DecodeCreate(raw)
	if err != nil {
		return nil, err
	}
	if schema.OwnerColumn != "" {
		rec[schema.OwnerColumn] = userID
	}
	if schema.HasField("created_at") {
		rec["created_at"] = s.now()
	}
	return rec, nil
}

func lookup(name string) (*entity.Schema, error) {
	schema, ok := entity.Lookup(name)
	if !ok {
		return nil, domain.NewError(domain.ErrNotFound, fmt.Sprintf("unknown entity %q", name))
	}
	return schema, nil
}

func readScope(schema *entity.Schema, userID string) entity.Scope {
	if schema.Access == entity.AccessModerator {
		return entity.Scope{}
	}
	return schema.OwnerScope(userID)
}

func writeScope(schema *entity.Schema, userID string) entity.Scope {
	if schema.Access == entity.AccessOwner {
		return schema.OwnerScope(userID)
	}
	return entity.Scope{}
}

func notFound(schema *entity.Schema, id int64) error {
	return domain.NewError(domain.ErrNotFound, fmt.Sprintf("%s %d not found", schema.Name, id))
}

func checkBatch(n int) error {
	if n == 0 {
		return ErrEmptyBatch
	}
	if n > entity.MaxLimit {
		return ErrBatchTooLarge
	}
	return nil
}

// itemError prefixes a validation message with the position of the item.
func itemError(i int, err error) error {
	var derr *domain.Error
	if errors.As(err, &derr) {
		return domain.NewError(derr.Kind, fmt.Sprintf("item %d: %s", i, derr.Msg))
	}
	return err
}
