package entity

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/GlebRadaev/marketplace/internal/domain"
)

const (
	DefaultLimit = 20
	MaxLimit     = 2000
)

// ListRequest holds the raw list parameters as they arrive in the URL.
type ListRequest struct {
	Skip  string
	Limit string
	Sort  string
	Query string
}

type Query struct {
	Filter    Record
	SortField string
	Desc      bool
	Skip      int
	Limit     int
	Scope     Scope
}

type Page struct {
	Items []Record `json:"items"`
	Total int      `json:"total"`
	Skip  int      `json:"skip"`
	Limit int      `json:"limit"`
}

// ParseQuery validates the list parameters against the schema.
func (s *Schema) ParseQuery(req ListRequest) (Query, error) {
	q := Query{Skip: 0, Limit: DefaultLimit, SortField: "id", Desc: true}

	if req.Skip != "" {
		skip, err := strconv.Atoi(req.Skip)
		if err != nil || skip < 0 {
			return Query{}, domain.Validationf("skip must be a non-negative integer")
		}
		q.Skip = skip
	}
	if req.Limit != "" {
		limit, err := strconv.Atoi(req.Limit)
		if err != nil || limit < 1 || limit > MaxLimit {
			return Query{}, domain.Validationf("limit must be between 1 and %d", MaxLimit)
		}
		q.Limit = limit
	}
	if req.Sort != "" {
		field := strings.TrimPrefix(req.Sort, "-")
		if !s.HasField(field) {
			return Query{}, domain.Validationf("cannot sort by unknown field %q", field)
		}
		q.SortField = field
		q.Desc = strings.HasPrefix(req.Sort, "-")
	}
	if req.Query != "" {
		filter, err := s.parseFilter(req.Query)
		if err != nil {
			return Query{}, err
		}
		q.Filter = filter
	}
	return q, nil
}

func (s *Schema) parseFilter(raw string) (Record, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, domain.Validationf("query must be a JSON object")
	}
	filter := make(Record, len(obj))
	for name, value := range obj {
		f, ok := s.Field(name)
		if !ok {
			return nil, domain.Validationf("cannot filter by unknown field %q", name)
		}
		// unknown enum values are allowed here and match nothing
		f.Enum = nil
		f.Nullable = false
		v, err := coerce(f, value)
		if err != nil {
			return nil, err
		}
		filter[name] = v
	}
	return filter, nil
}
