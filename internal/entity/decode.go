package entity

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
	"time"

	"github.com/GlebRadaev/marketplace/internal/domain"
)

// DecodeCreate validates a create payload against the schema and returns the
// record to insert, including server-filled columns.
func (s *Schema) DecodeCreate(raw map[string]json.RawMessage) (Record, error) {
	rec, err := s.decode(raw, true)
	if err != nil {
		return nil, err
	}
	for _, f := range s.Fields {
		if f.Required && f.Writable {
			if _, ok := rec[f.Name]; !ok {
				return nil, domain.Validationf("field %q is required", f.Name)
			}
		}
	}
	if s.OnCreate != nil {
		s.OnCreate(rec)
	}
	return rec, nil
}

// DecodeUpdate validates a partial update payload.
func (s *Schema) DecodeUpdate(raw map[string]json.RawMessage) (Record, error) {
	rec, err := s.decode(raw, false)
	if err != nil {
		return nil, err
	}
	if len(rec) == 0 {
		return nil, domain.Validationf("no fields to update")
	}
	return rec, nil
}

func (s *Schema) decode(raw map[string]json.RawMessage, creating bool) (Record, error) {
	rec := make(Record, len(raw))
	for name, value := range raw {
		f, ok := s.Field(name)
		if !ok {
			return nil, domain.Validationf("unknown field %q", name)
		}
		if !f.Writable || (f.Immutable && !creating) {
			return nil, domain.Validationf("field %q is read-only", name)
		}
		v, err := coerce(f, value)
		if err != nil {
			return nil, err
		}
		rec[name] = v
	}
	return rec, nil
}

func coerce(f Field, raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, domain.Validationf("field %q: malformed value", f.Name)
	}
	return coerceValue(f, v)
}

func coerceValue(f Field, v any) (any, error) {
	if v == nil {
		if f.Nullable {
			return nil, nil
		}
		return nil, domain.Validationf("field %q must not be null", f.Name)
	}

	mismatch := domain.Validationf("field %q must be of type %s", f.Name, f.Type)
	switch f.Type {
	case String:
		str, ok := v.(string)
		if !ok {
			return nil, mismatch
		}
		if len(f.Enum) > 0 && !slices.Contains(f.Enum, str) {
			return nil, domain.Validationf("field %q must be one of: %s", f.Name, strings.Join(f.Enum, ", "))
		}
		return str, nil
	case Int:
		n, ok := v.(json.Number)
		if !ok {
			return nil, mismatch
		}
		i, err := n.Int64()
		if err != nil {
			return nil, mismatch
		}
		return i, nil
	case Float:
		n, ok := v.(json.Number)
		if !ok {
			return nil, mismatch
		}
		fl, err := n.Float64()
		if err != nil {
			return nil, mismatch
		}
		return fl, nil
	case Bool:
		b, ok := v.(bool)
		if !ok {
			return nil, mismatch
		}
		return b, nil
	case Time:
		str, ok := v.(string)
		if !ok {
			return nil, mismatch
		}
		t, err := time.Parse(time.RFC3339, str)
		if err != nil {
			return nil, mismatch
		}
		return t, nil
	}
	return nil, mismatch
}
