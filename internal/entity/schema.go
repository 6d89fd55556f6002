// Package entity describes the tables exposed through the generic CRUD
// routes. Each schema is an explicit allow-list: a client can only read the
// columns listed here and can only write the ones marked Writable.
package entity

import (
	"sort"
)

type FieldType int

const (
	String FieldType = iota
	Int
	Float
	Bool
	Time
)

func (t FieldType) String() string {
	switch t {
	case Int:
		return "integer"
	case Float:
		return "number"
	case Bool:
		return "boolean"
	case Time:
		return "RFC 3339 timestamp"
	default:
		return "string"
	}
}

type Field struct {
	Name string
	Type FieldType
	// Writable fields may be set by the client on create and update.
	Writable bool
	// Immutable fields are writable on create only.
	Immutable bool
	Required  bool
	Nullable  bool
	Enum      []string
}

type Access int

const (
	// AccessOwner rows belong to the caller: writes stamp the owner column
	// and every single-row operation is scoped to it.
	AccessOwner Access = iota
	// AccessModerator rows are shared; only inspectors may change them.
	AccessModerator
	// AccessReadOnly rows are written by dedicated flows only.
	AccessReadOnly
)

type Record map[string]any

// Patch is one row of a batch update.
type Patch struct {
	ID     int64
	Record Record
}

type Schema struct {
	Name        string
	Table       string
	OwnerColumn string
	Access      Access
	Fields      []Field
	// OnCreate fills server-controlled columns of a decoded record.
	OnCreate func(rec Record)

	byName map[string]Field
}

func (s *Schema) init() {
	s.byName = make(map[string]Field, len(s.Fields)+1)
	s.byName["id"] = Field{Name: "id", Type: Int}
	for _, f := range s.Fields {
		s.byName[f.Name] = f
	}
}

func (s *Schema) Field(name string) (Field, bool) {
	f, ok := s.byName[name]
	return f, ok
}

// Columns returns the selectable columns, id first.
func (s *Schema) Columns() []string {
	cols := make([]string, 0, len(s.Fields)+1)
	cols = append(cols, "id")
	for _, f := range s.Fields {
		cols = append(cols, f.Name)
	}
	return cols
}

func (s *Schema) HasField(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Scope restricts queries to rows whose owner column equals OwnerID.
// The zero value is unscoped.
type Scope struct {
	Column  string
	OwnerID string
}

func (s Scope) Unscoped() bool {
	return s.Column == ""
}

// OwnerScope is the scope of userID for the schema, or the zero scope when
// the schema has no owner column.
func (s *Schema) OwnerScope(userID string) Scope {
	if s.OwnerColumn == "" {
		return Scope{}
	}
	return Scope{Column: s.OwnerColumn, OwnerID: userID}
}

// SortedKeys returns the record keys in a stable order.
func (r Record) SortedKeys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
