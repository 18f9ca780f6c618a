// Package dataset models the immutable result of a tabular load-and-transform
// step: an ordered set of rows under a uniform column schema, plus the moment
// it was built. Snapshots are what loadq caches; the wire field names match
// previously cached data, so entries written by older tooling round-trip.
package dataset

import (
	"fmt"
	"time"
)

// TimeLayout is the canonical string form for time-valued cells. Every
// time.Time cell is rewritten to this layout before serialization so a
// decode produces equivalent data regardless of codec.
const TimeLayout = "2006-01-02 15:04:05"

// Row maps column name to a typed scalar cell.
type Row map[string]any

// Snapshot is a derived, immutable view of one data source. Rebuilt wholesale
// on every cache miss; never mutated in place.
type Snapshot struct {
	Rows     []Row     `json:"data" msgpack:"data" cbor:"data"`
	Columns  []string  `json:"columns" msgpack:"columns" cbor:"columns"`
	CachedAt time.Time `json:"cached_at" msgpack:"cached_at" cbor:"cached_at"`
	RowCount int       `json:"row_count" msgpack:"row_count" cbor:"row_count"`
}

// New builds a validated snapshot. Every row must carry exactly the declared
// columns. An empty rows slice is a normal, cacheable result.
func New(columns []string, rows []Row) (*Snapshot, error) {
	s := &Snapshot{
		Rows:     rows,
		Columns:  columns,
		CachedAt: time.Now().UTC(),
		RowCount: len(rows),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the uniform-schema invariants: RowCount == len(Rows) and
// each row's key set equals Columns.
func (s *Snapshot) Validate() error {
	if s.RowCount != len(s.Rows) {
		return fmt.Errorf("dataset: row_count %d != %d rows", s.RowCount, len(s.Rows))
	}
	for i, r := range s.Rows {
		if len(r) != len(s.Columns) {
			return fmt.Errorf("dataset: row %d has %d cells, want %d", i, len(r), len(s.Columns))
		}
		for _, col := range s.Columns {
			if _, ok := r[col]; !ok {
				return fmt.Errorf("dataset: row %d missing column %q", i, col)
			}
		}
	}
	return nil
}

// Normalized returns a copy with every time.Time cell rewritten to
// TimeLayout. Called before serialization; cells of other types pass through
// untouched.
func (s *Snapshot) Normalized() *Snapshot {
	out := &Snapshot{
		Rows:     make([]Row, len(s.Rows)),
		Columns:  append([]string(nil), s.Columns...),
		CachedAt: s.CachedAt,
		RowCount: s.RowCount,
	}
	for i, r := range s.Rows {
		nr := make(Row, len(r))
		for k, v := range r {
			if t, ok := v.(time.Time); ok {
				nr[k] = t.Format(TimeLayout)
			} else {
				nr[k] = v
			}
		}
		out.Rows[i] = nr
	}
	return out
}

// Equal reports whether two snapshots carry the same columns and
// cell-for-cell equivalent rows. Numeric cells compare by value across int
// and float representations, and time cells compare against their canonical
// string form, so a snapshot equals its own decode regardless of codec.
func (s *Snapshot) Equal(o *Snapshot) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.RowCount != o.RowCount || len(s.Rows) != len(o.Rows) || len(s.Columns) != len(o.Columns) {
		return false
	}
	for i, c := range s.Columns {
		if o.Columns[i] != c {
			return false
		}
	}
	for i, r := range s.Rows {
		for _, c := range s.Columns {
			if !equalCell(r[c], o.Rows[i][c]) {
				return false
			}
		}
	}
	return true
}

func equalCell(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	if af, aok := asFloat(a); aok {
		bf, bok := asFloat(b)
		return bok && af == bf
	}
	return canonCell(a) == canonCell(b)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func canonCell(v any) string {
	if t, ok := v.(time.Time); ok {
		return t.Format(TimeLayout)
	}
	return fmt.Sprint(v)
}
