package dataset

import (
	"encoding/json"
	"testing"
	"time"
)

func mixedSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	hired := time.Date(2023, 1, 15, 9, 30, 0, 0, time.UTC)
	s, err := New(
		[]string{"ID", "Name", "Salary", "Hired"},
		[]Row{
			{"ID": int64(1), "Name": "John Doe", "Salary": 50000.5, "Hired": hired},
			{"ID": int64(2), "Name": "Jane Smith", "Salary": 55000.0, "Hired": hired.AddDate(1, 0, 0)},
		},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

// ==============================
// Invariants
// ==============================

func TestNewRejectsRaggedRows(t *testing.T) {
	_, err := New([]string{"A", "B"}, []Row{{"A": 1}})
	if err == nil {
		t.Fatal("row with missing column must be rejected")
	}
	_, err = New([]string{"A"}, []Row{{"A": 1, "B": 2}})
	if err == nil {
		t.Fatal("row with extra column must be rejected")
	}
}

func TestValidateRowCountMismatch(t *testing.T) {
	s := &Snapshot{Rows: []Row{{"A": 1}}, Columns: []string{"A"}, RowCount: 2}
	if err := s.Validate(); err == nil {
		t.Fatal("row_count mismatch must be rejected")
	}
}

func TestNewAllowsEmpty(t *testing.T) {
	s, err := New([]string{"A", "B"}, nil)
	if err != nil {
		t.Fatalf("empty snapshot must be valid: %v", err)
	}
	if s.RowCount != 0 {
		t.Fatalf("RowCount = %d, want 0", s.RowCount)
	}
}

// ==============================
// Normalization and round-trips
// ==============================

func TestNormalizedRewritesTimes(t *testing.T) {
	s := mixedSnapshot(t)
	n := s.Normalized()

	if got := n.Rows[0]["Hired"]; got != "2023-01-15 09:30:00" {
		t.Fatalf("Hired = %v, want canonical string", got)
	}
	// originals untouched
	if _, ok := s.Rows[0]["Hired"].(time.Time); !ok {
		t.Fatalf("Normalized must copy, not mutate")
	}
	// non-time cells pass through
	if n.Rows[0]["Name"] != "John Doe" || n.Rows[0]["ID"] != int64(1) {
		t.Fatalf("scalar cells must pass through unchanged: %+v", n.Rows[0])
	}
}

// TestJSONRoundTrip: serialize then deserialize yields row-for-row,
// column-for-column equal data with times in canonical form.
func TestJSONRoundTrip(t *testing.T) {
	s := mixedSnapshot(t).Normalized()

	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Snapshot
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := back.Validate(); err != nil {
		t.Fatalf("round-tripped snapshot invalid: %v", err)
	}
	if !s.Equal(&back) {
		t.Fatalf("round-trip not equal:\nin= %+v\nout=%+v", s, &back)
	}
}

// TestJSONWireFields pins the wire field names to the form of previously
// cached data.
func TestJSONWireFields(t *testing.T) {
	b, err := json.Marshal(mixedSnapshot(t).Normalized())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, field := range []string{"data", "columns", "cached_at", "row_count"} {
		if _, ok := m[field]; !ok {
			t.Fatalf("wire field %q missing in %s", field, b)
		}
	}
}

// ==============================
// Equality
// ==============================

func TestEqualCrossRepresentation(t *testing.T) {
	hired := time.Date(2023, 1, 15, 9, 30, 0, 0, time.UTC)
	a, _ := New([]string{"ID", "Hired"}, []Row{{"ID": int64(3), "Hired": hired}})
	b, _ := New([]string{"ID", "Hired"}, []Row{{"ID": float64(3), "Hired": "2023-01-15 09:30:00"}})
	if !a.Equal(b) {
		t.Fatal("int/float and time/canonical-string cells must compare equal")
	}

	c, _ := New([]string{"ID", "Hired"}, []Row{{"ID": int64(4), "Hired": hired}})
	if a.Equal(c) {
		t.Fatal("different cell values must not compare equal")
	}
}

func TestEqualColumnOrderMatters(t *testing.T) {
	a, _ := New([]string{"A", "B"}, []Row{{"A": 1, "B": 2}})
	b, _ := New([]string{"B", "A"}, []Row{{"A": 1, "B": 2}})
	if a.Equal(b) {
		t.Fatal("column order is part of the schema")
	}
}
