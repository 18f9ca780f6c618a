package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestReadCSVTypesCells(t *testing.T) {
	p := writeFile(t, "payroll.csv",
		"ID,Name,Age,Salary,Start Date\n"+
			"1,John Doe,25,50000.5,2023-01-15\n"+
			"2,Jane Smith,30,55000,2022-03-20\n")

	s, err := ReadCSV(p)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if s.RowCount != 2 {
		t.Fatalf("RowCount = %d, want 2", s.RowCount)
	}
	if got := s.Columns; len(got) != 5 || got[4] != "Start Date" {
		t.Fatalf("columns = %v", got)
	}

	r := s.Rows[0]
	if r["ID"] != int64(1) {
		t.Fatalf("ID cell = %T %v, want int64", r["ID"], r["ID"])
	}
	if r["Salary"] != 50000.5 {
		t.Fatalf("Salary cell = %v", r["Salary"])
	}
	if r["Name"] != "John Doe" {
		t.Fatalf("Name cell = %v", r["Name"])
	}
	start, ok := r["Start Date"].(time.Time)
	if !ok || !start.Equal(time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("Start Date cell = %T %v, want date", r["Start Date"], r["Start Date"])
	}
	// whole-number salary in row 2 still types as int64 first
	if s.Rows[1]["Salary"] != int64(55000) {
		t.Fatalf("Salary cell = %T, want int64", s.Rows[1]["Salary"])
	}
}

func TestReadCSVMissingFile(t *testing.T) {
	if _, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("missing file must fail the load")
	}
}

func TestReadCSVEmptyBody(t *testing.T) {
	p := writeFile(t, "empty.csv", "ID,Name\n")
	s, err := ReadCSV(p)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if s.RowCount != 0 {
		t.Fatalf("RowCount = %d, want 0", s.RowCount)
	}
}

func TestReadCSVNoHeader(t *testing.T) {
	p := writeFile(t, "blank.csv", "")
	if _, err := ReadCSV(p); err == nil {
		t.Fatal("file without header record must fail")
	}
}
