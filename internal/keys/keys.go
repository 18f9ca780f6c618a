// Package keys builds the store key names loadq owns. The composed forms are
// bit-exact with previously cached data, so migrating deployments keep their
// warm entries.
package keys

import (
	"path/filepath"
	"time"
)

const (
	// DatasetPrefix classifies cached source snapshots.
	DatasetPrefix = "excel_data:"
	// ProcessedPrefix classifies cached derived results.
	ProcessedPrefix = "processed:"
)

const dayLayout = "20060102"

// Dataset composes the snapshot key for one source and sub-selector
// (sheet/partition name): "excel_data:" + basename(source) + ":" + selector.
func Dataset(source, selector string) string {
	return DatasetPrefix + filepath.Base(source) + ":" + selector
}

// Processed composes the derived-result key for an operation on a given day:
// "processed:" + operation + ":" + YYYYMMDD.
func Processed(operation string, t time.Time) string {
	return ProcessedPrefix + operation + ":" + t.Format(dayLayout)
}
