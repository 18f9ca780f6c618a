package loadq

import (
	"context"
	"strings"

	"github.com/unkn0wn-root/loadq/internal/keys"
	st "github.com/unkn0wn-root/loadq/store"
)

// CacheStatistics classifies the live key set by prefix. Derived on demand,
// never persisted. Classification is a naming convention, not an enforced
// namespace guarantee: unrelated keys sharing the store land in Other.
type CacheStatistics struct {
	Datasets  int // excel_data:* snapshots
	Processed int // processed:* derived results
	Other     int
	Total     int
}

// Stats scans every key in the store and tallies it by prefix class.
func Stats(ctx context.Context, s st.Store) (CacheStatistics, error) {
	ks, err := s.Keys(ctx, "*")
	if err != nil {
		return CacheStatistics{}, err
	}
	var out CacheStatistics
	for _, k := range ks {
		switch {
		// live snapshots sit under "data:"; pre-migration entries kept their
		// composed "excel_data:" keys
		case strings.HasPrefix(k, cacheKeyPrefix), strings.HasPrefix(k, keys.DatasetPrefix):
			out.Datasets++
		case strings.HasPrefix(k, keys.ProcessedPrefix):
			out.Processed++
		default:
			out.Other++
		}
	}
	out.Total = len(ks)
	return out, nil
}
