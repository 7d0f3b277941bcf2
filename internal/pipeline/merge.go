package pipeline

import "github.com/jonesrussell/creative-radar/internal/domain"

// dedupe removes records sharing a stable identifier, keeping the first
// occurrence. The key is source-agnostic so the same record collected by
// two sources collapses to one. Input order is preserved so repeated
// runs over the same sources produce the same merged collection.
func dedupe(items []domain.ContentItem) []domain.ContentItem {
	seen := make(map[string]bool, len(items))
	merged := make([]domain.ContentItem, 0, len(items))
	for _, item := range items {
		key := item.DedupeKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, item)
	}
	return merged
}
