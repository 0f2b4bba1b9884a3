package cli

import (
	"fmt"
	"sort"
	"strings"
)

// Sort orders of the browse command.
const (
	SortOrderNone = ""
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// sortItems returns a sorted copy of items. Equal lines keep their input order.
func sortItems(items []string, order string, ignoreCase bool) ([]string, error) {
	switch order {
	case SortOrderNone:
		return items, nil
	case SortOrderAsc, SortOrderDesc:
	default:
		return nil, fmt.Errorf("invalid sort order %q: must be %q or %q", order, SortOrderAsc, SortOrderDesc)
	}

	sorted := make([]string, len(items))
	copy(sorted, items)

	key := func(s string) string { return s }
	if ignoreCase {
		key = strings.ToLower
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if order == SortOrderDesc {
			return key(sorted[j]) < key(sorted[i])
		}
		return key(sorted[i]) < key(sorted[j])
	})
	return sorted, nil
}
