package content

import "sort"

// Dated is implemented by records that are ordered by date.
type Dated interface {
	SortDate() string
}

// SortByDate orders items newest first by comparing their dates as plain
// strings, which is correct for ISO 8601 dates. Items without a date compare
// as the empty string and end up last. Equal dates keep their order.
func SortByDate[T Dated](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SortDate() > items[j].SortDate()
	})
}
