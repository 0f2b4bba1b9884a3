package pagination

// Slice returns the items of items that fall on the page of nav. Items are
// assumed to start at the first item of the listing; the outset is ignored.
func Slice[T any](items []T, nav Navigator) []T {
	from, to := nav.ItemRange()
	if from < 1 || from > len(items) {
		return []T{}
	}
	return items[from-1:min(to, len(items))]
}
