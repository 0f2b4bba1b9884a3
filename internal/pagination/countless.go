package pagination

// Countless is a page context without a total count. It only knows whether
// another page exists, which callers learn by fetching FetchLimit(limit) rows.
type Countless struct {
	Page    int
	Limit   int
	Outset  int
	Offset  int
	Prev    int
	Next    int
	HasMore bool

	// From, To and Items are 0 when the number of items on the page is unknown.
	From  int
	To    int
	Items int
}

// FetchLimit is the number of rows to request so that HasMore can be decided.
func FetchLimit(limit int) int {
	return limit + 1
}

// HasMore reports whether a fetch of FetchLimit(limit) rows returned the extra row.
func HasMore(fetched, limit int) bool {
	return fetched > limit
}

// NewCountless builds a countless page context from a "has more" flag.
// When hasMore is true the page is known to be full.
func NewCountless(page, limit, outset int, hasMore bool) (*Countless, error) {
	c, err := newCountless(page, limit, outset)
	if err != nil {
		return nil, err
	}
	c.HasMore = hasMore
	if hasMore {
		c.setItems(limit)
		c.Next = page + 1
	}
	return c, nil
}

// NewCountlessFetched builds a countless page context from the number of rows
// fetched with FetchLimit(limit). An empty page after the first one is out of range.
func NewCountlessFetched(page, limit, outset, fetched int) (*Countless, error) {
	c, err := newCountless(page, limit, outset)
	if err != nil {
		return nil, err
	}
	if fetched < 0 {
		return nil, &RangeError{Page: page}
	}
	if fetched == 0 && page > MinPage {
		return nil, &RangeError{Page: page}
	}
	c.HasMore = HasMore(fetched, limit)
	c.setItems(min(fetched, limit))
	if c.HasMore {
		c.Next = page + 1
	}
	return c, nil
}

func newCountless(page, limit, outset int) (*Countless, error) {
	if err := validateVars(0, limit, outset); err != nil {
		return nil, err
	}
	if page < MinPage {
		return nil, &RangeError{Page: page}
	}
	c := &Countless{
		Page:   page,
		Limit:  limit,
		Outset: outset,
		Offset: (page-1)*limit + outset,
	}
	if page > MinPage {
		c.Prev = page - 1
	}
	return c, nil
}

func (c *Countless) setItems(items int) {
	c.Items = items
	if items == 0 {
		return
	}
	skipped := (c.Page - 1) * c.Limit
	c.From = skipped + 1
	c.To = skipped + items
}

// CurrentPage implements Navigator.
func (c *Countless) CurrentPage() int { return c.Page }

// PrevPage implements Navigator.
func (c *Countless) PrevPage() int { return c.Prev }

// NextPage implements Navigator.
func (c *Countless) NextPage() int { return c.Next }

// PerPage implements Navigator.
func (c *Countless) PerPage() int { return c.Limit }

// LastPage implements Navigator. The last page is unknown.
func (c *Countless) LastPage() (int, bool) { return 0, false }

// TotalCount implements Navigator. The total is unknown.
func (c *Countless) TotalCount() (int, bool) { return 0, false }

// ItemRange implements Navigator.
func (c *Countless) ItemRange() (int, int) { return c.From, c.To }
