package pagination

// Navigator is the read-only view of a page context shared by Pagination and Countless.
type Navigator interface {
	CurrentPage() int
	// PrevPage and NextPage return 0 when there is no such page.
	PrevPage() int
	NextPage() int
	PerPage() int
	// LastPage and TotalCount report false when the total is unknown.
	LastPage() (int, bool)
	TotalCount() (int, bool)
	ItemRange() (from, to int)
}

// Meta contains metadata about a paginated result.
type Meta struct {
	CurrentPage int  `json:"current_page"          yaml:"current_page"`
	PageSize    int  `json:"page_size"             yaml:"page_size"`
	TotalPages  int  `json:"total_pages,omitempty" yaml:"total_pages,omitempty"`
	TotalItems  int  `json:"total_items,omitempty" yaml:"total_items,omitempty"`
	From        int  `json:"from"                  yaml:"from"`
	To          int  `json:"to"                    yaml:"to"`
	PrevPage    int  `json:"prev_page,omitempty"   yaml:"prev_page,omitempty"`
	NextPage    int  `json:"next_page,omitempty"   yaml:"next_page,omitempty"`
	HasPrevious bool `json:"has_previous"          yaml:"has_previous"`
	HasNext     bool `json:"has_next"              yaml:"has_next"`
	Countless   bool `json:"countless,omitempty"   yaml:"countless,omitempty"`
}

// NewMeta creates pagination metadata from a page context.
func NewMeta(nav Navigator) Meta {
	from, to := nav.ItemRange()
	meta := Meta{
		CurrentPage: nav.CurrentPage(),
		PageSize:    nav.PerPage(),
		From:        from,
		To:          to,
		PrevPage:    nav.PrevPage(),
		NextPage:    nav.NextPage(),
		HasPrevious: nav.PrevPage() > 0,
		HasNext:     nav.NextPage() > 0,
	}

	last, known := nav.LastPage()
	if !known {
		meta.Countless = true
		return meta
	}
	meta.TotalPages = last
	meta.TotalItems, _ = nav.TotalCount()
	return meta
}
