package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Defaults and limits.
const (
	DefaultLimit  = 20
	DefaultPage   = 1
	MinPage       = 1
	MinLimit      = 1
	DefaultOutset = 0
)

// Common errors.
var (
	ErrOutOfRange      = errors.New("page out of range")
	ErrInvalidVars     = errors.New("invalid pagination variables")
	ErrInvalidOverflow = errors.New("overflow mode must be 'exception', 'last_page' or 'empty_page'")
)

// RangeError reports a requested page outside [1, Pages].
// Pages is 0 when the total is unknown (countless pagination).
type RangeError struct {
	Page  int
	Pages int
}

func (e *RangeError) Error() string {
	if e.Pages == 0 {
		return fmt.Sprintf("%s: page %d", ErrOutOfRange, e.Page)
	}
	return fmt.Sprintf("%s: page %d not in [%d, %d]", ErrOutOfRange, e.Page, MinPage, e.Pages)
}

// Is makes errors.Is(err, ErrOutOfRange) match any *RangeError.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// OverflowMode selects the recovery policy for a page beyond the last one.
type OverflowMode int

const (
	// OverflowError returns a *RangeError.
	OverflowError OverflowMode = iota
	// OverflowLastPage clamps the page to the last page.
	OverflowLastPage
	// OverflowEmptyPage keeps the requested page and reports it as empty.
	OverflowEmptyPage
)

// Overflow mode names as used in configuration files.
const (
	OverflowNameError     = "exception"
	OverflowNameLastPage  = "last_page"
	OverflowNameEmptyPage = "empty_page"
)

// ParseOverflowMode parses a configuration value. The empty string selects OverflowError.
func ParseOverflowMode(s string) (OverflowMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", OverflowNameError:
		return OverflowError, nil
	case OverflowNameLastPage:
		return OverflowLastPage, nil
	case OverflowNameEmptyPage:
		return OverflowEmptyPage, nil
	default:
		return OverflowError, fmt.Errorf("%w: got %q", ErrInvalidOverflow, s)
	}
}

func (m OverflowMode) String() string {
	switch m {
	case OverflowLastPage:
		return OverflowNameLastPage
	case OverflowEmptyPage:
		return OverflowNameEmptyPage
	default:
		return OverflowNameError
	}
}

// Vars are the inputs of a counted pagination.
type Vars struct {
	// Count is the total number of items.
	Count int

	// Page is the 1-based requested page.
	Page int

	// Limit is the number of items per page.
	Limit int

	// Outset is added to Offset before paging.
	Outset int

	// Overflow selects what happens when Page is beyond the last page.
	Overflow OverflowMode
}

// Pagination is a counted page context. Prev and Next are 0 when there is no such page.
type Pagination struct {
	Count  int
	Page   int
	Limit  int
	Outset int

	Pages  int
	Last   int
	Offset int
	From   int
	To     int
	Items  int
	Prev   int
	Next   int

	// RequestedPage is the page the caller asked for; it differs from Page
	// only when an overflow policy replaced it.
	RequestedPage int

	// Overflowed is true when the requested page was beyond the last page.
	Overflowed bool
}

// New computes a counted pagination. It returns a *RangeError for page < 1, and
// for page > Pages when count > 0 and vars.Overflow is OverflowError.
// A count of 0 always yields a single empty page.
func New(vars Vars) (*Pagination, error) {
	if err := validateVars(vars.Count, vars.Limit, vars.Outset); err != nil {
		return nil, err
	}
	if vars.Page < MinPage {
		return nil, &RangeError{Page: vars.Page, Pages: TotalPages(vars.Count, vars.Limit)}
	}

	p := &Pagination{
		Count:         vars.Count,
		Page:          vars.Page,
		Limit:         vars.Limit,
		Outset:        vars.Outset,
		Pages:         TotalPages(vars.Count, vars.Limit),
		RequestedPage: vars.Page,
	}
	p.Last = p.Pages

	if p.Count == 0 {
		p.Page = MinPage
	} else if p.Page > p.Pages {
		p.Overflowed = true
		switch vars.Overflow {
		case OverflowLastPage:
			p.Page = p.Last
		case OverflowEmptyPage:
			p.setEmpty()
			return p, nil
		default:
			return nil, &RangeError{Page: vars.Page, Pages: p.Pages}
		}
	}

	p.setRange()
	return p, nil
}

func (p *Pagination) setRange() {
	skipped := (p.Page - 1) * p.Limit
	p.Offset = skipped + p.Outset
	if p.Count > 0 {
		p.From = skipped + 1
		p.To = min(skipped+p.Limit, p.Count)
		p.Items = p.To - p.From + 1
	}
	if p.Page > MinPage {
		p.Prev = p.Page - 1
	}
	if p.Page < p.Pages {
		p.Next = p.Page + 1
	}
}

// setEmpty renders an overflowed page as an empty page after the last one.
func (p *Pagination) setEmpty() {
	p.Offset = (p.Page-1)*p.Limit + p.Outset
	p.From, p.To, p.Items = 0, 0, 0
	p.Prev = p.Last
	p.Next = 0
}

// TotalPages returns max(1, ceil(count/limit)). limit must be positive.
func TotalPages(count, limit int) int {
	if count <= 0 {
		return 1
	}
	pages := count / limit
	if count%limit > 0 {
		pages++
	}
	return pages
}

func validateVars(count, limit, outset int) error {
	if count < 0 {
		return fmt.Errorf("%w: count cannot be negative, got %d", ErrInvalidVars, count)
	}
	if limit < MinLimit {
		return fmt.Errorf("%w: limit must be >= %d, got %d", ErrInvalidVars, MinLimit, limit)
	}
	if outset < 0 {
		return fmt.Errorf("%w: outset cannot be negative, got %d", ErrInvalidVars, outset)
	}
	return nil
}

// CurrentPage implements Navigator.
func (p *Pagination) CurrentPage() int { return p.Page }

// PrevPage implements Navigator.
func (p *Pagination) PrevPage() int { return p.Prev }

// NextPage implements Navigator.
func (p *Pagination) NextPage() int { return p.Next }

// PerPage implements Navigator.
func (p *Pagination) PerPage() int { return p.Limit }

// LastPage implements Navigator.
func (p *Pagination) LastPage() (int, bool) { return p.Last, true }

// TotalCount implements Navigator.
func (p *Pagination) TotalCount() (int, bool) { return p.Count, true }

// ItemRange implements Navigator.
func (p *Pagination) ItemRange() (int, int) { return p.From, p.To }
