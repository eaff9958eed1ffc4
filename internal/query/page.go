// Package query turns request parameters into store filters, sorts and
// pagination windows. Every filter type has a BSON rendering for MongoDB and
// a Matches method with the same semantics for the in-memory store.
package query

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/ArowuTest/blood-donation-backend/internal/apperr"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Page is a 1-based pagination window
type Page struct {
	Page  int
	Limit int
}

// ParsePage reads the page and limit query parameters. Empty values take the
// defaults; page below 1 is clamped to 1; limit must be positive and is capped
// at maxLimit when maxLimit > 0.
func ParsePage(pageParam, limitParam string, maxLimit int) (Page, error) {
	p := Page{Page: DefaultPage, Limit: DefaultLimit}

	if s := strings.TrimSpace(pageParam); s != "" {
		n, err := atoi(s)
		if err != nil {
			return Page{}, apperr.Validation("Invalid page parameter")
		}
		p.Page = n
	}
	if s := strings.TrimSpace(limitParam); s != "" {
		n, err := atoi(s)
		if err != nil {
			return Page{}, apperr.Validation("Invalid limit parameter")
		}
		p.Limit = n
	}

	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		return Page{}, apperr.Validation("limit must be a positive integer")
	}
	if maxLimit > 0 && p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p, nil
}

// atoi parses an integer, saturating out-of-range values at the int bounds
// so the clamps in ParsePage apply to them
func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) {
		return n, nil
	}
	return n, err
}

// Skip is the number of matching documents before the window. It saturates
// at math.MaxInt64 instead of overflowing.
func (p Page) Skip() int64 {
	if p.Page < 1 || p.Limit < 1 {
		return 0
	}
	pages, limit := int64(p.Page-1), int64(p.Limit)
	if pages > math.MaxInt64/limit {
		return math.MaxInt64
	}
	return pages * limit
}

// Window applies the page to n sorted items and returns the [start, end)
// bounds, both within [0, n].
func (p Page) Window(n int) (int, int) {
	if n <= 0 || p.Limit < 1 {
		return 0, 0
	}
	start := p.Skip()
	if start >= int64(n) {
		return n, n
	}
	remaining := int64(n) - start
	if int64(p.Limit) < remaining {
		remaining = int64(p.Limit)
	}
	return int(start), int(start + remaining)
}
