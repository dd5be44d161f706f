// Package pagination turns raw page/limit query parameters into validated
// offset pagination.
//
// Page and limit are never trusted as parsed: a value that fails to parse,
// or parses to zero or less, falls back to its default instead of flowing
// into the offset computation.
package pagination

import (
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Defaults struct {
	Limit    int
	MaxLimit int
}

type Params struct {
	Page  int
	Limit int
}

// Parse reads the "page" and "limit" query parameters.
func Parse(values url.Values, defaults Defaults) Params {
	return Normalize(ParseInt(values.Get("page")), ParseInt(values.Get("limit")), defaults)
}

// Normalize clamps page to at least 1 and limit into [1, MaxLimit].
// Non-positive values take the defaults. Page is capped so that Offset
// cannot overflow; a capped page is still past the last page of any table.
func Normalize(page, limit int, defaults Defaults) Params {
	defaults = defaults.withFallbacks()

	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = defaults.Limit
	}
	if limit > defaults.MaxLimit {
		limit = defaults.MaxLimit
	}
	if maxPage := MaxPage(limit); page > maxPage {
		page = maxPage
	}

	return Params{Page: page, Limit: limit}
}

// MaxPage is the largest page whose offset fits in an int.
func MaxPage(limit int) int {
	if limit < 1 {
		return math.MaxInt
	}
	return math.MaxInt / limit
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages is ceil(total / limit), and 0 for an empty result set.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) > 0 {
		pages++
	}
	return int(pages)
}

func (d Defaults) withFallbacks() Defaults {
	if d.MaxLimit < 1 {
		d.MaxLimit = MaxLimit
	}
	if d.Limit < 1 {
		d.Limit = DefaultLimit
	}
	if d.Limit > d.MaxLimit {
		d.Limit = d.MaxLimit
	}
	return d
}

// ParseInt coerces a raw parameter to an int, yielding 0 (the "unset"
// value for Normalize) when it does not parse. Integers beyond the int range
// saturate, so a huge page stays out of range instead of becoming page 1.
func ParseInt(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return n
}
