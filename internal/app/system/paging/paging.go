// internal/app/system/paging/paging.go

// Package paging parses page/limit query parameters and builds the
// pagination metadata included in list responses.
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 50
)

// Params is a validated page/limit pair.
type Params struct {
	Page  int
	Limit int
}

// Parse reads the page and limit query parameters, clamping out-of-range
// values to the defaults rather than rejecting the request.
func Parse(r *http.Request) Params {
	p := Params{Page: DefaultPage, Limit: DefaultLimit}

	if raw := query.Get(r, "page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			p.Page = n
		}
	}
	if raw := query.Get(r, "limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			p.Limit = n
			if p.Limit > MaxLimit {
				p.Limit = MaxLimit
			}
		}
	}
	return p
}

// Skip returns the number of documents to skip for this page.
func (p Params) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// Limit64 returns the limit as an int64 for driver options.
func (p Params) Limit64() int64 {
	return int64(p.Limit)
}

// Meta is the pagination block returned with list responses.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"pages"`
}

// NewMeta builds a Meta for the given params and total match count.
func NewMeta(p Params, total int64) Meta {
	pages := total / int64(p.Limit)
	if total%int64(p.Limit) != 0 {
		pages++
	}
	return Meta{Page: p.Page, Limit: p.Limit, Total: total, TotalPages: pages}
}
