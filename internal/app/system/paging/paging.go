// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"
)

// DefaultLimit is the page size used when the client does not send one.
const DefaultLimit = 10

// MaxLimit caps the page size a client may request.
const MaxLimit = 50

// Params holds the parsed page/limit pair for a list request.
type Params struct {
	Page  int
	Limit int
}

// Parse reads the "page" and "limit" query parameters, clamping them to
// page ≥ 1 and 1 ≤ limit ≤ MaxLimit. Absent or malformed values fall back
// to page 1 / DefaultLimit.
func Parse(r *http.Request) Params {
	p := Params{Page: 1, Limit: DefaultLimit}

	if s := r.URL.Query().Get("page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.Page = n
		}
	}
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			if n > MaxLimit {
				n = MaxLimit
			}
			p.Limit = n
		}
	}
	return p
}

// Skip returns the number of documents to skip for this page.
func (p Params) Skip() int64 { return int64((p.Page - 1) * p.Limit) }

// Limit64 returns the limit as int64 for Mongo find options.
func (p Params) Limit64() int64 { return int64(p.Limit) }

// Meta is the pagination block included in list responses.
type Meta struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

// BuildMeta computes the response pagination block for a total row count.
func BuildMeta(p Params, total int64) Meta {
	pages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return Meta{
		CurrentPage:  p.Page,
		TotalPages:   pages,
		TotalItems:   total,
		ItemsPerPage: p.Limit,
	}
}
