// internal/domain/pagination.go
package domain

import (
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest is a normalized page/limit pair.
type PageRequest struct {
	Page  int
	Limit int
}

// NormalizePage clamps untrusted page and limit values.
// page <= 0 becomes 1, limit <= 0 becomes 10 and limit is capped at 100.
func NormalizePage(page, limit int) PageRequest {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return PageRequest{Page: page, Limit: limit}
}

// ParsePageParams normalizes raw query-string values. Missing or non-numeric values fall back to the defaults.
func ParsePageParams(pageStr, limitStr string) PageRequest {
	return NormalizePage(atoiOrZero(pageStr), atoiOrZero(limitStr))
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// Skip returns the number of rows preceding the requested page.
func (p PageRequest) Skip() int {
	return (p.Page - 1) * p.Limit
}

// PageInfo is the pagination envelope returned alongside a page of results.
type PageInfo struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// NewPageInfo builds the envelope for req given the total number of matching rows.
func NewPageInfo(req PageRequest, total int64) PageInfo {
	limit := int64(req.Limit)
	return PageInfo{
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}
}

// TransactionPage is one page of transactions plus its envelope.
type TransactionPage struct {
	Data       []Transaction `json:"data"`
	Pagination PageInfo      `json:"pagination"`
}
