package usecase

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/xavierca1/crm-backend/internal/entity"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100

	// Sentinel the dashboard sends for "no constraint".
	filterAll = "All"
)

// LeadQuery carries the raw, untrusted query-string parameters of a lead
// listing request. Its methods shape them into a safe filter, sort, and
// pagination triple. Pure; no I/O.
type LeadQuery struct {
	Search    string
	Status    string
	Source    string
	SortBy    string
	SortOrder string
	Page      string
	Limit     string
}

func LeadQueryFromValues(v url.Values) LeadQuery {
	return LeadQuery{
		Search:    v.Get("search"),
		Status:    v.Get("status"),
		Source:    v.Get("source"),
		SortBy:    v.Get("sortBy"),
		SortOrder: v.Get("sortOrder"),
		Page:      v.Get("page"),
		Limit:     v.Get("limit"),
	}
}

// Filter builds the lead filter. Absent parameters and the "All" sentinel
// add no constraint, so an empty query matches every lead.
func (q LeadQuery) Filter() entity.LeadFilter {
	f := entity.LeadFilter{
		Search: strings.TrimSpace(q.Search),
	}
	if q.Status != "" && q.Status != filterAll {
		f.Status = q.Status
	}
	if q.Source != "" && q.Source != filterAll {
		f.Source = q.Source
	}
	return f
}

// Sort whitelists the sort field. Anything but "name" falls back to the
// creation timestamp; anything but "asc" sorts descending.
func (q LeadQuery) Sort() entity.LeadSort {
	field := entity.SortByCreatedAt
	if q.SortBy == entity.SortByName {
		field = entity.SortByName
	}
	return entity.LeadSort{
		Field:     field,
		Ascending: q.SortOrder == "asc",
	}
}

// Pagination parses page/limit with defaults of 1 and 10, clamps page to a
// minimum of 1 and limit to [1, 100], and derives the skip offset.
func (q LeadQuery) Pagination() entity.Pagination {
	page := parsePositive(q.Page, defaultPage)
	limit := parsePositive(q.Limit, defaultLimit)
	if limit > maxLimit {
		limit = maxLimit
	}
	return entity.Pagination{
		Page:  page,
		Limit: limit,
		Skip:  (page - 1) * limit,
	}
}

func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
