package usecase_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/crm-backend/internal/entity"
	"github.com/xavierca1/crm-backend/internal/usecase"
)

func TestFilterEmptyQueryMatchesEverything(t *testing.T) {
	q := usecase.LeadQuery{}

	assert.Equal(t, entity.LeadFilter{}, q.Filter())
}

func TestFilterAllSentinelSameAsOmitted(t *testing.T) {
	withAll := usecase.LeadQuery{Status: "All", Source: "All"}
	omitted := usecase.LeadQuery{}

	assert.Equal(t, omitted.Filter(), withAll.Filter())
}

func TestFilterCombinesConstraints(t *testing.T) {
	q := usecase.LeadQuery{Search: "  maria ", Status: "Contacted", Source: "Ads"}

	f := q.Filter()
	assert.Equal(t, "maria", f.Search)
	assert.Equal(t, "Contacted", f.Status)
	assert.Equal(t, "Ads", f.Source)
}

func TestSortUnknownFieldFallsBackToCreatedAt(t *testing.T) {
	unknown := usecase.LeadQuery{SortBy: "unknown"}
	omitted := usecase.LeadQuery{}

	assert.Equal(t, omitted.Sort(), unknown.Sort())
	assert.Equal(t, entity.LeadSort{Field: entity.SortByCreatedAt, Ascending: false}, unknown.Sort())
}

func TestSortDirectionOnlyAscIsAscending(t *testing.T) {
	assert.True(t, usecase.LeadQuery{SortBy: "name", SortOrder: "asc"}.Sort().Ascending)
	assert.False(t, usecase.LeadQuery{SortOrder: "desc"}.Sort().Ascending)
	assert.False(t, usecase.LeadQuery{SortOrder: "ASC"}.Sort().Ascending)
	assert.False(t, usecase.LeadQuery{}.Sort().Ascending)
}

func TestPaginationNonNumericFallsBackToDefaults(t *testing.T) {
	q := usecase.LeadQuery{Page: "abc", Limit: "abc"}

	assert.Equal(t, entity.Pagination{Page: 1, Limit: 10, Skip: 0}, q.Pagination())
}

func TestPaginationMissingFallsBackToDefaults(t *testing.T) {
	assert.Equal(t, entity.Pagination{Page: 1, Limit: 10, Skip: 0}, usecase.LeadQuery{}.Pagination())
}

func TestPaginationComputesSkip(t *testing.T) {
	q := usecase.LeadQuery{Page: "3", Limit: "20"}

	assert.Equal(t, entity.Pagination{Page: 3, Limit: 20, Skip: 40}, q.Pagination())
}

func TestPaginationClampsZeroAndNegative(t *testing.T) {
	q := usecase.LeadQuery{Page: "0", Limit: "-5"}

	p := q.Pagination()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 0, p.Skip)
}

func TestPaginationCapsLimit(t *testing.T) {
	q := usecase.LeadQuery{Limit: "1000"}

	assert.Equal(t, 100, q.Pagination().Limit)
}

func TestLeadQueryFromValues(t *testing.T) {
	v := url.Values{}
	v.Set("search", "joao")
	v.Set("status", "New")
	v.Set("source", "Referral")
	v.Set("sortBy", "name")
	v.Set("sortOrder", "asc")
	v.Set("page", "2")
	v.Set("limit", "5")

	q := usecase.LeadQueryFromValues(v)
	assert.Equal(t, "joao", q.Search)
	assert.Equal(t, "New", q.Status)
	assert.Equal(t, "Referral", q.Source)
	assert.Equal(t, entity.Pagination{Page: 2, Limit: 5, Skip: 5}, q.Pagination())
}
