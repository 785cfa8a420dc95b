package entity

import (
	"context"
	"errors"
	"time"
)

// Canonical source values. The persistence layer enforces these on write;
// reads echo whatever is stored.
const (
	SourceWebsite  = "Website"
	SourceReferral = "Referral"
	SourceAds      = "Ads"
	SourceSocial   = "Social"
	SourceOther    = "Other"
)

const (
	StatusNew       = "New"
	StatusContacted = "Contacted"
	StatusConverted = "Converted"
	StatusLost      = "Lost"
)

// Sortable lead fields, as they appear in the query string.
const (
	SortByCreatedAt = "createdAt"
	SortByName      = "name"
)

var (
	ErrLeadNotFound   = errors.New("lead not found")
	ErrDuplicateEmail = errors.New("lead email already exists")
)

type Lead struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Source    string    `json:"source"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LeadFilter narrows a lead query. Zero-value fields add no constraint;
// present fields are AND-combined. Search matches name or email,
// case-insensitive substring.
type LeadFilter struct {
	Search string
	Status string
	Source string
}

type LeadSort struct {
	Field     string
	Ascending bool
}

type Pagination struct {
	Page  int
	Limit int
	Skip  int
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

func ValidSource(s string) bool {
	switch s {
	case SourceWebsite, SourceReferral, SourceAds, SourceSocial, SourceOther:
		return true
	}
	return false
}

func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusContacted, StatusConverted, StatusLost:
		return true
	}
	return false
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	Find(ctx context.Context, filter LeadFilter, sort LeadSort, page Pagination) ([]Lead, error)
	Count(ctx context.Context, filter LeadFilter) (int, error)
	FindByID(ctx context.Context, id string) (*Lead, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
}
