package usecase

import (
	"context"
	"fmt"

	"github.com/xavierca1/crm-backend/internal/entity"
)

type PaginationMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type LeadPageOutput struct {
	Data       []entity.Lead  `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

type ListLeadsUseCase struct {
	Leads entity.LeadRepositoryInterface
}

func NewListLeadsUseCase(leads entity.LeadRepositoryInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{Leads: leads}
}

func (uc *ListLeadsUseCase) Execute(ctx context.Context, q LeadQuery) (*LeadPageOutput, error) {
	filter := q.Filter()
	sort := q.Sort()
	page := q.Pagination()

	total, err := uc.Leads.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("counting leads: %w", err)
	}

	leads, err := uc.Leads.Find(ctx, filter, sort, page)
	if err != nil {
		return nil, fmt.Errorf("finding leads: %w", err)
	}
	if leads == nil {
		leads = []entity.Lead{}
	}

	totalPages := (total + page.Limit - 1) / page.Limit
	if totalPages < 1 {
		totalPages = 1
	}

	return &LeadPageOutput{
		Data: leads,
		Pagination: PaginationMeta{
			Total:      total,
			Page:       page.Page,
			Limit:      page.Limit,
			TotalPages: totalPages,
		},
	}, nil
}
