package usecase

import (
	"context"
	"fmt"

	"github.com/xavierca1/crm-backend/internal/entity"
)

type LeadStatsOutput struct {
	TotalLeads     int                  `json:"totalLeads"`
	ConvertedLeads int                  `json:"convertedLeads"`
	LeadsByStatus  []entity.StatusCount `json:"leadsByStatus"`
}

type LeadStatsUseCase struct {
	Leads entity.LeadRepositoryInterface
}

func NewLeadStatsUseCase(leads entity.LeadRepositoryInterface) *LeadStatsUseCase {
	return &LeadStatsUseCase{Leads: leads}
}

// Execute aggregates over whatever distinct status values exist in the
// collection; group order is not guaranteed.
func (uc *LeadStatsUseCase) Execute(ctx context.Context) (*LeadStatsOutput, error) {
	total, err := uc.Leads.Count(ctx, entity.LeadFilter{})
	if err != nil {
		return nil, fmt.Errorf("counting leads: %w", err)
	}

	converted, err := uc.Leads.Count(ctx, entity.LeadFilter{Status: entity.StatusConverted})
	if err != nil {
		return nil, fmt.Errorf("counting converted leads: %w", err)
	}

	byStatus, err := uc.Leads.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("grouping leads by status: %w", err)
	}
	if byStatus == nil {
		byStatus = []entity.StatusCount{}
	}

	return &LeadStatsOutput{
		TotalLeads:     total,
		ConvertedLeads: converted,
		LeadsByStatus:  byStatus,
	}, nil
}
