package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/xavierca1/crm-backend/internal/entity"
)

type GetLeadUseCase struct {
	Leads entity.LeadRepositoryInterface
}

func NewGetLeadUseCase(leads entity.LeadRepositoryInterface) *GetLeadUseCase {
	return &GetLeadUseCase{Leads: leads}
}

func (uc *GetLeadUseCase) Execute(ctx context.Context, id string) (*entity.Lead, error) {
	lead, err := uc.Leads.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("finding lead %s: %w", id, err)
	}
	return lead, nil
}
