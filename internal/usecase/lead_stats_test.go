package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/crm-backend/internal/entity"
	"github.com/xavierca1/crm-backend/internal/usecase"
)

func TestLeadStats(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Count", mock.Anything, entity.LeadFilter{}).Return(3, nil)
	repo.On("Count", mock.Anything, entity.LeadFilter{Status: entity.StatusConverted}).Return(1, nil)
	repo.On("CountByStatus", mock.Anything).Return([]entity.StatusCount{
		{Status: "New", Count: 2},
		{Status: "Converted", Count: 1},
	}, nil)

	out, err := usecase.NewLeadStatsUseCase(repo).Execute(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, out.TotalLeads)
	assert.Equal(t, 1, out.ConvertedLeads)
	assert.Contains(t, out.LeadsByStatus, entity.StatusCount{Status: "New", Count: 2})
	assert.Contains(t, out.LeadsByStatus, entity.StatusCount{Status: "Converted", Count: 1})
}

func TestLeadStatsEchoesOffEnumStatuses(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Count", mock.Anything, entity.LeadFilter{}).Return(1, nil)
	repo.On("Count", mock.Anything, entity.LeadFilter{Status: entity.StatusConverted}).Return(0, nil)
	repo.On("CountByStatus", mock.Anything).Return([]entity.StatusCount{{Status: "Migrated", Count: 1}}, nil)

	out, err := usecase.NewLeadStatsUseCase(repo).Execute(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []entity.StatusCount{{Status: "Migrated", Count: 1}}, out.LeadsByStatus)
}

func TestLeadStatsEmptyCollection(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Count", mock.Anything, mock.Anything).Return(0, nil)
	repo.On("CountByStatus", mock.Anything).Return(nil, nil)

	out, err := usecase.NewLeadStatsUseCase(repo).Execute(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, out.LeadsByStatus)
	assert.Empty(t, out.LeadsByStatus)
}

func TestLeadStatsRepositoryFailure(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Count", mock.Anything, mock.Anything).Return(0, errors.New("connection reset"))

	_, err := usecase.NewLeadStatsUseCase(repo).Execute(context.Background())

	assert.Error(t, err)
}
