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

func TestGetLeadFound(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("FindByID", mock.Anything, "lead-1").Return(&entity.Lead{ID: "lead-1", Name: "Ana"}, nil)

	lead, err := usecase.NewGetLeadUseCase(repo).Execute(context.Background(), "lead-1")

	assert.NoError(t, err)
	assert.Equal(t, "Ana", lead.Name)
}

func TestGetLeadNotFound(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("FindByID", mock.Anything, "missing").Return(nil, entity.ErrLeadNotFound)

	lead, err := usecase.NewGetLeadUseCase(repo).Execute(context.Background(), "missing")

	assert.Nil(t, lead)
	assert.ErrorIs(t, err, usecase.ErrLeadNotFound)
}

func TestGetLeadRepositoryFailure(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("FindByID", mock.Anything, "lead-1").Return(nil, errors.New("connection reset"))

	_, err := usecase.NewGetLeadUseCase(repo).Execute(context.Background(), "lead-1")

	assert.Error(t, err)
	assert.False(t, usecase.IsDomainError(err))
}
