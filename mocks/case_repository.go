package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/caseshowcase/showcase-backend/models"
)

type CaseRepository struct {
	mock.Mock
}

func (m *CaseRepository) ListCases(ctx context.Context) ([]models.Case, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Case), args.Error(1)
}

func (m *CaseRepository) GetCase(ctx context.Context, caseId string) (models.Case, error) {
	args := m.Called(ctx, caseId)
	return args.Get(0).(models.Case), args.Error(1)
}

func (m *CaseRepository) DeleteCase(ctx context.Context, caseId string) error {
	args := m.Called(ctx, caseId)
	return args.Error(0)
}
