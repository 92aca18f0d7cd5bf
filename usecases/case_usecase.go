package usecases

import (
	"context"
	"log/slog"

	"github.com/caseshowcase/showcase-backend/models"
	"github.com/caseshowcase/showcase-backend/repositories"
	"github.com/caseshowcase/showcase-backend/utils"
)

type CaseUseCase struct {
	repository repositories.CaseRepository
}

func (usecase *CaseUseCase) ListCases(ctx context.Context) ([]models.Case, error) {
	return usecase.repository.ListCases(ctx)
}

func (usecase *CaseUseCase) GetCase(ctx context.Context, caseId string) (models.Case, error) {
	return usecase.repository.GetCase(ctx, caseId)
}

// DeleteCase deletes the case document. Its images are removed asynchronously by the
// cleanup trigger bound to the deletion.
func (usecase *CaseUseCase) DeleteCase(ctx context.Context, caseId string) error {
	if err := usecase.repository.DeleteCase(ctx, caseId); err != nil {
		return err
	}

	session := utils.SessionFromContext(ctx)
	utils.LoggerFromContext(ctx).InfoContext(ctx, "case deleted",
		slog.String("case_id", caseId),
		slog.String("deleted_by", session.Email))
	return nil
}
