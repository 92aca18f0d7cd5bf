package repositories

import (
	"context"
	"slices"

	"cloud.google.com/go/firestore"
	"github.com/cockroachdb/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/caseshowcase/showcase-backend/models"
	"github.com/caseshowcase/showcase-backend/repositories/dbmodels"
)

type CaseRepository interface {
	ListCases(ctx context.Context) ([]models.Case, error)
	GetCase(ctx context.Context, caseId string) (models.Case, error)
	DeleteCase(ctx context.Context, caseId string) error
}

type FirestoreCaseRepository struct {
	client *firestore.Client
}

func NewFirestoreCaseRepository(client *firestore.Client) *FirestoreCaseRepository {
	return &FirestoreCaseRepository{client: client}
}

// ListCases returns every case, newest first, including documents without createdAt.
func (repo *FirestoreCaseRepository) ListCases(ctx context.Context) ([]models.Case, error) {
	it := repo.client.Collection(models.CasesCollection).Documents(ctx)
	defer it.Stop()

	cases := make([]models.Case, 0)
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "error listing cases")
		}

		var dbCase dbmodels.DBCase
		if err := doc.DataTo(&dbCase); err != nil {
			return nil, errors.Wrapf(err, "error reading case %s", doc.Ref.ID)
		}
		cases = append(cases, dbmodels.AdaptCase(doc.Ref.ID, dbCase))
	}
	sortNewestFirst(cases)
	return cases, nil
}

// sortNewestFirst keeps cases without a creation time last, in their original order.
func sortNewestFirst(cases []models.Case) {
	slices.SortStableFunc(cases, func(a, b models.Case) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

func (repo *FirestoreCaseRepository) GetCase(ctx context.Context, caseId string) (models.Case, error) {
	doc, err := repo.client.Collection(models.CasesCollection).Doc(caseId).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return models.Case{}, errors.Wrapf(models.NotFoundError, "case %s", caseId)
	}
	if err != nil {
		return models.Case{}, errors.Wrapf(err, "error getting case %s", caseId)
	}

	var dbCase dbmodels.DBCase
	if err := doc.DataTo(&dbCase); err != nil {
		return models.Case{}, errors.Wrapf(err, "error reading case %s", caseId)
	}
	return dbmodels.AdaptCase(doc.Ref.ID, dbCase), nil
}

// DeleteCase removes the case document. The image cleanup is left to the deletion trigger.
func (repo *FirestoreCaseRepository) DeleteCase(ctx context.Context, caseId string) error {
	_, err := repo.client.Collection(models.CasesCollection).Doc(caseId).Delete(ctx, firestore.Exists)
	if status.Code(err) == codes.NotFound {
		return errors.Wrapf(models.NotFoundError, "case %s", caseId)
	}
	if err != nil {
		return errors.Wrapf(err, "error deleting case %s", caseId)
	}
	return nil
}
