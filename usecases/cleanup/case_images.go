package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/caseshowcase/showcase-backend/models"
	"github.com/caseshowcase/showcase-backend/repositories"
	"github.com/caseshowcase/showcase-backend/utils"
)

type BucketProvider interface {
	OpenCaseImagesBucket(ctx context.Context) (repositories.ObjectDeleter, error)
}

type CaseImagesCleaner struct {
	buckets   BucketProvider
	extractor ObjectPathExtractor
}

func NewCaseImagesCleaner(buckets BucketProvider, extractor ObjectPathExtractor) *CaseImagesCleaner {
	return &CaseImagesCleaner{
		buckets:   buckets,
		extractor: extractor,
	}
}

// DeleteCaseImages deletes every object referenced by the images of a deleted case. Each
// image is handled on its own: failures are logged and never stop the other deletions.
// Failures outside of the per image work are logged too, the method never fails.
func (c *CaseImagesCleaner) DeleteCaseImages(ctx context.Context, deleted models.DeletedCase) models.CleanupReport {
	logger := utils.LoggerFromContext(ctx).With(
		slog.String("case_id", deleted.CaseId),
		slog.String("cleanup_run_id", uuid.NewString()),
	)
	ctx = utils.StoreLoggerInContext(ctx, logger)

	report, err := c.deleteCaseImages(ctx, deleted)
	if err != nil {
		report.Err = err
		utils.MetricCleanupRuns.With(prometheus.Labels{"result": "error"}).Inc()
		utils.LogAndReportSentryError(ctx,
			errors.Wrapf(err, "error processing case %s", deleted.CaseId))
		return report
	}

	utils.MetricCleanupRuns.With(prometheus.Labels{"result": "completed"}).Inc()
	return report
}

func (c *CaseImagesCleaner) deleteCaseImages(ctx context.Context, deleted models.DeletedCase) (models.CleanupReport, error) {
	logger := utils.LoggerFromContext(ctx)
	report := models.CleanupReport{CaseId: deleted.CaseId}

	if len(deleted.Images) == 0 {
		logger.InfoContext(ctx, fmt.Sprintf("Case %s has no images to delete", deleted.CaseId))
		return report, nil
	}

	bucket, err := c.buckets.OpenCaseImagesBucket(ctx)
	if err != nil {
		return report, errors.Wrap(err, "could not open the case images bucket")
	}

	report.Attempted = len(deleted.Images)
	results := make([]error, len(deleted.Images))

	var wg sync.WaitGroup
	for i, imageUrl := range deleted.Images {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = c.deleteImage(ctx, bucket, deleted.CaseId, imageUrl)
		}()
	}
	wg.Wait()

	for i, imageUrl := range deleted.Images {
		if results[i] != nil {
			report.Failures = append(report.Failures, models.ImageDeletionFailure{Url: imageUrl, Err: results[i]})
			continue
		}
		report.Deleted = append(report.Deleted, imageUrl)
	}

	logger.InfoContext(ctx, fmt.Sprintf("Finished deleting images for case %s", deleted.CaseId),
		slog.Int("attempted", report.Attempted),
		slog.Int("deleted", len(report.Deleted)),
		slog.Int("failed", len(report.Failures)))
	return report, nil
}

func (c *CaseImagesCleaner) deleteImage(ctx context.Context, bucket repositories.ObjectDeleter, caseId, imageUrl string) (err error) {
	logger := utils.LoggerFromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("panic while deleting image: %v", r)
		}
		if err != nil {
			utils.MetricCaseImageDeletions.With(prometheus.Labels{"outcome": "failed"}).Inc()
			logger.ErrorContext(ctx, fmt.Sprintf("Failed to delete image %s for case %s", imageUrl, caseId),
				slog.String("url", imageUrl),
				slog.String("error", err.Error()))
		}
	}()

	path, err := c.extractor.ObjectPath(imageUrl)
	if err != nil {
		return err
	}

	if err := bucket.DeleteObject(ctx, path); err != nil {
		return errors.Wrapf(err, "could not delete object %s", path)
	}

	utils.MetricCaseImageDeletions.With(prometheus.Labels{"outcome": "deleted"}).Inc()
	logger.InfoContext(ctx, fmt.Sprintf("Deleted image: %s for case %s", path, caseId),
		slog.String("path", path))
	return nil
}
