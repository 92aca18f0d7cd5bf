package cleanup

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/caseshowcase/showcase-backend/models"
	"github.com/caseshowcase/showcase-backend/repositories"
)

// NewBucketProvider returns the Firebase default bucket when bucketUrl is empty, or the
// gocloud bucket found at bucketUrl (gs://, s3://, azblob://, file://, mem://).
func NewBucketProvider(repos repositories.Repositories, bucketUrl string) BucketProvider {
	if bucketUrl == "" {
		return firebaseDefaultBucket{repository: repos.FirebaseStorageRepository}
	}
	return urlBucket{repository: repos.BlobRepository, bucketUrl: bucketUrl}
}

type firebaseDefaultBucket struct {
	repository *repositories.FirebaseStorageRepository
}

func (b firebaseDefaultBucket) OpenCaseImagesBucket(ctx context.Context) (repositories.ObjectDeleter, error) {
	bucket, err := b.repository.OpenDefaultBucket(ctx)
	if err != nil {
		return nil, errors.Mark(err, models.ErrBucketNotAvailable)
	}
	return bucket, nil
}

type urlBucket struct {
	repository repositories.BlobRepository
	bucketUrl  string
}

func (b urlBucket) OpenCaseImagesBucket(ctx context.Context) (repositories.ObjectDeleter, error) {
	bucket, err := b.repository.OpenBucket(ctx, b.bucketUrl)
	if err != nil {
		return nil, errors.Mark(err, models.ErrBucketNotAvailable)
	}
	return bucket, nil
}
