package repositories

import (
	"context"
	"sync"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/cockroachdb/errors"
)

// FirebaseStorageRepository gives access to the default bucket of the Firebase project.
type FirebaseStorageRepository struct {
	app *firebase.App

	m      sync.Mutex
	bucket *storage.BucketHandle
}

func NewFirebaseStorageRepository(app *firebase.App) *FirebaseStorageRepository {
	return &FirebaseStorageRepository{app: app}
}

func (repository *FirebaseStorageRepository) defaultBucket(ctx context.Context) (*storage.BucketHandle, error) {
	repository.m.Lock()
	defer repository.m.Unlock()

	if repository.bucket != nil {
		return repository.bucket, nil
	}

	client, err := repository.app.Storage(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "error getting Storage client")
	}
	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, errors.Wrap(err, "error getting the default bucket")
	}

	repository.bucket = bucket
	return bucket, nil
}

func (repository *FirebaseStorageRepository) OpenDefaultBucket(ctx context.Context) (ObjectDeleter, error) {
	bucket, err := repository.defaultBucket(ctx)
	if err != nil {
		return nil, err
	}
	return gcsBucket{handle: bucket}, nil
}

type gcsBucket struct {
	handle *storage.BucketHandle
}

func (b gcsBucket) DeleteObject(ctx context.Context, path string) error {
	ctx, cancel := context.WithTimeout(ctx, deleteTimeout)
	defer cancel()

	if err := b.handle.Object(path).Delete(ctx); err != nil {
		return errors.Wrapf(err, "Object(%q).Delete", path)
	}
	return nil
}
