package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/caseshowcase/showcase-backend/repositories"
)

type ObjectDeleter struct {
	mock.Mock
}

func (m *ObjectDeleter) DeleteObject(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

type BucketProvider struct {
	mock.Mock
}

func (m *BucketProvider) OpenCaseImagesBucket(ctx context.Context) (repositories.ObjectDeleter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repositories.ObjectDeleter), args.Error(1)
}
