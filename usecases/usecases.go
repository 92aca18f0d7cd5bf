package usecases

import (
	"time"

	"github.com/caseshowcase/showcase-backend/models"
	"github.com/caseshowcase/showcase-backend/repositories"
	"github.com/caseshowcase/showcase-backend/usecases/cleanup"
)

type Usecases struct {
	Repositories        repositories.Repositories
	sessionLifetime     time.Duration
	caseImagesBucketUrl string
	imageUrlFormat      models.ImageUrlFormat
}

type Option func(*options)

func WithSessionLifetime(lifetime time.Duration) Option {
	return func(o *options) {
		o.sessionLifetime = lifetime
	}
}

func WithCaseImagesBucketUrl(bucketUrl string) Option {
	return func(o *options) {
		o.caseImagesBucketUrl = bucketUrl
	}
}

func WithImageUrlFormat(format models.ImageUrlFormat) Option {
	return func(o *options) {
		o.imageUrlFormat = format
	}
}

type options struct {
	sessionLifetime     time.Duration
	caseImagesBucketUrl string
	imageUrlFormat      models.ImageUrlFormat
}

func newUsecasesWithOptions(repositories repositories.Repositories, o *options) Usecases {
	return Usecases{
		Repositories:        repositories,
		sessionLifetime:     o.sessionLifetime,
		caseImagesBucketUrl: o.caseImagesBucketUrl,
		imageUrlFormat:      o.imageUrlFormat,
	}
}

func NewUsecases(repositories repositories.Repositories, opts ...Option) Usecases {
	options := &options{
		sessionLifetime: 5 * 24 * time.Hour,
		imageUrlFormat:  models.ImageUrlFormatFirebase,
	}
	for _, o := range opts {
		o(options)
	}
	return newUsecasesWithOptions(repositories, options)
}

func (usecases Usecases) NewCaseUseCase() CaseUseCase {
	return CaseUseCase{
		repository: usecases.Repositories.CaseRepository,
	}
}

func (usecases Usecases) NewSessionManager() *SessionManager {
	return NewSessionManager(usecases.Repositories.SessionRepository, usecases.sessionLifetime)
}

func (usecases Usecases) NewCaseImagesCleaner() (*cleanup.CaseImagesCleaner, error) {
	extractor, err := cleanup.NewObjectPathExtractor(usecases.imageUrlFormat)
	if err != nil {
		return nil, err
	}
	return cleanup.NewCaseImagesCleaner(
		cleanup.NewBucketProvider(usecases.Repositories, usecases.caseImagesBucketUrl),
		extractor,
	), nil
}
