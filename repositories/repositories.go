package repositories

import (
	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
)

type Repositories struct {
	CaseRepository            CaseRepository
	SessionRepository         SessionRepository
	BlobRepository            BlobRepository
	FirebaseStorageRepository *FirebaseStorageRepository
}

type Option func(*options)

type options struct {
	firestoreClient *firestore.Client
	authClient      firebaseAuthClient
}

func WithFirestoreClient(client *firestore.Client) Option {
	return func(o *options) {
		o.firestoreClient = client
	}
}

func WithAuthClient(client firebaseAuthClient) Option {
	return func(o *options) {
		o.authClient = client
	}
}

// NewRepositories wires the repositories backed by the Firebase project. Firestore and
// Auth clients are optional so that the cleanup trigger only needs storage access.
func NewRepositories(app *firebase.App, opts ...Option) Repositories {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	repositories := Repositories{
		BlobRepository:            NewBlobRepository(),
		FirebaseStorageRepository: NewFirebaseStorageRepository(app),
	}
	if o.firestoreClient != nil {
		repositories.CaseRepository = NewFirestoreCaseRepository(o.firestoreClient)
	}
	if o.authClient != nil {
		repositories.SessionRepository = NewFirebaseSessionRepository(o.authClient)
	}
	return repositories
}
