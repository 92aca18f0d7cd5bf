package infra

import (
	"context"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/cockroachdb/errors"
)

type FirebaseConfig struct {
	ProjectId     string
	StorageBucket string
}

// InitializeFirebase creates the Firebase Admin app. Emulators are picked up by the SDK
// from FIREBASE_AUTH_EMULATOR_HOST, FIRESTORE_EMULATOR_HOST and STORAGE_EMULATOR_HOST.
func InitializeFirebase(ctx context.Context, config FirebaseConfig) *firebase.App {
	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     config.ProjectId,
		StorageBucket: config.StorageBucket,
	})
	if err != nil {
		panic(errors.Wrap(err, "error initializing app"))
	}
	return app
}

func InitializeFirebaseAuth(ctx context.Context, app *firebase.App) *auth.Client {
	client, err := app.Auth(ctx)
	if err != nil {
		panic(errors.Wrap(err, "error getting Auth client"))
	}
	return client
}

func InitializeFirestore(ctx context.Context, app *firebase.App) *firestore.Client {
	client, err := app.Firestore(ctx)
	if err != nil {
		panic(errors.Wrap(err, "error getting Firestore client"))
	}
	return client
}
