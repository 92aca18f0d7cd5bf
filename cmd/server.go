package cmd

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/caseshowcase/showcase-backend/api"
	"github.com/caseshowcase/showcase-backend/infra"
	"github.com/caseshowcase/showcase-backend/repositories"
	"github.com/caseshowcase/showcase-backend/usecases"
	"github.com/caseshowcase/showcase-backend/utils"
)

func RunServer(config CompiledConfig) error {
	apiConfig := readApiConfig("showcase-site")
	commonConfig := readCommonConfig()
	gcpConfig := readGcpConfig()
	sessionConfig := struct {
		lifetimeMinute int
	}{
		lifetimeMinute: utils.GetEnv("SESSION_LIFETIME_MINUTE", 60*24*5),
	}

	logger := utils.NewLogger(commonConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	infra.SetupSentry(commonConfig.sentryDsn, apiConfig.Env, config.Version)
	defer sentry.Flush(3 * time.Second)

	projectId := gcpConfig.ResolveProjectId(ctx)
	if apiConfig.FirebaseConfig.ProjectId == "" {
		apiConfig.FirebaseConfig.ProjectId = projectId
	}

	app := infra.InitializeFirebase(ctx, readFirebaseConfig(projectId))
	firestoreClient := infra.InitializeFirestore(ctx, app)
	defer firestoreClient.Close()

	repositories := repositories.NewRepositories(app,
		repositories.WithFirestoreClient(firestoreClient),
		repositories.WithAuthClient(infra.InitializeFirebaseAuth(ctx, app)),
	)

	uc := usecases.NewUsecases(repositories,
		usecases.WithSessionLifetime(time.Duration(sessionConfig.lifetimeMinute)*time.Minute),
	)

	sessions := api.NewSessionHandler(uc.NewSessionManager(), apiConfig.SessionCookieSecure)
	router := api.InitRouterMiddlewares(ctx, apiConfig, sessions)
	server := api.NewServer(router, apiConfig, uc, sessions)

	return serveUntilSignal(ctx, server, "server")
}
