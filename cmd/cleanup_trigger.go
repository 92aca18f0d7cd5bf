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

// RunCleanupTrigger serves the receiver of the Firestore document.deleted events of the
// cases collection, which deletes the images of deleted cases.
func RunCleanupTrigger(config CompiledConfig) error {
	apiConfig := readApiConfig("showcase-cleanup-trigger")
	commonConfig := readCommonConfig()
	cleanupConfig := readCleanupConfig()

	logger := utils.NewLogger(commonConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	if err := cleanupConfig.Validate(); err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	infra.SetupSentry(commonConfig.sentryDsn, apiConfig.Env, config.Version)
	defer sentry.Flush(3 * time.Second)

	projectId := readGcpConfig().ResolveProjectId(ctx)
	app := infra.InitializeFirebase(ctx, readFirebaseConfig(projectId))

	uc := usecases.NewUsecases(repositories.NewRepositories(app),
		usecases.WithCaseImagesBucketUrl(cleanupConfig.CaseImagesBucketUrl),
		usecases.WithImageUrlFormat(cleanupConfig.ImageUrlFormat),
	)
	cleaner, err := uc.NewCaseImagesCleaner()
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	router := api.InitTriggerRouterMiddlewares(ctx, apiConfig)
	server := api.NewTriggerServer(router, apiConfig, cleaner)

	return serveUntilSignal(ctx, server, "cleanup trigger")
}
