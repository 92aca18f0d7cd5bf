package cmd

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/caseshowcase/showcase-backend/api"
	"github.com/caseshowcase/showcase-backend/infra"
	"github.com/caseshowcase/showcase-backend/models"
	"github.com/caseshowcase/showcase-backend/utils"
)

type CompiledConfig struct {
	Version string
}

type commonConfig struct {
	loggingFormat string
	sentryDsn     string
}

type CleanupConfig struct {
	CaseImagesBucketUrl string
	ImageUrlFormat      models.ImageUrlFormat
}

func (config CleanupConfig) Validate() error {
	if _, err := models.ImageUrlFormatFrom(string(config.ImageUrlFormat)); err != nil {
		return errors.Wrap(err, "CASE_IMAGES_URL_FORMAT")
	}
	return nil
}

// This is where we read the environment variables and set up the configuration for the application.
func readApiConfig(appName string) api.Configuration {
	return api.Configuration{
		Env:                 utils.GetEnv("ENV", "development"),
		AppName:             appName,
		Port:                utils.GetRequiredEnv[string]("PORT"),
		SiteUrl:             utils.GetEnv("SITE_URL", ""),
		RequestLoggingLevel: utils.GetEnv("REQUEST_LOGGING_LEVEL", "all"),
		SessionCookieSecure: utils.GetEnv("SESSION_COOKIE_SECURE", true),
		DefaultTimeout:      time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 30)) * time.Second,
		FirebaseConfig: api.FirebaseConfig{
			EmulatorHost: utils.GetEnv("FIREBASE_AUTH_EMULATOR_HOST", ""),
			ProjectId:    utils.GetEnv("GOOGLE_CLOUD_PROJECT", ""),
			ApiKey:       utils.GetEnv("FIREBASE_WEB_API_KEY", ""),
			AuthDomain:   utils.GetEnv("FIREBASE_AUTH_DOMAIN", ""),
		},
	}
}

func readCommonConfig() commonConfig {
	return commonConfig{
		loggingFormat: utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:     utils.GetEnv("SENTRY_DSN", ""),
	}
}

func readGcpConfig() infra.GcpConfig {
	return infra.GcpConfig{
		ProjectId: utils.GetEnv("GOOGLE_CLOUD_PROJECT", ""),
	}
}

func readFirebaseConfig(projectId string) infra.FirebaseConfig {
	return infra.FirebaseConfig{
		ProjectId:     projectId,
		StorageBucket: utils.GetEnv("FIREBASE_STORAGE_BUCKET", ""),
	}
}

func readCleanupConfig() CleanupConfig {
	return CleanupConfig{
		CaseImagesBucketUrl: utils.GetEnv("CASE_IMAGES_BUCKET_URL", ""),
		ImageUrlFormat:      models.ImageUrlFormat(utils.GetEnv("CASE_IMAGES_URL_FORMAT", string(models.ImageUrlFormatFirebase))),
	}
}
