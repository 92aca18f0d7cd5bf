package infra

import (
	"context"
	"net/http"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const metadataHost = "http://metadata.google.internal"

func TestResolveProjectId(t *testing.T) {
	ctx := context.Background()

	t.Run("configured project id wins", func(t *testing.T) {
		defer gock.Off()
		PROJECT_ID_CACHE.Purge()

		assert.Equal(t, "configured", GcpConfig{ProjectId: "configured"}.ResolveProjectId(ctx))
		assert.False(t, gock.HasUnmatchedRequest())
	})

	t.Run("metadata server, then cache", func(t *testing.T) {
		defer gock.Off()
		PROJECT_ID_CACHE.Purge()

		gock.New(metadataHost).
			Get("/computeMetadata/v1/project/project-id").
			MatchHeader("Metadata-Flavor", "Google").
			Times(1).
			Reply(http.StatusOK).
			BodyString("from-metadata")

		assert.Equal(t, "from-metadata", GcpConfig{}.ResolveProjectId(ctx))
		assert.Equal(t, "from-metadata", GcpConfig{}.ResolveProjectId(ctx))
		assert.True(t, gock.IsDone())
	})

	t.Run("retries unexpected status", func(t *testing.T) {
		defer gock.Off()
		PROJECT_ID_CACHE.Purge()

		gock.New(metadataHost).
			Get("/computeMetadata/v1/project/project-id").
			Times(3).
			Reply(http.StatusServiceUnavailable)

		_, err := GetProjectId(ctx)
		require.Error(t, err)
		assert.True(t, gock.IsDone())
	})
}
