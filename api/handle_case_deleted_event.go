package api

import (
	"context"
	"log/slog"
	"net/http"

	cehttp "github.com/cloudevents/sdk-go/v2/protocol/http"
	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/caseshowcase/showcase-backend/models"
	"github.com/caseshowcase/showcase-backend/usecases/cleanup"
	"github.com/caseshowcase/showcase-backend/utils"
)

type caseImagesCleaner interface {
	DeleteCaseImages(ctx context.Context, deleted models.DeletedCase) models.CleanupReport
}

// handleCaseDeletedEvent receives the Firestore document.deleted events of the cases
// collection. Any well formed CloudEvent is acknowledged, failures are only logged so that
// the event is not redelivered.
func handleCaseDeletedEvent(cleaner caseImagesCleaner) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		event, err := cehttp.NewEventFromHTTPRequest(c.Request)
		if err != nil {
			presentError(c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		logger := utils.LoggerFromContext(ctx).With(
			slog.String("event_id", event.ID()),
			slog.String("event_type", event.Type()),
		)
		ctx = utils.StoreLoggerInContext(ctx, logger)

		deleted, err := cleanup.DeletedCaseFromEvent(ctx, *event)
		if err != nil {
			utils.MetricCleanupRuns.With(prometheus.Labels{"result": "invalid_event"}).Inc()
			utils.LogAndReportSentryError(ctx, err)
			c.Status(http.StatusNoContent)
			return
		}

		cleaner.DeleteCaseImages(ctx, deleted)
		c.Status(http.StatusNoContent)
	}
}
