package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/caseshowcase/showcase-backend/utils"
)

// serveUntilSignal runs the server until SIGINT or SIGTERM, then shuts it down gracefully.
func serveUntilSignal(ctx context.Context, server *http.Server, name string) error {
	logger := utils.LoggerFromContext(ctx)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting "+name, slog.String("addr", server.Addr))
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			utils.LogAndReportSentryError(ctx, errors.Wrapf(err, "Error while serving the %s", name))
			stop()
		}
		logger.InfoContext(ctx, name+" returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.LogAndReportSentryError(
			ctx,
			errors.Wrapf(err, "Error while shutting down the %s", name),
		)
		return err
	}
	return nil
}
