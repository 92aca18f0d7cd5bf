package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/caseshowcase/showcase-backend/models"
	"github.com/caseshowcase/showcase-backend/utils"
)

type errorResponse struct {
	Message string `json:"message"`
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, models.BadParameterError):
		return http.StatusBadRequest
	case errors.Is(err, models.UnAuthorizedError):
		return http.StatusUnauthorized
	case errors.Is(err, models.ForbiddenError):
		return http.StatusForbidden
	case errors.Is(err, models.NotFoundError):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// presentError writes a json error response. It returns false when there is no error.
func presentError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		utils.LogAndReportSentryError(c.Request.Context(), err)
		c.JSON(status, errorResponse{Message: "internal server error"})
		return true
	}

	_ = c.Error(err)
	c.JSON(status, errorResponse{Message: err.Error()})
	return true
}

// presentPageError renders the error page with the status matching the error.
func presentPageError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		utils.LogAndReportSentryError(c.Request.Context(), err)
	} else {
		_ = c.Error(err)
	}
	renderErrorPage(c, status)
	return true
}
