package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasktracker/internal/adapter/http/middleware"
	"tasktracker/internal/core/domain"
	"tasktracker/pkg/apierrors"
)

// respondError maps domain errors onto the API error taxonomy. Unknown
// errors are storage or connectivity failures; their message is surfaced
// in the JSON body per the API contract.
func respondError(c *gin.Context, err error) {
	lang := middleware.GetLang(c)

	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang))
	case errors.Is(err, domain.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang))
	case errors.Is(err, domain.ErrDuplicateIdentifier):
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgDuplicateIdentifier, lang))
	case errors.Is(err, domain.ErrMissingArgument):
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgMissingArgument, lang))
	default:
		zap.L().Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.JsonErr{
			ErrDetails: apierrors.Err{Code: http.StatusInternalServerError, Message: err.Error()},
		})
	}
}

func respondInvalidPayload(c *gin.Context) {
	lang := middleware.GetLang(c)
	c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang))
}

func respondInvalidID(c *gin.Context) {
	lang := middleware.GetLang(c)
	c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang))
}
