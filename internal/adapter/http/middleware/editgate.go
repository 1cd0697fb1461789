package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasktracker/pkg/apierrors"
	"tasktracker/pkg/ipwhitelist"
)

// EditGate rejects mutating requests from addresses outside the whitelist.
// An unconfigured whitelist allows everyone.
func EditGate(whitelist *ipwhitelist.Whitelist) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := ipwhitelist.ClientIP(c.Request)
		if !whitelist.Allowed(ip) {
			zap.L().Warn("edit rejected by whitelist", zap.String("ip", ip), zap.String("path", c.Request.URL.Path))
			lang := GetLang(c)
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				apierrors.CreateError(http.StatusForbidden, apierrors.MsgEditNotAllowed, lang),
			)
			return
		}
		c.Next()
	}
}
