package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

// UserIDHeader carries the subject verified by the upstream auth gateway.
const UserIDHeader = "X-User-ID"

const userIDKey = "user_id"

// RequireUser rejects requests without a usable caller identity.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(UserIDHeader))

		userID, err := domain.UserIDFromString(raw)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "request without valid user identity",
				"path", c.Request.URL.Path,
			)

			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "unauthorized",
				Message: "missing or invalid " + UserIDHeader + " header",
			})

			return
		}

		c.Set(userIDKey, userID.String())
		c.Next()
	}
}

func userID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
