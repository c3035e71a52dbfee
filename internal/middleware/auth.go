package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iosrepair/board-repair-manager/internal/session"
	"github.com/iosrepair/board-repair-manager/pkg/jwtutil"
	"github.com/iosrepair/board-repair-manager/pkg/logger"
)

const (
	sessionKey = "session"
	claimsKey  = "claims"
)

// SessionResolver looks up a live session by id.
type SessionResolver interface {
	Get(id string) (*session.Session, error)
}

// SessionAuthMiddleware validates the bearer token and resolves the session it names.
func SessionAuthMiddleware(jwtUtil *jwtutil.JWTUtil, sessions SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromEcho(c)

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				log.Warn("Missing authorization header")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				log.Warn("Invalid authorization header format")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization format, expected Bearer token"})
			}

			claims, err := jwtUtil.ValidateToken(parts[1])
			if err != nil {
				log.Warn("Invalid or expired token", zap.Error(err))
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}

			s, err := sessions.Get(claims.SessionID)
			if err != nil {
				log.Warn("Session not found", zap.String("session_id", claims.SessionID), zap.Error(err))
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "session expired, please log in again"})
			}

			c.Set(sessionKey, s)
			c.Set(claimsKey, claims)
			c.Set(logger.EchoKey, log.With(zap.String("session_id", s.ID), zap.String("user_id", claims.UserID)))

			return next(c)
		}
	}
}

// SessionFromContext returns the session resolved by SessionAuthMiddleware.
func SessionFromContext(c echo.Context) (*session.Session, bool) {
	s, ok := c.Get(sessionKey).(*session.Session)
	return s, ok
}

// ClaimsFromContext returns the token claims stored by SessionAuthMiddleware.
func ClaimsFromContext(c echo.Context) (*jwtutil.SessionClaims, bool) {
	claims, ok := c.Get(claimsKey).(*jwtutil.SessionClaims)
	return claims, ok
}
