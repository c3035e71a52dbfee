package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iosrepair/board-repair-manager/internal/middleware"
	"github.com/iosrepair/board-repair-manager/internal/model"
	"github.com/iosrepair/board-repair-manager/internal/session"
	"github.com/iosrepair/board-repair-manager/pkg/jwtutil"
	"github.com/iosrepair/board-repair-manager/pkg/logger"
	"github.com/iosrepair/board-repair-manager/prometheus"
)

// AuthHandler serves login, registration, logout and the profile of the signed-in owner.
type AuthHandler struct {
	Sessions *session.Manager
	JWT      *jwtutil.JWTUtil
}

// Login opens a session for any non-empty email and password.
func (h *AuthHandler) Login(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.LoginCounter.Inc()

	var req model.Credentials
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	s, err := h.Sessions.Login(c.Request().Context(), req)
	if err != nil {
		return h.authFailure(c, "login", "Erro no login", err)
	}

	user, _ := s.User()
	resp, err := h.sessionResponse(s, user)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		h.Sessions.Logout(s.ID)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}
	prometheus.SetActiveSessions(h.Sessions.Len())

	log.Info("User logged in",
		zap.String("email", user.Email),
		zap.String("user_id", user.ID),
		zap.String("session_id", s.ID))

	resp["message"] = "Login realizado com sucesso!"
	resp["description"] = "Bem-vindo(a), " + user.StoreName
	return c.JSON(http.StatusOK, resp)
}

// Register opens a session for a newly registered store owner.
func (h *AuthHandler) Register(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RegisterCounter.Inc()

	var req model.Registration
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse registration request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	s, err := h.Sessions.Register(c.Request().Context(), req)
	if err != nil {
		return h.authFailure(c, "register", "Erro no cadastro", err)
	}

	user, _ := s.User()
	resp, err := h.sessionResponse(s, user)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		h.Sessions.Logout(s.ID)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}
	prometheus.SetActiveSessions(h.Sessions.Len())

	log.Info("User registered",
		zap.String("email", user.Email),
		zap.String("user_id", user.ID),
		zap.String("store_name", user.StoreName))

	resp["message"] = "Cadastro realizado com sucesso!"
	resp["description"] = "Um email de confirmação foi enviado para você."
	return c.JSON(http.StatusCreated, resp)
}

// Logout closes the caller's session. It always succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.LogoutCounter.Inc()

	if s, ok := middleware.SessionFromContext(c); ok {
		h.Sessions.Logout(s.ID)
		prometheus.SetActiveSessions(h.Sessions.Len())
		log.Info("User logged out")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":     "Logout realizado",
		"description": "Até logo!",
	})
}

// GetProfile returns the signed-in store owner.
func (h *AuthHandler) GetProfile(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) sessionResponse(s *session.Session, user model.User) (echo.Map, error) {
	token, expiresAt, err := h.JWT.GenerateToken(s.ID, user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return echo.Map{
		"token":      token,
		"expires_at": expiresAt.UTC().Format(time.RFC3339),
		"user":       user,
	}, nil
}

func (h *AuthHandler) authFailure(c echo.Context, operation, title string, err error) error {
	log := logger.FromEcho(c)

	var ve *model.ValidationError
	switch {
	case errors.As(err, &ve):
		log.Warn("Rejected "+operation+" draft", zap.String("field", ve.Field), zap.String("reason", ve.Message))
		prometheus.RecordValidationError(operation, ve.Field)
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":       title,
			"description": ve.Message,
			"field":       ve.Field,
		})
	case errors.Is(err, session.ErrAlreadyAuthenticated), errors.Is(err, session.ErrActionPending):
		log.Warn("Session action refused", zap.String("operation", operation), zap.Error(err))
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	default:
		log.Error("Session action failed", zap.String("operation", operation), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": title})
	}
}

func currentUser(c echo.Context) (model.User, bool) {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		return model.User{}, false
	}
	return s.User()
}
