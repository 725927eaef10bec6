package middleware

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/deskhub/deskhub/internal/domain/user"
	"github.com/deskhub/deskhub/internal/infrastructure/auth"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/constants"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
	"github.com/deskhub/deskhub/internal/shared/utils"
)

const accessTokenName = "access token"

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type ProfileLoader interface {
	GetByID(ctx context.Context, id uint) (*user.User, error)
}

// AuthMiddleware resolves the request principal. The profile is loaded on
// every request and its role wins over the one inside the token, so role
// changes and deactivation take effect immediately.
type AuthMiddleware struct {
	jwtService TokenVerifier
	profiles   ProfileLoader
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService TokenVerifier, profiles ProfileLoader, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		profiles:   profiles,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractToken(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			authErr := errors.NewTokenInvalidError(accessTokenName)
			if stderrors.Is(err, jwt.ErrTokenExpired) {
				authErr = errors.NewTokenExpiredError(accessTokenName)
			}
			if errors.ShouldLogAuthError(authErr) {
				m.logger.Warnw("failed to verify token", "error", err)
			}
			utils.ErrorResponseWithError(c, authErr)
			c.Abort()
			return
		}
		userID, err := claims.UserID()
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewTokenInvalidError(accessTokenName))
			c.Abort()
			return
		}

		profile, err := m.profiles.GetByID(c.Request.Context(), userID)
		if err != nil {
			m.logger.Errorw("failed to load session profile", "error", err, "user_id", userID)
			utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
			c.Abort()
			return
		}
		if profile == nil || !profile.IsActive() {
			m.logger.Warnw("session rejected", "user_id", userID, "found", profile != nil)
			utils.ErrorResponse(c, http.StatusUnauthorized, "account is unavailable")
			c.Abort()
			return
		}

		principal := authorization.NewPrincipal(profile.ID(), profile.Role())
		c.Set(authorization.ContextKeyPrincipal, principal)
		c.Set(authorization.ContextKeyUserID, principal.UserID)
		c.Set(authorization.ContextKeyUserRole, principal.Role.String())

		c.Next()
	}
}

// extractToken prefers the Authorization header and falls back to the
// access_token cookie.
func extractToken(c *gin.Context) (string, bool) {
	if header := c.GetHeader(constants.HeaderAuthorization); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return "", false
		}
		return strings.TrimSpace(parts[1]), true
	}
	if cookie, err := c.Cookie(utils.AccessTokenCookie); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}
