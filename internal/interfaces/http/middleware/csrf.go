package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deskhub/deskhub/internal/shared/constants"
	"github.com/deskhub/deskhub/internal/shared/utils"
)

// csrfExemptPaths are the unauthenticated auth endpoints. Logout is exempt
// because the csrf cookie may expire together with the access token.
var csrfExemptPaths = map[string]struct{}{
	"/api/auth/login":           {},
	"/api/auth/register":        {},
	"/api/auth/logout":          {},
	"/api/auth/forgot-password": {},
	"/api/auth/reset-password":  {},
}

// CSRF applies the double submit cookie check to mutating requests that
// authenticate with the access_token cookie: the csrf_token cookie must match
// the X-CSRF-Token header. Requests carrying an Authorization header are not
// sent by browsers on their own and skip the check.
func CSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isSafeMethod(c.Request.Method) {
			c.Next()
			return
		}
		if _, ok := csrfExemptPaths[c.Request.URL.Path]; ok {
			c.Next()
			return
		}
		if c.GetHeader(constants.HeaderAuthorization) != "" {
			c.Next()
			return
		}
		if session, err := c.Cookie(utils.AccessTokenCookie); err != nil || session == "" {
			c.Next()
			return
		}

		cookieToken, err := c.Cookie(utils.CSRFTokenCookie)
		if err != nil || cookieToken == "" {
			utils.ErrorResponse(c, http.StatusForbidden, "missing CSRF token")
			c.Abort()
			return
		}

		headerToken := c.GetHeader(utils.CSRFTokenHeader)
		if headerToken == "" {
			utils.ErrorResponse(c, http.StatusForbidden, "missing CSRF token header")
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(cookieToken), []byte(headerToken)) != 1 {
			utils.ErrorResponse(c, http.StatusForbidden, "invalid CSRF token")
			c.Abort()
			return
		}

		c.Next()
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}
