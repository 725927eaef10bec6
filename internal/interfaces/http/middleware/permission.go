package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/deskhub/deskhub/internal/application/permission"
	vo "github.com/deskhub/deskhub/internal/domain/permission/valueobjects"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/utils"
)

type PermissionMiddleware struct {
	checker permission.Checker
}

func NewPermissionMiddleware(checker permission.Checker) *PermissionMiddleware {
	return &PermissionMiddleware{checker: checker}
}

// RequirePermission rejects early at the route. Use cases repeat the check.
func (m *PermissionMiddleware) RequirePermission(resource vo.Resource, action vo.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, _ := authorization.PrincipalFromContext(c)
		if err := m.checker.Require(c.Request.Context(), principal, resource, action); err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
