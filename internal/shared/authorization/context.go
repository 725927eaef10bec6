package authorization

import "github.com/gin-gonic/gin"

const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyPrincipal = "principal"
)

// PrincipalFromContext returns the principal stored by the session middleware.
func PrincipalFromContext(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(ContextKeyPrincipal)
	if !exists {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok && !p.IsZero()
}
