package middleware

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deskhub/deskhub/internal/infrastructure/cache"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/constants"
)

type ViewStore interface {
	Get(ctx context.Context, scope, variant string) (*cache.CachedView, bool)
	Set(ctx context.Context, scope, variant string, view cache.CachedView)
}

type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CacheView serves GET responses of scope from the view cache. Entries are
// keyed by principal and request URI; only 200 responses are stored.
func CacheView(store ViewStore, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		principal, _ := authorization.PrincipalFromContext(c)
		variant := fmt.Sprintf("%d|%s|%s", principal.UserID, principal.Role, c.Request.URL.RequestURI())

		if view, ok := store.Get(c.Request.Context(), scope, variant); ok {
			c.Header(constants.HeaderXCache, "HIT")
			c.Data(view.Status, view.ContentType, view.Body)
			c.Abort()
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = recorder
		c.Header(constants.HeaderXCache, "MISS")

		c.Next()

		if recorder.Status() != http.StatusOK || recorder.body.Len() == 0 {
			return
		}
		store.Set(c.Request.Context(), scope, variant, cache.CachedView{
			Status:      http.StatusOK,
			ContentType: recorder.Header().Get(constants.HeaderContentType),
			Body:        bytes.Clone(recorder.body.Bytes()),
		})
	}
}
