package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/deskhub/deskhub/internal/shared/errors"
)

// Response bodies are part of the API contract; refresh the fixtures with
// go test ./internal/shared/utils -update
func newGolden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestErrorResponseWithError_Golden(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation_error", apperrors.NewValidationError("Passwords do not match."), http.StatusBadRequest},
		{"not_found_with_details", apperrors.NewNotFoundError("ticket not found", "id 42"), http.StatusNotFound},
		{"internal_hides_details", apperrors.NewInternalError("failed to update user", "connection refused"), http.StatusInternalServerError},
		{"plain_error", errors.New("dial tcp 10.0.0.5:5432: i/o timeout"), http.StatusInternalServerError},
		{"rate_limited", apperrors.NewRateLimitedError("Too many requests. Please try again later."), http.StatusTooManyRequests},
	}

	g := newGolden(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			ErrorResponseWithError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			g.Assert(t, tt.name, w.Body.Bytes())
		})
	}
}

func TestListSuccessResponse_Golden(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ListSuccessResponse(c, []string{"VPN drops", "Printer jam"}, 5, 2, 2)

	assert.Equal(t, http.StatusOK, w.Code)
	newGolden(t).Assert(t, "list_page", w.Body.Bytes())
}
