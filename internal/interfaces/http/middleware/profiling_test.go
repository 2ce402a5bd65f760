package middleware

import (
	"net/http"
	"net/http/httptest"
	"runtime/pprof"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestProfilingWithConfig_LabelsRequestContext(t *testing.T) {
	router := gin.New()
	router.Use(ProfilingWithConfig(DefaultProfilingConfig()))

	var route, resource string
	router.POST("/api/v1/payments/:id/record", func(c *gin.Context) {
		route, _ = pprof.Label(c.Request.Context(), "route")
		resource, _ = pprof.Label(c.Request.Context(), "resource")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/payments/p-1/record", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/api/v1/payments/:id/record", route)
	assert.Equal(t, "payments", resource)
}

func TestProfilingWithConfig_SkipAndDisabled(t *testing.T) {
	for _, mw := range []gin.HandlerFunc{
		ProfilingWithConfig(DefaultProfilingConfig()),
		ProfilingWithConfig(ProfilingConfig{Enabled: false}),
	} {
		router := gin.New()
		router.Use(mw)

		labelled := true
		router.GET("/health", func(c *gin.Context) {
			_, labelled = pprof.Label(c.Request.Context(), "route")
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, labelled)
	}
}

func TestResourceFromRoute(t *testing.T) {
	tests := map[string]string{
		"/api/v1/investments/:id/leases": "investments",
		"/api/v2/sweeps/run":             "sweeps",
		"/health":                        "health",
		"":                               "unknown",
		"/api/v1/:id":                    "unknown",
	}
	for route, want := range tests {
		assert.Equal(t, want, resourceFromRoute(route), route)
	}
}

func TestIsVersionSegment(t *testing.T) {
	assert.True(t, isVersionSegment("v1"))
	assert.True(t, isVersionSegment("V12"))
	assert.False(t, isVersionSegment("v"))
	assert.False(t, isVersionSegment("values"))
}
