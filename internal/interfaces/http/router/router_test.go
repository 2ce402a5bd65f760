package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func text(body string) gin.HandlerFunc {
	return func(c *gin.Context) { c.String(http.StatusOK, body) }
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())
	assert.Equal(t, "/api/v1", r.BasePath())

	r = NewRouter(gin.New(), WithAPIVersion("v2"))
	assert.Equal(t, "/api/v2", r.BasePath())
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	var seen []string
	r := NewRouter(engine, WithMiddleware(func(c *gin.Context) {
		seen = append(seen, c.FullPath())
		c.Next()
	}))
	engine.GET("/health", text("ok"))

	r.Register(
		NewDomainGroup("members", "/members").GET("/:id", text("member")),
		NewDomainGroup("invoices", "/invoices").POST("/:id/void", text("void")),
	)
	r.Setup()

	w := serve(engine, http.MethodGet, "/api/v1/members/42")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "member", w.Body.String())

	w = serve(engine, http.MethodPost, "/api/v1/invoices/7/void")
	assert.Equal(t, "void", w.Body.String())

	w = serve(engine, http.MethodGet, "/health")
	assert.Equal(t, "ok", w.Body.String())

	assert.Equal(t, []string{"/api/v1/members/:id", "/api/v1/invoices/:id/void"}, seen,
		"API middleware must not run for routes outside the API group")
}

func TestDomainGroup(t *testing.T) {
	t.Run("name and prefix", func(t *testing.T) {
		g := NewDomainGroup("payments", "/payments")
		assert.Equal(t, "payments", g.Name())
		assert.Equal(t, "/payments", g.Prefix())
	})

	t.Run("methods and group middleware", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("investments", "/investments").
			Use(func(c *gin.Context) {
				c.Header("X-Group", "investments")
				c.Next()
			}).
			POST("", text("create")).
			GET("/:id", text("get")).
			PUT("/:id", text("put")).
			DELETE("/:id", text("delete"))
		g.RegisterRoutes(engine.Group("/api/v1"))

		for method, want := range map[string]string{
			http.MethodGet:    "get",
			http.MethodPut:    "put",
			http.MethodDelete: "delete",
		} {
			w := serve(engine, method, "/api/v1/investments/1")
			assert.Equal(t, want, w.Body.String(), method)
			assert.Equal(t, "investments", w.Header().Get("X-Group"))
		}
		w := serve(engine, http.MethodPost, "/api/v1/investments")
		assert.Equal(t, "create", w.Body.String())
	})

	t.Run("subgroups nest under the parent prefix", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("investments", "/investments")
		g.Group("leases", "/:id/leases").GET("", text("leases"))
		g.RegisterRoutes(engine.Group("/api/v1"))

		w := serve(engine, http.MethodGet, "/api/v1/investments/9/leases")
		assert.Equal(t, "leases", w.Body.String())

		routes := g.Routes("/api/v1")
		require.Len(t, routes, 1)
		assert.Equal(t, RouteInfo{Method: http.MethodGet, Path: "/api/v1/investments/:id/leases", Group: "leases"}, routes[0])
	})
}

func TestLedgerGroups_RegisterWithoutConflicts(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	var groups []*DomainGroup
	require.NotPanics(t, func() {
		groups = r.RegisterLedger(Handlers{})
		r.Setup()
	})

	var listed []RouteInfo
	for _, g := range groups {
		listed = append(listed, g.Routes(r.BasePath())...)
	}
	assert.Len(t, engine.Routes(), len(listed))

	registered := make(map[string]bool)
	for _, route := range engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}
	for _, want := range []string{
		"POST /api/v1/members",
		"GET /api/v1/members/:id/fee-records",
		"POST /api/v1/investments/:id/payments/range",
		"GET /api/v1/investments/:id/payments/summary",
		"POST /api/v1/payments/:id/profits",
		"POST /api/v1/payments/:id/invoice",
		"GET /api/v1/invoices/:id/render",
		"POST /api/v1/leases/:id/terminate",
		"POST /api/v1/sweeps/run",
		"GET /api/v1/system/info",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}
