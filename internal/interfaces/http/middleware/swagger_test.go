package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serveDocs(cfg SwaggerConfig, remoteAddr string) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/swagger/*any", SwaggerProtection(cfg), func(c *gin.Context) {
		c.String(http.StatusOK, "docs")
	})
	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSwaggerProtection(t *testing.T) {
	tests := []struct {
		name   string
		cfg    SwaggerConfig
		remote string
		status int
	}{
		{"disabled hides the docs", SwaggerConfig{Enabled: false}, "10.0.0.5:4000", http.StatusNotFound},
		{"empty allow list admits everyone", SwaggerConfig{Enabled: true}, "203.0.113.9:4000", http.StatusOK},
		{"exact ip match", SwaggerConfig{Enabled: true, AllowedIPs: []string{"10.0.0.5"}}, "10.0.0.5:4000", http.StatusOK},
		{"cidr match", SwaggerConfig{Enabled: true, AllowedIPs: []string{"192.168.0.0/16"}}, "192.168.44.2:4000", http.StatusOK},
		{"outside the list", SwaggerConfig{Enabled: true, AllowedIPs: []string{"10.0.0.5", "192.168.0.0/16"}}, "203.0.113.9:4000", http.StatusForbidden},
		{"malformed entries are ignored", SwaggerConfig{Enabled: true, AllowedIPs: []string{"not-an-ip", "10.0.0.0/33", "10.0.0.5"}}, "10.0.0.6:4000", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serveDocs(tt.cfg, tt.remote)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "docs", w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"success":false`)
			}
		})
	}
}
