package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// SwaggerConfig controls who may read the API documentation
type SwaggerConfig struct {
	Enabled    bool
	AllowedIPs []string // single IPs or CIDR ranges, empty allows every client
}

// SwaggerProtection guards the /swagger routes. Disabled docs answer 404 so
// production hides that they exist; clients outside the allow list get 403.
func SwaggerProtection(cfg SwaggerConfig) gin.HandlerFunc {
	allow := parseAllowList(cfg.AllowedIPs)

	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponse(
				shared.CodeNotFound, "API documentation is not available",
				GetRequestID(c), shared.CategoryNotFound))
			return
		}
		if !allow.permits(net.ParseIP(c.ClientIP())) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				dto.ErrCodeForbidden, "Access to API documentation is restricted",
				GetRequestID(c), shared.CategoryValidation))
			return
		}
		c.Next()
	}
}

type allowList struct {
	ips  []net.IP
	nets []*net.IPNet
}

// parseAllowList skips entries that are neither an IP nor a CIDR
func parseAllowList(entries []string) allowList {
	var l allowList
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if strings.Contains(e, "/") {
			if _, n, err := net.ParseCIDR(e); err == nil {
				l.nets = append(l.nets, n)
			}
			continue
		}
		if ip := net.ParseIP(e); ip != nil {
			l.ips = append(l.ips, ip)
		}
	}
	return l
}

func (l allowList) permits(ip net.IP) bool {
	if len(l.ips) == 0 && len(l.nets) == 0 {
		return true
	}
	if ip == nil {
		return false
	}
	for _, allowed := range l.ips {
		if allowed.Equal(ip) {
			return true
		}
	}
	for _, n := range l.nets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}
