package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/assetledger/backend/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error { return p.err }

func systemEngine(h *SystemHandler) *gin.Engine {
	r := gin.New()
	r.GET("/health", h.Health)
	r.GET("/ping", h.Ping)
	r.GET("/system/info", h.GetSystemInfo)
	return r
}

func decodeHealth(t *testing.T, body []byte) HealthResponse {
	t.Helper()
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestSystemHandler_Health(t *testing.T) {
	down := errors.New("dial tcp: connection refused")

	tests := []struct {
		name     string
		database Pinger
		cache    Pinger
		status   int
		want     string
		cacheOut string
	}{
		{"all up", fakePinger{}, fakePinger{}, http.StatusOK, "healthy", "ok"},
		{"no cache configured", fakePinger{}, nil, http.StatusOK, "healthy", ""},
		{"cache down", fakePinger{}, fakePinger{err: down}, http.StatusOK, "degraded", "error"},
		{"database down", fakePinger{err: down}, fakePinger{}, http.StatusServiceUnavailable, "unhealthy", "ok"},
		{"both down", fakePinger{err: down}, fakePinger{err: down}, http.StatusServiceUnavailable, "unhealthy", "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSystemHandler("asset-ledger", "1.2.3", tt.database, tt.cache)
			w := testutil.PerformRequest(t, systemEngine(h), http.MethodGet, "/health", nil)

			assert.Equal(t, tt.status, w.Code)
			resp := decodeHealth(t, w.Body.Bytes())
			assert.Equal(t, tt.want, resp.Status)
			assert.Equal(t, tt.cacheOut, resp.Cache)
			assert.NotEmpty(t, resp.Time)
		})
	}
}

func TestSystemHandler_PingAndInfo(t *testing.T) {
	h := NewSystemHandler("asset-ledger", "1.2.3", fakePinger{}, nil)
	r := systemEngine(h)

	w := testutil.PerformRequest(t, r, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	pong := testutil.DecodeData[PingResponse](t, w)
	assert.Equal(t, "pong", pong.Message)

	w = testutil.PerformRequest(t, r, http.MethodGet, "/system/info", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	info := testutil.DecodeData[SystemInfoResponse](t, w)
	assert.Equal(t, "asset-ledger", info.Name)
	assert.Equal(t, "1.2.3", info.Version)
	assert.NotEmpty(t, info.GoVersion)
}
