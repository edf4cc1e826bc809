package middleware

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
	"github.com/polkiloo/atelier/internal/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type authenticatorFunc func(ctx context.Context, token string) (model.Principal, error)

func (f authenticatorFunc) Authenticate(ctx context.Context, token string) (model.Principal, error) {
	return f(ctx, token)
}

func tokenAuthenticator(valid string, principal model.Principal) authenticatorFunc {
	return func(_ context.Context, token string) (model.Principal, error) {
		switch token {
		case "":
			return model.Principal{}, fmt.Errorf("%w: No token, authorization denied", domainErrors.ErrUnauthorized)
		case valid:
			return principal, nil
		default:
			return model.Principal{}, fmt.Errorf("%w: Token not valid", domainErrors.ErrUnauthorized)
		}
	}
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAuthRequired(t *testing.T) {
	user := model.Principal{UserID: "u-1", Username: "mira", Role: model.RoleUser}

	var stored model.Principal
	router := gin.New()
	router.Use(AuthRequired(tokenAuthenticator("good", user)))
	router.GET("/", func(c *gin.Context) {
		stored, _ = PrincipalFrom(c)
		c.Status(http.StatusNoContent)
	})

	resp := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.JSONEq(t, `{"message":"No token, authorization denied"}`, resp.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad")
	resp = serve(router, req)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.JSONEq(t, `{"message":"Token not valid"}`, resp.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	resp = serve(router, req)
	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, user, stored)

	stored = model.Principal{}
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: authCookieName, Value: "good"})
	resp = serve(router, req)
	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, user, stored)
}

func TestAuthRequiredInternalError(t *testing.T) {
	router := gin.New()
	router.Use(AuthRequired(authenticatorFunc(func(context.Context, string) (model.Principal, error) {
		return model.Principal{}, context.DeadlineExceeded
	})))
	router.GET("/", func(c *gin.Context) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := serve(router, req)
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"message":"Server error"}`, resp.Body.String())
}

func TestAdminOnly(t *testing.T) {
	admin := model.Principal{UserID: "a-1", Role: model.RoleAdmin}
	user := model.Principal{UserID: "u-1", Role: model.RoleUser}

	cases := []struct {
		name      string
		principal model.Principal
		want      int
	}{
		{name: "admin", principal: admin, want: http.StatusOK},
		{name: "user", principal: user, want: http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.Use(AuthRequired(tokenAuthenticator("tok", tc.principal)), AdminOnly())
			router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer tok")
			resp := serve(router, req)
			assert.Equal(t, tc.want, resp.Code)
			if tc.want == http.StatusForbidden {
				assert.JSONEq(t, `{"message":"Access denied"}`, resp.Body.String())
			}
		})
	}

	router := gin.New()
	router.Use(AdminOnly())
	router.GET("/", func(c *gin.Context) {})
	assert.Equal(t, http.StatusForbidden, serve(router, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}

func TestSetAuthCookie(t *testing.T) {
	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		SetAuthCookie(c, "token", 3600)
	})

	resp := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "Bearer token", resp.Header().Get("Authorization"))
	cookies := resp.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, authCookieName, cookies[0].Name)
	assert.Equal(t, "token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestDecompressRequest(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(`{"hello":"world"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	router := gin.New()
	router.Use(DecompressRequest(1024))
	router.POST("/", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(body))
	})

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	resp := serve(router, req)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, `{"hello":"world"}`, resp.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	resp = serve(router, req)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestDecompressRequestCapsInflatedBody(t *testing.T) {
	const limit = 4096
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(make([]byte, 2<<20))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.Less(t, buf.Len(), limit)

	var read int64
	var readErr error
	router := gin.New()
	router.Use(LimitBody(limit), DecompressRequest(limit))
	router.POST("/", func(c *gin.Context) {
		read, readErr = io.Copy(io.Discard, c.Request.Body)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	serve(router, req)

	var tooLarge *http.MaxBytesError
	require.True(t, errors.As(readErr, &tooLarge), "unexpected error %v", readErr)
	assert.Equal(t, int64(limit), tooLarge.Limit)
	assert.LessOrEqual(t, read, int64(limit))
}

func TestLimitBody(t *testing.T) {
	router := gin.New()
	router.Use(LimitBody(8))
	router.POST("/", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	resp := serve(router, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("small")))
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = serve(router, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("definitely too large")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.Code)
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	router := gin.New()
	router.Use(RequestLogger(zap.New(core)))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/fail", func(c *gin.Context) {
		_ = c.Error(fmt.Errorf("boom"))
		c.Status(http.StatusInternalServerError)
	})

	serve(router, httptest.NewRequest(http.MethodGet, "/ok", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/fail", nil))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, []interface{}{"boom"}, entries[1].ContextMap()["errors"])
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New()
	router := gin.New()
	router.Use(Metrics(m))
	router.GET("/artworks/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(router, httptest.NewRequest(http.MethodGet, "/artworks/1", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/artworks/2", nil))

	assert.Equal(t, 1, testutil.CollectAndCount(m.Registry(), "atelier_http_requests_total"))
}

func TestRateLimiter(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	limiter := NewRateLimiter(0.001, 2, zap.New(core))

	router := gin.New()
	router.Use(limiter.Handler())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		codes = append(codes, serve(router, req).Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, 1, logs.Len())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	assert.Equal(t, http.StatusOK, serve(router, req).Code)
}

func TestRateLimiterSweep(t *testing.T) {
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(1, 1, zap.NewNop())
	limiter.now = func() time.Time { return now }

	limiter.limiter("old")
	now = now.Add(DefaultLimiterIdleTTL + time.Second)
	limiter.limiter("fresh")

	assert.Equal(t, 1, limiter.Sweep())
	assert.Len(t, limiter.visitors, 1)
	assert.Contains(t, limiter.visitors, "fresh")
}

func TestRateLimiterStartStop(t *testing.T) {
	limiter := NewRateLimiter(1, 1, zap.NewNop())
	require.NoError(t, limiter.Stop(context.Background()))

	require.NoError(t, limiter.Start(context.Background()))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, limiter.Stop(ctx))
}
