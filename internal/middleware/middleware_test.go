package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"

	"github.com/stpnv0/SiPinjam/internal/domain"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type resolverFunc func(ctx context.Context, token string) (domain.Session, error)

func (f resolverFunc) Resolve(ctx context.Context, token string) (domain.Session, error) {
	return f(ctx, token)
}

func sessionRouter(t *testing.T, resolver sessionResolver) *ginext.Engine {
	t.Helper()
	r := ginext.New("test")
	r.Use(RequestID(), Session(resolver, newTestLogger(t)))
	r.GET("/whoami", func(c *ginext.Context) {
		user, ok := SessionFrom(c).User()
		if !ok {
			c.JSON(http.StatusUnauthorized, ginext.H{"user": nil})
			return
		}
		c.JSON(http.StatusOK, ginext.H{"user": user.Name})
	})
	return r
}

func knownToken(_ context.Context, token string) (domain.Session, error) {
	if token == "good" {
		return domain.NewSession(domain.CurrentUser{ID: "u1", Name: "Siti"}), nil
	}
	return domain.NoSession(), nil
}

func TestSession_FromHeader(t *testing.T) {
	r := sessionRouter(t, resolverFunc(knownToken))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(HeaderSessionToken, "good")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Siti")
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
}

func TestSession_FromCookie(t *testing.T) {
	r := sessionRouter(t, resolverFunc(knownToken))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "good"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSession_AnonymousOnMissingOrFailingStore(t *testing.T) {
	failing := resolverFunc(func(context.Context, string) (domain.Session, error) {
		return domain.NoSession(), errors.New("redis down")
	})

	for name, resolver := range map[string]sessionResolver{
		"unknown token": resolverFunc(knownToken),
		"store error":   failing,
	} {
		t.Run(name, func(t *testing.T) {
			r := sessionRouter(t, resolver)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			req.Header.Set(HeaderSessionToken, "bad")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequestID_KeepsIncoming(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())
	r.GET("/", func(c *ginext.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
}

func TestRecovery_ReturnsInternalError(t *testing.T) {
	log := newTestLogger(t)
	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(log), Recovery(log))
	r.GET("/boom", func(c *ginext.Context) { panic("boom") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.Contains(t, w.Body.String(), "req-42")
}
