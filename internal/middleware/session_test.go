package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sialkot-shop/internal/session"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newSessionHandler(t *testing.T) (http.Handler, *session.Store, *[]string) {
	t.Helper()
	store := session.NewStore(time.Hour, zap.NewNop())
	cookies := NewCookieStore("test-secret-test-secret-test-sec", time.Hour, false)

	var seen []string
	handler := SessionMiddleware(cookies, store, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := GetSession(r.Context())
		require.True(t, ok)
		seen = append(seen, sess.ID)
		w.WriteHeader(http.StatusNoContent)
	}))
	return handler, store, &seen
}

func TestSessionMiddleware_IssuesAndReusesCookie(t *testing.T) {
	handler, store, seen := newSessionHandler(t)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/cart", nil))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest("GET", "/api/cart", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Empty(t, w.Result().Cookies())
	require.Len(t, *seen, 2)
	assert.Equal(t, (*seen)[0], (*seen)[1])
	assert.Equal(t, 1, store.Len())
}

func TestSessionMiddleware_ReplacesTamperedCookie(t *testing.T) {
	handler, store, seen := newSessionHandler(t)

	req := httptest.NewRequest("GET", "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "forged"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.Len(t, w.Result().Cookies(), 1)
	require.Len(t, *seen, 1)
	assert.Equal(t, 1, store.Len())
}

func TestSessionMiddleware_RestartsEvictedSession(t *testing.T) {
	store := session.NewStore(time.Nanosecond, zap.NewNop())
	cookies := NewCookieStore("test-secret-test-secret-test-sec", time.Hour, false)

	var ids []string
	handler := SessionMiddleware(cookies, store, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := GetSession(r.Context())
		ids = append(ids, sess.ID)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	cookie := w.Result().Cookies()[0]

	time.Sleep(time.Millisecond)
	store.EvictIdle()

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
	assert.Len(t, w.Result().Cookies(), 1)
}

func TestGetSession_Missing(t *testing.T) {
	_, ok := GetSession(httptest.NewRequest("GET", "/", nil).Context())
	assert.False(t, ok)
}

func TestLoggingMiddleware_LevelFollowsStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	for _, status := range []int{http.StatusOK, http.StatusNotFound, http.StatusBadGateway} {
		status := status
		handler := middleware.RequestID(LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/products", nil))
	}

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.NotEmpty(t, entries[0].ContextMap()["request_id"])
}
