package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func corsRequest(t *testing.T, mw func(http.Handler) http.Handler, method, origin string) *httptest.ResponseRecorder {
	t.Helper()
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(method, "/api/cart", nil)
	req.Header.Set("Origin", origin)
	if method == http.MethodOptions {
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestCORSMiddleware_DevelopmentEchoesOriginWithCredentials(t *testing.T) {
	mw := CORSMiddleware(nil, true)

	for _, method := range []string{http.MethodGet, http.MethodOptions} {
		w := corsRequest(t, mw, method, "http://localhost:3000")
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"), method)
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"), method)
	}
}

func TestCORSMiddleware_WildcardConfigNeverSendsStar(t *testing.T) {
	w := corsRequest(t, CORSMiddleware([]string{"*"}, false), http.MethodGet, "https://shop.example")

	assert.Equal(t, "https://shop.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSMiddleware_ProductionAllowList(t *testing.T) {
	mw := CORSMiddleware([]string{"https://sialkot.shop"}, false)

	w := corsRequest(t, mw, http.MethodGet, "https://Sialkot.shop")
	assert.Equal(t, "https://Sialkot.shop", w.Header().Get("Access-Control-Allow-Origin"))

	w = corsRequest(t, mw, http.MethodGet, "https://evil.example")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_EmptyListAllowsNoOrigin(t *testing.T) {
	w := corsRequest(t, CORSMiddleware(nil, false), http.MethodGet, "https://shop.example")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
