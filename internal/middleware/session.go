package middleware

import (
	"context"
	"net/http"
	"time"

	"sialkot-shop/internal/session"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	// SessionCookieName names the signed cookie carrying the visitor session id
	SessionCookieName = "sialkot_session"

	sessionIDKey = "sid"
)

type contextKey string

const sessionContextKey contextKey = "session"

// NewCookieStore creates the signed cookie store for visitor sessions. An
// empty secret generates a random key, so cookies do not survive a restart.
func NewCookieStore(secret string, maxAge time.Duration, secure bool) *sessions.CookieStore {
	key := []byte(secret)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// SessionMiddleware attaches the visitor's session to the request context,
// starting a new one when the cookie is missing, invalid or names an
// evicted session
func SessionMiddleware(cookies sessions.Store, store *session.Store, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Get returns a fresh cookie session alongside a decode error
			cs, err := cookies.Get(r, SessionCookieName)
			if err != nil {
				logger.Debug("Discarding unreadable session cookie", zap.Error(err))
			}

			id, _ := cs.Values[sessionIDKey].(string)
			sess, created := store.GetOrCreate(id)
			if created {
				cs.Values[sessionIDKey] = sess.ID
				if err := cs.Save(r, w); err != nil {
					logger.Error("Failed to save session cookie", zap.Error(err))
					RespondWithError(w, http.StatusInternalServerError, "failed to start session")
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

// WithSession returns a copy of ctx carrying sess
func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

// GetSession extracts the visitor session from the request context
func GetSession(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey).(*session.Session)
	return sess, ok
}
